package docker

import (
	"sort"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type psLine struct {
	ID           string              `json:"ID"`
	Image        string              `json:"Image"`
	Command      string              `json:"Command"`
	CreatedAt    string              `json:"CreatedAt"`
	State        string              `json:"State"`
	Status       string              `json:"Status"`
	Ports        string              `json:"Ports"`
	Names        string              `json:"Names"`
	RunningFor   string              `json:"RunningFor"`
	Size         string              `json:"Size"`
	Labels       string              `json:"Labels"`
	LocalVolumes string              `json:"LocalVolumes"`
	Platform     jsoniter.RawMessage `json:"Platform"`
}

// ParseContainerLines parses `docker ps --format json` output, one JSON
// object per line. Blank lines, lines that do not decode, and lines missing
// any of the required identity keys are dropped without failing the listing.
func ParseContainerLines(output string) []ContainerInfo {
	containers := make([]ContainerInfo, 0)

	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var row psLine
		if err := json.UnmarshalFromString(line, &row); err != nil {
			continue
		}

		if row.ID == "" || row.Image == "" || row.Command == "" || row.CreatedAt == "" || row.Status == "" {
			continue
		}

		containers = append(containers, ContainerInfo{
			ID:           row.ID,
			Image:        row.Image,
			Command:      row.Command,
			CreatedAt:    row.CreatedAt,
			State:        row.State,
			Status:       row.Status,
			Ports:        row.Ports,
			Names:        row.Names,
			RunningFor:   row.RunningFor,
			Size:         row.Size,
			Labels:       row.Labels,
			LocalVolumes: row.LocalVolumes,
			Platform:     parsePlatform(row.Platform),
		})
	}

	return containers
}

// parsePlatform tolerates both shapes docker emits: a nested object with
// architecture/os keys, or a bare "os/arch" string.
func parsePlatform(raw jsoniter.RawMessage) Platform {
	if len(raw) == 0 {
		return Platform{}
	}

	var object struct {
		Architecture string `json:"architecture"`
		OS           string `json:"os"`
	}

	if err := json.Unmarshal(raw, &object); err == nil && (object.Architecture != "" || object.OS != "") {
		return Platform{Architecture: object.Architecture, OS: object.OS}
	}

	var text string
	if err := json.Unmarshal(raw, &text); err == nil && text != "" {
		parts := strings.SplitN(text, "/", 2)

		platform := Platform{OS: parts[0]}
		if len(parts) == 2 {
			platform.Architecture = parts[1]
		}

		return platform
	}

	return Platform{}
}

type inspectJSON struct {
	ID      string `json:"Id"`
	Name    string `json:"Name"`
	Image   string `json:"Image"`
	Created string `json:"Created"`
	State   struct {
		Status string `json:"Status"`
		Health struct {
			Status string `json:"Status"`
		} `json:"Health"`
	} `json:"State"`
	Config struct {
		Image      string              `json:"Image"`
		Env        []string            `json:"Env"`
		Cmd        jsoniter.RawMessage `json:"Cmd"`
		Entrypoint jsoniter.RawMessage `json:"Entrypoint"`
		WorkingDir string              `json:"WorkingDir"`
		User       string              `json:"User"`
		Labels     map[string]string   `json:"Labels"`
	} `json:"Config"`
	HostConfig struct {
		RestartPolicy struct {
			Name string `json:"Name"`
		} `json:"RestartPolicy"`
	} `json:"HostConfig"`
	Mounts []struct {
		Source      string `json:"Source"`
		Destination string `json:"Destination"`
		Type        string `json:"Type"`
		RW          bool   `json:"RW"`
	} `json:"Mounts"`
	NetworkSettings struct {
		Ports map[string][]struct {
			HostIP   string `json:"HostIp"`
			HostPort string `json:"HostPort"`
		} `json:"Ports"`
		Networks map[string]jsoniter.RawMessage `json:"Networks"`
	} `json:"NetworkSettings"`
}

// ParseInspect decodes `docker inspect` output into an InspectInfo. Docker
// wraps the object in a single-element array; a bare object is accepted too.
// Every nested field is defaulted, so a sparse document still yields a fully
// populated record. Nil is returned only when nothing decodes at all.
func ParseInspect(output string) *InspectInfo {
	output = strings.TrimSpace(output)
	if output == "" {
		return nil
	}

	var doc inspectJSON

	if strings.HasPrefix(output, "[") {
		var docs []inspectJSON
		if err := json.UnmarshalFromString(output, &docs); err != nil || len(docs) == 0 {
			return nil
		}
		doc = docs[0]
	} else {
		if err := json.UnmarshalFromString(output, &doc); err != nil {
			return nil
		}
	}

	info := &InspectInfo{
		ID:              doc.ID,
		Name:            strings.TrimPrefix(doc.Name, "/"),
		Image:           doc.Config.Image,
		ImageID:         doc.Image,
		Created:         doc.Created,
		State:           doc.State.Status,
		Status:          doc.State.Status,
		HealthStatus:    doc.State.Health.Status,
		Ports:           make([]PortBinding, 0),
		Mounts:          make([]Mount, 0),
		Networks:        make([]string, 0),
		EnvironmentVars: parseEnv(doc.Config.Env),
		Command:         stringOrList(doc.Config.Cmd),
		Entrypoint:      stringOrList(doc.Config.Entrypoint),
		WorkingDir:      doc.Config.WorkingDir,
		User:            doc.Config.User,
		RestartPolicy:   doc.HostConfig.RestartPolicy.Name,
		Labels:          doc.Config.Labels,
	}

	if info.Labels == nil {
		info.Labels = map[string]string{}
	}

	for _, mount := range doc.Mounts {
		info.Mounts = append(info.Mounts, Mount{
			Source:      mount.Source,
			Destination: mount.Destination,
			Type:        mount.Type,
			ReadOnly:    !mount.RW,
		})
	}

	ports := make([]string, 0, len(doc.NetworkSettings.Ports))
	for port := range doc.NetworkSettings.Ports {
		ports = append(ports, port)
	}
	sort.Strings(ports)

	for _, port := range ports {
		bindings := doc.NetworkSettings.Ports[port]

		if len(bindings) == 0 {
			info.Ports = append(info.Ports, PortBinding{ContainerPort: port})
			continue
		}

		for _, binding := range bindings {
			info.Ports = append(info.Ports, PortBinding{
				ContainerPort: port,
				HostIP:        binding.HostIP,
				HostPort:      binding.HostPort,
			})
		}
	}

	for network := range doc.NetworkSettings.Networks {
		info.Networks = append(info.Networks, network)
	}
	sort.Strings(info.Networks)

	return info
}

// parseEnv splits KEY=VALUE entries on the first "=". Entries without one
// become a key with an empty value.
func parseEnv(entries []string) map[string]string {
	vars := make(map[string]string)

	for _, entry := range entries {
		if entry == "" {
			continue
		}

		key, value, found := strings.Cut(entry, "=")
		if !found {
			vars[entry] = ""
			continue
		}

		vars[key] = value
	}

	return vars
}

// stringOrList tolerates both encodings docker uses for Cmd and Entrypoint.
func stringOrList(raw jsoniter.RawMessage) []string {
	if len(raw) == 0 {
		return []string{}
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		if list == nil {
			return []string{}
		}
		return list
	}

	var single string
	if err := json.Unmarshal(raw, &single); err == nil && single != "" {
		return []string{single}
	}

	return []string{}
}
