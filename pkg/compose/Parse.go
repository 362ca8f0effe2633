package compose

import (
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type lsRecord struct {
	Name        string `json:"Name"`
	Status      string `json:"Status"`
	ConfigFiles string `json:"ConfigFiles"`
}

type psRecord struct {
	Name       string `json:"Name"`
	Service    string `json:"Service"`
	Project    string `json:"Project"`
	State      string `json:"State"`
	Image      string `json:"Image"`
	Publishers []struct {
		URL           string `json:"URL"`
		TargetPort    int    `json:"TargetPort"`
		PublishedPort int    `json:"PublishedPort"`
		Protocol      string `json:"Protocol"`
	} `json:"Publishers"`
}

// ParseProjects parses `docker compose ls --format json`. Depending on the
// compose version the output is either one JSON object per line or a single
// JSON array; both are accepted, and records lacking a project name are
// dropped.
func ParseProjects(output string) []ProjectInfo {
	projects := make([]ProjectInfo, 0)

	for _, record := range decodeRecords[lsRecord](output) {
		if record.Name == "" {
			continue
		}

		configFiles := make([]string, 0)
		for _, file := range strings.Split(record.ConfigFiles, ",") {
			if file = strings.TrimSpace(file); file != "" {
				configFiles = append(configFiles, file)
			}
		}

		projects = append(projects, ProjectInfo{
			Name:        record.Name,
			Status:      record.Status,
			ConfigFiles: configFiles,
			Services:    make([]string, 0),
			Networks:    make([]string, 0),
			Volumes:     make([]string, 0),
		})
	}

	return projects
}

// ParseServices parses `docker compose ps --format json` with the same
// line-or-array tolerance; records lacking a service name are dropped.
func ParseServices(output string) []ServiceInfo {
	services := make([]ServiceInfo, 0)

	for _, record := range decodeRecords[psRecord](output) {
		name := record.Service
		if name == "" {
			name = record.Name
		}

		if name == "" {
			continue
		}

		ports := make([]string, 0, len(record.Publishers))
		for _, publisher := range record.Publishers {
			if publisher.PublishedPort == 0 {
				ports = append(ports, fmt.Sprintf("%d/%s", publisher.TargetPort, publisher.Protocol))
				continue
			}

			ports = append(ports, fmt.Sprintf("%s:%d->%d/%s", publisher.URL, publisher.PublishedPort, publisher.TargetPort, publisher.Protocol))
		}

		services = append(services, ServiceInfo{
			Name:      name,
			Project:   record.Project,
			Status:    record.State,
			Image:     record.Image,
			Ports:     ports,
			Networks:  make([]string, 0),
			DependsOn: make([]string, 0),
		})
	}

	return services
}

// decodeRecords handles JSON-lines and single-array output. A line that does
// not decode is dropped, never fatal.
func decodeRecords[T any](output string) []T {
	records := make([]T, 0)

	output = strings.TrimSpace(output)
	if output == "" {
		return records
	}

	if strings.HasPrefix(output, "[") {
		if err := json.UnmarshalFromString(output, &records); err != nil {
			return []T{}
		}

		return records
	}

	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var record T
		if err := json.UnmarshalFromString(line, &record); err != nil {
			continue
		}

		records = append(records, record)
	}

	return records
}
