package docker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const validLine = `{"ID":"abc123","Image":"nginx:latest","Command":"nginx -g daemon off;","CreatedAt":"2024-05-01 10:00:00 +0000 UTC","State":"running","Status":"Up 2 hours","Ports":"0.0.0.0:8080->80/tcp","Names":"web","RunningFor":"2 hours ago","Size":"12MB","Labels":"a=b","LocalVolumes":"1","Platform":{"architecture":"amd64","os":"linux"}}`

func TestParseContainerLines(t *testing.T) {
	tests := []struct {
		name   string
		output string
		count  int
	}{
		{
			name:   "Single valid line",
			output: validLine,
			count:  1,
		},
		{
			name:   "Blank lines are skipped",
			output: "\n" + validLine + "\n\n",
			count:  1,
		},
		{
			name:   "Malformed JSON line is skipped",
			output: validLine + "\n{not json at all\n" + validLine,
			count:  2,
		},
		{
			name:   "Truncated line is skipped",
			output: validLine[:40],
			count:  0,
		},
		{
			name:   "Empty output",
			output: "",
			count:  0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			containers := ParseContainerLines(tc.output)

			assert.Len(t, containers, tc.count)
			assert.LessOrEqual(t, len(containers), strings.Count(tc.output, "\n")+1)
		})
	}
}

func TestParseContainerLinesRequiredKeys(t *testing.T) {
	required := []string{"ID", "Image", "Command", "CreatedAt", "Status"}

	for _, key := range required {
		t.Run("Missing "+key, func(t *testing.T) {
			line := strings.Replace(validLine, `"`+key+`":`, `"X`+key+`":`, 1)

			assert.Empty(t, ParseContainerLines(line))
		})
	}
}

func TestParseContainerLineFields(t *testing.T) {
	containers := ParseContainerLines(validLine)

	assert.Len(t, containers, 1)

	info := containers[0]
	assert.Equal(t, "abc123", info.ID)
	assert.Equal(t, "nginx:latest", info.Image)
	assert.Equal(t, "web", info.Names)
	assert.Equal(t, "amd64", info.Platform.Architecture)
	assert.Equal(t, "linux", info.Platform.OS)
}

func TestParsePlatformString(t *testing.T) {
	line := strings.Replace(validLine, `{"architecture":"amd64","os":"linux"}`, `"linux/arm64"`, 1)

	containers := ParseContainerLines(line)

	assert.Len(t, containers, 1)
	assert.Equal(t, "linux", containers[0].Platform.OS)
	assert.Equal(t, "arm64", containers[0].Platform.Architecture)
}

const inspectDocument = `[
  {
    "Id": "abc123def",
    "Name": "/web",
    "Image": "sha256:deadbeef",
    "Created": "2024-05-01T10:00:00Z",
    "State": {"Status": "running", "Health": {"Status": "healthy"}},
    "Config": {
      "Image": "nginx:latest",
      "Env": ["PATH=/usr/bin:/bin", "EMPTY=", "FLAG"],
      "Cmd": ["nginx", "-g", "daemon off;"],
      "Entrypoint": "/docker-entrypoint.sh",
      "WorkingDir": "/srv",
      "User": "nginx",
      "Labels": {"team": "infra"}
    },
    "HostConfig": {"RestartPolicy": {"Name": "unless-stopped"}},
    "Mounts": [
      {"Source": "/data", "Destination": "/var/lib/data", "Type": "bind", "RW": true},
      {"Source": "cfg", "Destination": "/etc/cfg", "Type": "volume", "RW": false}
    ],
    "NetworkSettings": {
      "Ports": {
        "80/tcp": [{"HostIp": "0.0.0.0", "HostPort": "8080"}],
        "443/tcp": null
      },
      "Networks": {"bridge": {}, "backend": {}}
    }
  }
]`

func TestParseInspect(t *testing.T) {
	info := ParseInspect(inspectDocument)

	assert.NotNil(t, info)
	assert.Equal(t, "abc123def", info.ID)
	assert.Equal(t, "web", info.Name)
	assert.Equal(t, "nginx:latest", info.Image)
	assert.Equal(t, "sha256:deadbeef", info.ImageID)
	assert.Equal(t, "running", info.State)
	assert.Equal(t, "healthy", info.HealthStatus)
	assert.Equal(t, "unless-stopped", info.RestartPolicy)
	assert.Equal(t, "/srv", info.WorkingDir)
	assert.Equal(t, "nginx", info.User)

	assert.Equal(t, map[string]string{"PATH": "/usr/bin:/bin", "EMPTY": "", "FLAG": ""}, info.EnvironmentVars)
	assert.Equal(t, []string{"nginx", "-g", "daemon off;"}, info.Command)
	assert.Equal(t, []string{"/docker-entrypoint.sh"}, info.Entrypoint)

	assert.Equal(t, []string{"backend", "bridge"}, info.Networks)

	assert.Len(t, info.Mounts, 2)
	assert.False(t, info.Mounts[0].ReadOnly)
	assert.True(t, info.Mounts[1].ReadOnly)

	assert.Equal(t, []PortBinding{
		{ContainerPort: "443/tcp"},
		{ContainerPort: "80/tcp", HostIP: "0.0.0.0", HostPort: "8080"},
	}, info.Ports)
}

func TestParseInspectSparse(t *testing.T) {
	info := ParseInspect(`{"Id": "xyz"}`)

	assert.NotNil(t, info)
	assert.Equal(t, "xyz", info.ID)
	assert.Equal(t, "", info.Name)
	assert.Empty(t, info.Ports)
	assert.Empty(t, info.Mounts)
	assert.Empty(t, info.Networks)
	assert.Empty(t, info.Command)
	assert.Empty(t, info.Entrypoint)
	assert.NotNil(t, info.EnvironmentVars)
	assert.NotNil(t, info.Labels)
}

func TestParseInspectInvalid(t *testing.T) {
	assert.Nil(t, ParseInspect(""))
	assert.Nil(t, ParseInspect("   "))
	assert.Nil(t, ParseInspect("not json"))
	assert.Nil(t, ParseInspect("[]"))
}
