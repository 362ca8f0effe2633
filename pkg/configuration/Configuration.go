package configuration

import (
	"fmt"
	"github.com/deskpilot/deskpilot/pkg/static"
)

func NewConfig() *Configuration {
	return &Configuration{
		HostPort: &HostPort{
			Host: static.DEFAULT_HOST,
			Port: static.DEFAULT_PORT,
		},
		Docker: &Docker{
			Binary:  static.DOCKER_BINARY,
			Timeout: static.DEFAULT_TIMEOUT,
		},
		Chrome: &Chrome{
			Binary:      static.DEFAULT_CHROME_BIN,
			UserDataDir: "",
		},
		Environment: &Environment{},
		LogLevel:    static.DEFAULT_LOG_LEVEL,
	}
}

func (c *Configuration) Address() string {
	return fmt.Sprintf("%s:%s", c.HostPort.Host, c.HostPort.Port)
}
