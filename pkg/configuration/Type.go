package configuration

type Configuration struct {
	HostPort    *HostPort    `yaml:"hostPort" mapstructure:"hostPort"`
	Docker      *Docker      `yaml:"docker" mapstructure:"docker"`
	Chrome      *Chrome      `yaml:"chrome" mapstructure:"chrome"`
	Environment *Environment `yaml:"-" mapstructure:"-"`
	LogLevel    string       `yaml:"logLevel" mapstructure:"logLevel"`
}

type HostPort struct {
	Host string `yaml:"host" mapstructure:"host"`
	Port string `yaml:"port" mapstructure:"port"`
}

type Docker struct {
	// Binary is resolved on PATH; no other discovery mechanism is supported.
	Binary string `yaml:"binary" mapstructure:"binary"`

	// Timeout bounds every docker and docker compose invocation, seconds.
	// Zero disables the deadline.
	Timeout int `yaml:"timeout" mapstructure:"timeout"`
}

type Chrome struct {
	Binary      string `yaml:"binary" mapstructure:"binary"`
	UserDataDir string `yaml:"userDataDir" mapstructure:"userDataDir"`
}

type Environment struct {
	Home          string
	NodeDirectory string
}
