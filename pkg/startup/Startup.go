package startup

import (
	"flag"
	"fmt"
	"github.com/deskpilot/deskpilot/internal/helpers"
	"github.com/deskpilot/deskpilot/pkg/configuration"
	"github.com/deskpilot/deskpilot/pkg/static"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
	"io"
	"os"
)

func GetEnvironmentInfo() *configuration.Environment {
	home := helpers.GetRealHome()

	return &configuration.Environment{
		Home:          home,
		NodeDirectory: fmt.Sprintf("%s/.%s", home, static.ROOTDIR),
	}
}

// Load reads config.yaml from the node directory on top of the built-in
// defaults. A missing file is not an error: defaults apply.
func Load(environment *configuration.Environment) (*configuration.Configuration, error) {
	configObj := configuration.NewConfig()
	configObj.Environment = environment

	file, err := os.Open(configPath(environment))

	if err != nil {
		if os.IsNotExist(err) {
			return configObj, nil
		}

		return nil, errors.Wrap(err, "failed to open configuration")
	}

	defer func() {
		file.Close()
	}()

	err = Read(configObj, file)

	if err != nil {
		return nil, err
	}

	return configObj, nil
}

func Read(configObj *configuration.Configuration, reader io.Reader) error {
	viper.SetConfigType("yaml")

	err := viper.ReadConfig(reader)

	if err != nil {
		return errors.Wrap(err, "failed to read configuration")
	}

	err = viper.Unmarshal(configObj)

	if err != nil {
		return errors.Wrap(err, "failed to unmarshal configuration")
	}

	return nil
}

func Save(configObj *configuration.Configuration) error {
	yamlObj, err := yaml.Marshal(*configObj)

	if err != nil {
		return err
	}

	err = os.WriteFile(configPath(configObj.Environment), yamlObj, 0644)
	if err != nil {
		return err
	}

	return nil
}

// SaveIfMissing persists the configuration when no config.yaml exists yet,
// so a fresh node directory ends up with an editable file of the defaults.
// An existing file is never touched.
func SaveIfMissing(configObj *configuration.Configuration) error {
	if _, err := os.Stat(configPath(configObj.Environment)); err == nil {
		return nil
	}

	return Save(configObj)
}

func configPath(environment *configuration.Environment) string {
	return fmt.Sprintf("%s/%s/config.yaml", environment.NodeDirectory, static.CONFIGDIR)
}

// Structure creates the node directory tree when absent.
func Structure(environment *configuration.Environment) error {
	for _, dir := range static.STRUCTURE {
		err := os.MkdirAll(fmt.Sprintf("%s/%s", environment.NodeDirectory, dir), 0755)

		if err != nil {
			return err
		}
	}

	return nil
}

func SetFlags() {
	flag.String("port", fmt.Sprintf("%s:%s", static.DEFAULT_HOST, static.DEFAULT_PORT), "Deskpilot listening interface and port")
	flag.String("log", static.DEFAULT_LOG_LEVEL, "Log level: debug, info, warning, error")
	flag.String("docker", static.DOCKER_BINARY, "Docker binary resolved on PATH")
	flag.Int("timeout", static.DEFAULT_TIMEOUT, "Default command timeout in seconds")
	flag.String("chrome", static.DEFAULT_CHROME_BIN, "Chrome binary resolved on PATH")
	flag.String("user-data-dir", "", "Chrome user data directory holding Local State")

	pflag.CommandLine.AddGoFlagSet(flag.CommandLine)
	pflag.BoolP("all", "a", false, "Include stopped containers in listings")
	pflag.BoolP("force", "f", false, "Skip confirmation and force the operation")
	pflag.Parse()

	viper.BindPFlags(pflag.CommandLine)

	// Optional .env next to the working directory; absence is fine.
	godotenv.Load()
}
