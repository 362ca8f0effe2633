package main

import (
	"fmt"

	"github.com/deskpilot/deskpilot/internal/helpers"
	"github.com/deskpilot/deskpilot/pkg/api"
	"github.com/deskpilot/deskpilot/pkg/command"
	"github.com/deskpilot/deskpilot/pkg/commands"
	"github.com/deskpilot/deskpilot/pkg/configuration"
	"github.com/deskpilot/deskpilot/pkg/logger"
	"github.com/deskpilot/deskpilot/pkg/startup"
	"github.com/deskpilot/deskpilot/pkg/version"
	"github.com/spf13/viper"
)

// Overridden at build time with -ldflags "-X main.DESKPILOT_VERSION=...".
var DESKPILOT_VERSION = ""

func main() {
	startup.SetFlags()
	logger.Log = logger.NewLogger(helpers.GetLogLevel(viper.GetString("log")), []string{"stdout"}, []string{"stderr"})

	if viper.GetString("log") == "debug" {
		fmt.Println(fmt.Sprintf("logging level set to %s (override with --log flag)", viper.GetString("log")))
	}

	conf := configuration.NewConfig()

	a := api.NewApi(conf)
	a.Version = version.New(DESKPILOT_VERSION)

	cmd := command.New()
	commands.PreloadCommands()
	commands.Run(a, cmd)
}
