package commands

import (
	"github.com/deskpilot/deskpilot/internal/helpers"
	"github.com/deskpilot/deskpilot/pkg/api"
	"github.com/deskpilot/deskpilot/pkg/logger"
	"github.com/deskpilot/deskpilot/pkg/startup"
)

// loadConfiguration is the shared dependency for commands that talk to the
// local gateways without starting the server. The logger is rebuilt at the
// configured level before any gateway captures it.
func loadConfiguration(a *api.Api, args []string) {
	environment := startup.GetEnvironmentInfo()

	conf, err := startup.Load(environment)

	if err != nil {
		helpers.PrintAndExit(err, 1)
	}

	applyFlagOverrides(conf)

	logger.Log = logger.NewLogger(helpers.GetLogLevel(conf.LogLevel), []string{"stdout"}, []string{"stderr"})

	fresh := api.NewApi(conf)
	fresh.Version = a.Version
	*a = *fresh
}
