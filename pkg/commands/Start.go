package commands

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/deskpilot/deskpilot/internal/helpers"
	"github.com/deskpilot/deskpilot/pkg/api"
	"github.com/deskpilot/deskpilot/pkg/command"
	"github.com/deskpilot/deskpilot/pkg/configuration"
	"github.com/deskpilot/deskpilot/pkg/logger"
	"github.com/deskpilot/deskpilot/pkg/metrics"
	"github.com/deskpilot/deskpilot/pkg/startup"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func Start() {
	Commands = append(Commands,
		command.NewBuilder().Parent("deskpilot").Name("start").Function(cmdStart).Flags(cmdStartFlags).Build(),
	)
}

func cmdStart(a *api.Api, args []string) {
	environment := startup.GetEnvironmentInfo()

	if err := startup.Structure(environment); err != nil {
		helpers.PrintAndExit(err, 1)
	}

	loadConfiguration(a, args)
	conf := a.Config

	helpers.LogIfError(startup.SaveIfMissing(conf))

	metrics.DeskpilotVersion.Set(1, a.Version.String())

	if viper.GetBool("wait-daemon") {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()

			if err := a.Docker.WaitDaemon(ctx); err != nil {
				logger.Log.Warn("docker daemon is not reachable, container operations will fail until it is", zap.Error(err))
			} else {
				logger.Log.Info("docker daemon is reachable")
			}
		}()
	}

	// WriteTimeout must cover the slowest gateway invocation plus a grace
	// period, otherwise compose builds get cut off mid-response.
	server := http.Server{
		Addr:         conf.Address(),
		Handler:      a.SetupRouter(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: time.Duration(conf.Docker.Timeout+30) * time.Second,
	}

	logger.Log.Info("starting deskpilot backend",
		zap.String("address", conf.Address()),
		zap.String("version", a.Version.String()),
	)

	err := server.ListenAndServe()

	if err != nil {
		helpers.PrintAndExit(err, 1)
	}
}

// applyFlagOverrides layers explicitly passed flags on top of whatever the
// configuration file provided. Untouched flags keep the file values.
func applyFlagOverrides(conf *configuration.Configuration) {
	if pflag.CommandLine.Changed("port") {
		host, port, err := net.SplitHostPort(viper.GetString("port"))

		if err == nil {
			conf.HostPort.Host = host
			conf.HostPort.Port = port
		} else {
			logger.Log.Warn("ignoring malformed --port flag", zap.Error(err))
		}
	}

	if pflag.CommandLine.Changed("log") {
		conf.LogLevel = viper.GetString("log")
	}

	if pflag.CommandLine.Changed("docker") {
		conf.Docker.Binary = viper.GetString("docker")
	}

	if pflag.CommandLine.Changed("timeout") {
		conf.Docker.Timeout = viper.GetInt("timeout")
	}

	if pflag.CommandLine.Changed("chrome") {
		conf.Chrome.Binary = viper.GetString("chrome")
	}

	if pflag.CommandLine.Changed("user-data-dir") {
		conf.Chrome.UserDataDir = viper.GetString("user-data-dir")
	}
}

func cmdStartFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("wait-daemon", true, "Probe the docker daemon with backoff on startup")
}
