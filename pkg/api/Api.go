package api

import (
	"time"

	"github.com/deskpilot/deskpilot/pkg/chrome"
	"github.com/deskpilot/deskpilot/pkg/compose"
	"github.com/deskpilot/deskpilot/pkg/configuration"
	"github.com/deskpilot/deskpilot/pkg/docker"
	"github.com/deskpilot/deskpilot/pkg/events"
	"github.com/deskpilot/deskpilot/pkg/shell"
	"github.com/deskpilot/deskpilot/pkg/speedtest"
)

func NewApi(config *configuration.Configuration) *Api {
	runner := shell.NewRunner()
	timeout := time.Duration(config.Docker.Timeout) * time.Second

	return &Api{
		Config:    config,
		Runner:    runner,
		Docker:    docker.New(runner, config.Docker.Binary, timeout),
		Compose:   compose.New(runner, config.Docker.Binary, timeout),
		Chrome:    chrome.New(runner, config.Chrome.Binary, config.Chrome.UserDataDir),
		Speedtest: speedtest.New(speedtest.NewState()),
		Hub:       events.NewHub(),
	}
}
