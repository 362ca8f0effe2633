package api

import (
	"net/http"

	"github.com/deskpilot/deskpilot/pkg/events"
	"github.com/gin-gonic/gin"
)

func (a *Api) SpeedtestRun(c *gin.Context) {
	if a.Speedtest.Running() {
		respond(c, http.StatusConflict, "speed test", "a speed test is already running", nil)
		return
	}

	result, err := a.Speedtest.Run(c.Request.Context())
	a.Hub.Publish(events.New(events.TYPE_SPEEDTEST, "run", "", err == nil))

	if err != nil {
		respond(c, http.StatusBadGateway, "speed test", err.Error(), nil)
		return
	}

	respond(c, http.StatusOK, "speed test", "", result)
}

func (a *Api) SpeedtestLast(c *gin.Context) {
	last := a.Speedtest.Last()

	if last == nil {
		respond(c, http.StatusNotFound, "speed test", "no speed test has been run yet", nil)
		return
	}

	respond(c, http.StatusOK, "speed test", "", last)
}
