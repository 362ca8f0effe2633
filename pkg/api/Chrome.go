package api

import (
	"net/http"

	"github.com/deskpilot/deskpilot/pkg/events"
	"github.com/deskpilot/deskpilot/pkg/static"
	"github.com/gin-gonic/gin"
)

func (a *Api) ChromeProfiles(c *gin.Context) {
	profiles, err := a.Chrome.Profiles()

	if err != nil {
		respond(c, http.StatusInternalServerError, "browser profiles", err.Error(), nil)
		return
	}

	respond(c, http.StatusOK, "browser profiles", "", profiles)
}

func (a *Api) ChromeOpen(c *gin.Context) {
	var request OpenRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		respondInvalid(c, err)
		return
	}

	result := a.Chrome.Open(c.Request.Context(), request.URL, request.Profile)
	a.Hub.Publish(events.New(events.TYPE_CHROME, static.OPERATION_OPEN, request.URL, result.Success()))

	if !result.Success() {
		respond(c, http.StatusBadGateway, "browser open", result.Stderr(), nil)
		return
	}

	respond(c, http.StatusOK, "browser open", "", map[string]any{
		"url":     result.URL,
		"profile": result.Profile,
	})
}
