package api

import (
	"net/http"

	"github.com/deskpilot/deskpilot/pkg/compose"
	"github.com/deskpilot/deskpilot/pkg/docker"
	"github.com/deskpilot/deskpilot/pkg/events"
	"github.com/deskpilot/deskpilot/pkg/static"
	"github.com/gin-gonic/gin"
)

func (a *Api) ComposeList(c *gin.Context) {
	projects := a.Compose.Ls(c.Request.Context())

	respond(c, http.StatusOK, "compose listing", "", projects)
}

func (a *Api) ComposeUp(c *gin.Context) {
	var request ComposeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		respondInvalid(c, err)
		return
	}

	result := a.Compose.Up(c.Request.Context(), request.ComposeFile, request.ProjectDirectory, compose.UpOptions{
		Detached: request.Detached,
		Build:    request.Build,
	})

	a.Hub.Publish(events.New(events.TYPE_COMPOSE, result.Operation, request.ComposeFile, result.Success()))

	respondResult(c, result, "compose up")
}

func (a *Api) ComposeVerb(operation string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request ComposeRequest
		if err := c.ShouldBindJSON(&request); err != nil {
			respondInvalid(c, err)
			return
		}

		ctx := c.Request.Context()

		var result docker.CommandResult

		switch operation {
		case static.OPERATION_DOWN:
			result = a.Compose.Down(ctx, request.ComposeFile, request.ProjectDirectory)
		case static.OPERATION_START:
			result = a.Compose.Start(ctx, request.ComposeFile, request.ProjectDirectory)
		case static.OPERATION_STOP:
			result = a.Compose.Stop(ctx, request.ComposeFile, request.ProjectDirectory)
		case static.OPERATION_RESTART:
			result = a.Compose.Restart(ctx, request.ComposeFile, request.ProjectDirectory)
		case static.OPERATION_PULL:
			result = a.Compose.Pull(ctx, request.ComposeFile, request.ProjectDirectory)
		case static.OPERATION_BUILD:
			result = a.Compose.Build(ctx, request.ComposeFile, request.ProjectDirectory)
		}

		a.Hub.Publish(events.New(events.TYPE_COMPOSE, operation, request.ComposeFile, result.Success()))

		respondResult(c, result, "compose "+operation)
	}
}

func (a *Api) ComposePs(c *gin.Context) {
	var request ComposeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		respondInvalid(c, err)
		return
	}

	services := a.Compose.Project(request.ComposeFile, request.ProjectDirectory).Ps(c.Request.Context())

	respond(c, http.StatusOK, "compose ps", "", services)
}

func (a *Api) ComposeLogs(c *gin.Context) {
	var request ComposeLogsRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		respondInvalid(c, err)
		return
	}

	project := a.Compose.Project(request.ComposeFile, request.ProjectDirectory)
	result := project.Logs(c.Request.Context(), request.Service, request.TailLines)

	respondResult(c, result, "compose logs")
}

func (a *Api) ComposeExec(c *gin.Context) {
	var request ComposeExecRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		respondInvalid(c, err)
		return
	}

	project := a.Compose.Project(request.ComposeFile, request.ProjectDirectory)
	result := project.Exec(c.Request.Context(), request.Service, request.Command)

	a.Hub.Publish(events.New(events.TYPE_COMPOSE, result.Operation, request.ComposeFile, result.Success()))

	respondResult(c, result, "compose exec")
}
