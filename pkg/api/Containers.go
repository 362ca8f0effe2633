package api

import (
	"net/http"
	"strconv"

	"github.com/deskpilot/deskpilot/pkg/docker"
	"github.com/deskpilot/deskpilot/pkg/events"
	"github.com/deskpilot/deskpilot/pkg/static"
	"github.com/gin-gonic/gin"
)

func (a *Api) Containers(c *gin.Context) {
	all, _ := strconv.ParseBool(c.Query("all"))

	containers := a.Docker.List(c.Request.Context(), all)

	respond(c, http.StatusOK, "container listing", "", containers)
}

func (a *Api) ContainerStart(c *gin.Context) {
	a.containerLifecycle(c, static.OPERATION_START)
}

func (a *Api) ContainerStop(c *gin.Context) {
	a.containerLifecycle(c, static.OPERATION_STOP)
}

func (a *Api) ContainerRestart(c *gin.Context) {
	a.containerLifecycle(c, static.OPERATION_RESTART)
}

func (a *Api) ContainerRemove(c *gin.Context) {
	name := c.Param("name")
	force, _ := strconv.ParseBool(c.Query("force"))

	result := a.Docker.Remove(c.Request.Context(), name, force)
	a.Hub.Publish(events.New(events.TYPE_CONTAINER, result.Operation, name, result.Success()))

	respondResult(c, result, "container delete")
}

func (a *Api) ContainerInspect(c *gin.Context) {
	name := c.Param("name")

	info := a.Docker.Container(name).Inspect(c.Request.Context())

	if info == nil {
		respond(c, http.StatusNotFound, "container inspect", "container not found", nil)
		return
	}

	respond(c, http.StatusOK, "container inspect", "", info)
}

func (a *Api) ContainerLogs(c *gin.Context) {
	name := c.Param("name")
	tail, _ := strconv.Atoi(c.Query("tail"))

	result := a.Docker.Container(name).Logs(c.Request.Context(), tail)

	respondResult(c, result, "container logs")
}

func (a *Api) ContainerExec(c *gin.Context) {
	name := c.Param("name")

	var request ExecRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		respondInvalid(c, err)
		return
	}

	result := a.Docker.Container(name).Exec(c.Request.Context(), request.Command)
	a.Hub.Publish(events.New(events.TYPE_CONTAINER, result.Operation, name, result.Success()))

	respondResult(c, result, "container exec")
}

func (a *Api) containerLifecycle(c *gin.Context, operation string) {
	name := c.Param("name")

	var result docker.CommandResult

	switch operation {
	case static.OPERATION_START:
		result = a.Docker.Start(c.Request.Context(), name)
	case static.OPERATION_STOP:
		result = a.Docker.Stop(c.Request.Context(), name)
	case static.OPERATION_RESTART:
		result = a.Docker.Restart(c.Request.Context(), name)
	}

	a.Hub.Publish(events.New(events.TYPE_CONTAINER, operation, name, result.Success()))

	respondResult(c, result, "container "+operation)
}
