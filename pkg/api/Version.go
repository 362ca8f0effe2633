package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (a *Api) DisplayVersion(c *gin.Context) {
	respond(c, http.StatusOK, "version", "", map[string]string{
		"version": a.Version.String(),
	})
}
