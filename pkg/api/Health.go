package api

import (
	"net/http"

	"github.com/deskpilot/deskpilot/pkg/contracts/iresponse"
	"github.com/gin-gonic/gin"
)

func (a *Api) Health(c *gin.Context) {
	c.JSON(http.StatusOK, &iresponse.Response{
		HttpStatus:       http.StatusOK,
		Explanation:      "backend is healthy",
		ErrorExplanation: "",
		Error:            false,
		Success:          true,
		Data:             nil,
	})
}
