package api

import (
	"net/http"

	"github.com/deskpilot/deskpilot/pkg/contracts/iresponse"
	"github.com/deskpilot/deskpilot/pkg/docker"
	"github.com/deskpilot/deskpilot/pkg/logger"
	"github.com/gin-gonic/gin"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func respond(c *gin.Context, status int, explanation string, errorExplanation string, data any) {
	var raw []byte

	if data != nil {
		var err error

		raw, err = json.Marshal(data)
		if err != nil {
			logger.Log.Error(err.Error())

			status = http.StatusInternalServerError
			errorExplanation = "failed to serialize response data"
			raw = nil
		}
	}

	c.JSON(status, &iresponse.Response{
		HttpStatus:       status,
		Explanation:      explanation,
		ErrorExplanation: errorExplanation,
		Error:            status >= http.StatusBadRequest,
		Success:          status < http.StatusBadRequest,
		Data:             raw,
	})
}

// respondResult maps a gateway result onto the response envelope: the result
// is always carried as data, while a failed execution turns into 502 since
// the external tool, not this server, refused the operation.
func respondResult(c *gin.Context, result docker.CommandResult, explanation string) {
	if result.Success() {
		respond(c, http.StatusOK, explanation, "", result)
		return
	}

	respond(c, http.StatusBadGateway, explanation, result.Stderr(), result)
}

func respondInvalid(c *gin.Context, err error) {
	respond(c, http.StatusBadRequest, "invalid request", err.Error(), nil)
}
