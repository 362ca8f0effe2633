package api

import (
	"github.com/deskpilot/deskpilot/pkg/api/middlewares"
	"github.com/deskpilot/deskpilot/pkg/static"
	"github.com/gin-gonic/gin"
)

func (a *Api) SetupRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middlewares.CORS())

	v1 := router.Group("/api/v1")
	{
		containers := v1.Group("/containers")
		{
			containers.GET("", a.Containers)
			containers.POST("/:name/start", a.ContainerStart)
			containers.POST("/:name/stop", a.ContainerStop)
			containers.POST("/:name/restart", a.ContainerRestart)
			containers.DELETE("/:name", a.ContainerRemove)
			containers.GET("/:name/inspect", a.ContainerInspect)
			containers.GET("/:name/logs", a.ContainerLogs)
			containers.POST("/:name/exec", a.ContainerExec)
		}

		composeGroup := v1.Group("/compose")
		{
			composeGroup.GET("", a.ComposeList)
			composeGroup.POST("/up", a.ComposeUp)
			composeGroup.POST("/down", a.ComposeVerb(static.OPERATION_DOWN))
			composeGroup.POST("/start", a.ComposeVerb(static.OPERATION_START))
			composeGroup.POST("/stop", a.ComposeVerb(static.OPERATION_STOP))
			composeGroup.POST("/restart", a.ComposeVerb(static.OPERATION_RESTART))
			composeGroup.POST("/pull", a.ComposeVerb(static.OPERATION_PULL))
			composeGroup.POST("/build", a.ComposeVerb(static.OPERATION_BUILD))
			composeGroup.POST("/ps", a.ComposePs)
			composeGroup.POST("/logs", a.ComposeLogs)
			composeGroup.POST("/exec", a.ComposeExec)
		}

		chromeGroup := v1.Group("/chrome")
		{
			chromeGroup.GET("/profiles", a.ChromeProfiles)
			chromeGroup.POST("/open", a.ChromeOpen)
		}

		speedtestGroup := v1.Group("/speedtest")
		{
			speedtestGroup.POST("/run", a.SpeedtestRun)
			speedtestGroup.GET("/last", a.SpeedtestLast)
		}
	}

	router.GET("/healthz", a.Health)
	router.GET("/version", a.DisplayVersion)
	router.GET("/metrics", a.MetricsHandle())
	router.GET("/events", a.Events)

	return router
}
