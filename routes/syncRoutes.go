package routes

import (
	"github.com/gin-gonic/gin"

	"tradewatch/controllers"
	"tradewatch/ingest"
)

func SyncRoutes(api *gin.RouterGroup, s *ingest.Scheduler) {
	api.GET("/sync/status", controllers.SyncStatusHandler(s))
	api.POST("/sync/run", controllers.RunSyncHandler(s))
}
