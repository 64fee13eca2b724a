package routes

import (
	"github.com/gin-gonic/gin"

	"tradewatch/controllers"
	"tradewatch/engine"
)

func SearchRoutes(api *gin.RouterGroup, e *engine.Engine) {
	api.GET("/search", controllers.SearchHandler(e))
}
