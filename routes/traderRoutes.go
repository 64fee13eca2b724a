package routes

import (
	"github.com/gin-gonic/gin"

	"tradewatch/controllers"
	"tradewatch/engine"
)

func TraderRoutes(api *gin.RouterGroup, e *engine.Engine) {
	api.GET("/traders/:id", controllers.GetTraderHandler(e))
	api.GET("/traders/:id/concentration", controllers.ConcentrationHandler(e))
}
