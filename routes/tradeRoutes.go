package routes

import (
	"github.com/gin-gonic/gin"

	"tradewatch/controllers"
	"tradewatch/engine"
)

func TradeRoutes(api *gin.RouterGroup, e *engine.Engine) {
	api.GET("/trades", controllers.GetTradesHandler(e))
}
