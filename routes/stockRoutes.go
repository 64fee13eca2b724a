package routes

import (
	"github.com/gin-gonic/gin"

	"tradewatch/controllers"
	"tradewatch/engine"
)

func StockRoutes(api *gin.RouterGroup, e *engine.Engine) {
	api.GET("/stocks/:symbol", controllers.GetStockHandler(e))
}
