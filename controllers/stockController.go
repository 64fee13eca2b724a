package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"tradewatch/engine"
)

// GetStockHandler serves one stock's detail record by symbol.
func GetStockHandler(e *engine.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), queryTimeout)
		defer cancel()

		stock, err := e.GetStock(ctx, c.Param("symbol"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, stock)
	}
}
