package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tradewatch/engine"
)

const queryTimeout = 10 * time.Second

// GetTradesHandler serves the filtered, sorted, paginated trade listing.
func GetTradesHandler(e *engine.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := c.Request.URL.Query()

		filter, err := engine.ParseTradeFilter(params)
		if err != nil {
			writeError(c, err)
			return
		}
		sort, err := engine.ParseTradeSort(params)
		if err != nil {
			writeError(c, err)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), queryTimeout)
		defer cancel()

		page, err := e.ListTrades(ctx, filter, sort)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, page)
	}
}
