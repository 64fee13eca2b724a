package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"tradewatch/engine"
)

// GetTraderHandler serves one trader's detail record.
func GetTraderHandler(e *engine.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), queryTimeout)
		defer cancel()

		trader, err := e.GetTrader(ctx, c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, trader)
	}
}

// ConcentrationHandler serves a trader's portfolio concentration report.
func ConcentrationHandler(e *engine.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), queryTimeout)
		defer cancel()

		report, err := e.Concentration(ctx, c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, report)
	}
}
