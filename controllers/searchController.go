package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"tradewatch/engine"
)

// SearchHandler serves ranked politician/stock suggestions.
func SearchHandler(e *engine.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		query, kind, limit, err := engine.ParseSearchParams(c.Request.URL.Query())
		if err != nil {
			writeError(c, err)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), queryTimeout)
		defer cancel()

		results, err := e.Search(ctx, query, kind, limit)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, results)
	}
}
