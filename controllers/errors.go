package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/phuslu/log"

	"tradewatch/models"
)

// writeError maps engine error kinds to HTTP statuses: bad input 400,
// missing reference data 404, store failure 502. Upstream failures are
// reported as such, never disguised as empty results.
func writeError(c *gin.Context, err error) {
	var vErr *models.ValidationError
	if errors.As(err, &vErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error(), "field": vErr.Field})
		return
	}
	var nfErr *models.NotFoundError
	if errors.As(err, &nfErr) {
		c.JSON(http.StatusNotFound, gin.H{"error": nfErr.Error()})
		return
	}
	var upErr *models.UpstreamError
	if errors.As(err, &upErr) {
		log.Error().Err(upErr.Err).Str("op", upErr.Op).Msg("trade store failure")
		c.JSON(http.StatusBadGateway, gin.H{"error": "trade store unavailable"})
		return
	}
	log.Error().Err(err).Msg("unhandled error")
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
