package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tradewatch/ingest"
)

// SyncStatusHandler reports the scheduler's last and next run.
func SyncStatusHandler(s *ingest.Scheduler) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, s.Snapshot())
	}
}

// RunSyncHandler queues an immediate sync run.
func RunSyncHandler(s *ingest.Scheduler) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.TriggerNow()
		c.JSON(http.StatusAccepted, gin.H{"message": "sync triggered"})
	}
}
