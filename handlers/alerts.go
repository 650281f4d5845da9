package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-sentinel/db"
)

// GetAlertsHandler returns alerts, newest first. Unread only unless
// include_read=true. limit defaults to 20, max 100.
func GetAlertsHandler(c *gin.Context, store *db.Store) {
	limit := clampQueryInt(c, "limit", 20, 1, 100)
	includeRead := c.DefaultQuery("include_read", "false") == "true"

	alerts, err := store.GetAlerts(c.Request.Context(), limit, includeRead)
	if err != nil {
		log.Printf("Error fetching alerts: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch alerts"})
		return
	}
	c.JSON(http.StatusOK, alerts)
}

// MarkAlertReadHandler marks a single alert as read.
func MarkAlertReadHandler(c *gin.Context, store *db.Store) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid alert id"})
		return
	}

	ok, err := store.MarkAlertRead(c.Request.Context(), id)
	if err != nil {
		log.Printf("Error marking alert %d read: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update alert"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Alert not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Alert marked as read"})
}
