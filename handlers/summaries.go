package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-sentinel/db"
)

// GetSummariesHandler returns batch summaries, newest first. limit
// defaults to 10, max 50.
func GetSummariesHandler(c *gin.Context, store *db.Store) {
	limit := clampQueryInt(c, "limit", 10, 1, 50)

	summaries, err := store.GetSummaries(c.Request.Context(), limit)
	if err != nil {
		log.Printf("Error fetching summaries: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch summaries"})
		return
	}
	c.JSON(http.StatusOK, summaries)
}
