package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-sentinel/processor"
)

// RefreshHandler kicks off a feed refresh in the background. The overlap
// check is synchronous: a refresh while a batch is running answers 409
// instead of silently dropping the request.
func RefreshHandler(c *gin.Context, pipeline *processor.Pipeline) {
	if err := pipeline.Start(context.Background()); err != nil {
		if errors.Is(err, processor.ErrBatchInProgress) {
			c.JSON(http.StatusConflict, gin.H{"message": "A feed refresh is already running"})
			return
		}
		log.Printf("Failed to start feed refresh: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start feed refresh"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Feed refresh started"})
}
