package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"go-sentinel/db"
	"go-sentinel/handlers"
	"go-sentinel/processor"
)

func SetupRouter(store *db.Store, pipeline *processor.Pipeline) *gin.Engine {
	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Crypto Twitter Sentinel API",
			"endpoints": []string{
				"/api/summaries", "/api/alerts", "/api/tweets",
				"/api/refresh", "/api/chat", "/metrics",
			},
		})
	})

	api := r.Group("/api")
	{
		api.GET("/summaries", func(c *gin.Context) {
			handlers.GetSummariesHandler(c, store)
		})
		api.GET("/alerts", func(c *gin.Context) {
			handlers.GetAlertsHandler(c, store)
		})
		api.POST("/alerts/:id/read", func(c *gin.Context) {
			handlers.MarkAlertReadHandler(c, store)
		})
		api.GET("/tweets", func(c *gin.Context) {
			handlers.GetTweetsHandler(c, store)
		})
		api.POST("/refresh", func(c *gin.Context) {
			handlers.RefreshHandler(c, pipeline)
		})
		api.POST("/chat", func(c *gin.Context) {
			handlers.ChatHandler(c, store)
		})
	}

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}
