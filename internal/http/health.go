// Package http exposes the liveness endpoint.
package http

import "github.com/gin-gonic/gin"

// NewHealthRouter returns the router serving GET /health.
func NewHealthRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return router
}
