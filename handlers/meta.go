package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	apiVersion   = "1.0.0"
	apiUpdatedAt = "2026-08-01"
)

// Root lists the available endpoints. Informational only, not a versioned
// contract.
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Catalog service API",
		"endpoints": gin.H{
			"products": "/api/products",
			"items":    "/api/items",
			"version":  "/version",
			"health":   "/health",
			"metrics":  "/metrics",
		},
	})
}

func Version(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"version": apiVersion, "updatedAt": apiUpdatedAt})
}

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"service": "catalog-svc", "status": "healthy"})
}

// NotFound is the fallback for any unmatched route.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "API endpoint not found"})
}
