package handlers

import (
	"net/http"

	"vetchat/utils"

	"github.com/gin-gonic/gin"
)

// Health handles GET /health (liveness).
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm VetChat"})
}

// DetailedHealth handles GET /api/health with the latest dependency snapshot.
func DetailedHealth(c *gin.Context) {
	c.JSON(http.StatusOK, utils.GetHealthStatus())
}
