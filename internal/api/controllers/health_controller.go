package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health godoc
// @Summary Liveness probe
// @Tags System
// @Success 200 {object} map[string]string
// @Router /health [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
