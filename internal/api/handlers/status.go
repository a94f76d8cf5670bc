package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

var startTime = time.Now()

const (
	serverName = "Roulette Tracker Prediction Server"
	version    = "1.0.0"
)

// Status returns the fixed server identification payload
func Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"server":  serverName,
		"version": version,
		"status":  "ok",
		"uptime":  time.Since(startTime).String(),
	})
}
