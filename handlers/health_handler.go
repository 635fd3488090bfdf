package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Okay handles GET /okay, a sonda de liveness.
func Okay(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"msg": "Server Okay!", "alive": true})
}
