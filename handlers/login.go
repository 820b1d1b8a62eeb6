package handlers

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"server/config"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login is a single credential-equality check against the configured admin
// account. There are no sessions; the frontend just remembers the outcome.
func Login(c *gin.Context) {
	r := LoginRequest{}
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "username and password are required"})
		return
	}
	userOK := subtle.ConstantTimeCompare([]byte(r.Username), []byte(config.ADMIN_USERNAME)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(r.Password), []byte(config.ADMIN_PASSWORD)) == 1
	if config.ADMIN_USERNAME == "" || !userOK || !passOK {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "wrong username or password"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "welcome"})
}
