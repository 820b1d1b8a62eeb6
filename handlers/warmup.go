package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"server/db"
	"server/storage"
)

// Warmup primes the cached store handles so the first real request on a cold
// process does not pay the connection cost.
func Warmup(c *gin.Context) {
	start := time.Now()
	if err := db.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, Response{Message: "document store unavailable"})
		return
	}
	if _, err := storage.Default(); err != nil {
		c.JSON(http.StatusInternalServerError, Response{Message: "blob store unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "warm", "tookMs": time.Since(start).Milliseconds()})
}
