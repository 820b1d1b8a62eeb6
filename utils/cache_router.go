package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	CacheNoCache = 0
)

// CacheRouter sets the cache-control header for a route group. The list
// endpoints serve publicly cacheable content; everything else defaults to
// no-cache.
type CacheRouter struct {
	CacheTime int // seconds; defaults to CacheNoCache = 0
	Public    bool
}

func (cr *CacheRouter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if cr.CacheTime == CacheNoCache {
			c.Header("cache-control", "no-cache")
		} else if cr.Public {
			c.Header("cache-control", "public, max-age="+strconv.Itoa(cr.CacheTime))
		} else {
			c.Header("cache-control", "private, max-age="+strconv.Itoa(cr.CacheTime))
		}
		c.Next()
	}
}
