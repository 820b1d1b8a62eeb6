package main

import (
	"log"
	"strings"
	"time"

	"server/config"
	"server/handlers"
	"server/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/autotls"
	"github.com/gin-gonic/gin"
)

func main() {
	setupLogging()

	if !config.DEBUG_MODE {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	_ = router.SetTrustedProxies([]string{})
	router.MaxMultipartMemory = int64(config.MAX_UPLOAD_MB) << 20
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST"},
		AllowHeaders:  []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        30 * 24 * time.Hour,
	}))
	if !config.DEBUG_MODE {
		router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/photos/upload", "/hero/image"})))
	}
	router.Use((&utils.CacheRouter{CacheTime: utils.CacheNoCache}).Handler()) // No cache by default, individual end-points override

	// Category handlers
	router.GET("/categories", (&utils.CacheRouter{CacheTime: 3600, Public: true}).Handler(), handlers.CategoryList)
	router.POST("/categories/add", handlers.CategoryAdd)
	router.POST("/categories/rename", handlers.CategoryRename)
	router.POST("/categories/delete", handlers.CategoryDelete)
	// Photo handlers
	router.GET("/photos", (&utils.CacheRouter{CacheTime: 60, Public: true}).Handler(), handlers.PhotoList)
	router.POST("/photos/upload", handlers.PhotoUpload)
	router.POST("/photos/delete", handlers.PhotoDelete)
	// Hero banner
	router.GET("/hero", (&utils.CacheRouter{CacheTime: 300, Public: true}).Handler(), handlers.HeroInfo)
	router.POST("/hero/text", handlers.HeroText)
	router.POST("/hero/image", handlers.HeroImage)
	// Misc
	router.POST("/auth/login", handlers.Login)
	router.GET("/warmup", handlers.Warmup)

	var err error
	if config.TLS_DOMAINS != "" {
		err = autotls.Run(router, strings.Split(config.TLS_DOMAINS, ",")...)
	} else {
		err = router.Run(config.BIND_ADDRESS)
	}
	log.Fatalf("Server stopped: %v", err)
}
