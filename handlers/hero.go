package handlers

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"server/config"
	"server/db"
	"server/models"
	"server/storage"
	"server/utils"
)

type HeroTextRequest struct {
	Title    *string `json:"title" binding:"required"`
	Subtitle *string `json:"subtitle" binding:"required"`
}

// heroDefaults is returned when the hero document was never configured.
var heroDefaults = models.HeroConfig{
	Title:    "여기에 멋진 제목을!",
	Subtitle: "여기에 부제목을!",
	ImageURL: "/api/placeholder/1200/500?text=Hero+Image",
}

func HeroInfo(c *gin.Context) {
	_, _, site, err := db.Stores(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, Response{Message: "document store unavailable"})
		return
	}
	hero, err := site.GetHero(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, Response{Message: err.Error()})
		return
	}
	if hero == nil {
		c.JSON(http.StatusOK, heroDefaults)
		return
	}
	c.JSON(http.StatusOK, hero)
}

func HeroText(c *gin.Context) {
	r := HeroTextRequest{}
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, Response{Message: "hero title and subtitle are required"})
		return
	}
	_, _, site, err := db.Stores(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, Response{Message: "document store unavailable"})
		return
	}
	if err := site.SetHeroText(c.Request.Context(), *r.Title, *r.Subtitle); err != nil {
		c.JSON(http.StatusInternalServerError, Response{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "hero text updated", "title": *r.Title, "subtitle": *r.Subtitle})
}

func HeroImage(c *gin.Context) {
	maxBytes := int64(config.MAX_UPLOAD_MB) << 20
	if c.Request.ContentLength > maxBytes {
		c.JSON(http.StatusRequestEntityTooLarge, Response{Message: "file too large"})
		return
	}
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{Message: "hero image file is required"})
		return
	}
	defer file.Close()
	if header.Size > maxBytes {
		c.JSON(http.StatusRequestEntityTooLarge, Response{Message: "file too large"})
		return
	}

	processed, err := normalizeImage(file, config.IMAGE_MAX_DIMENSION)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, Response{Message: "unsupported or corrupted image"})
		return
	}
	blobs, err := storage.Default()
	if err != nil {
		c.JSON(http.StatusInternalServerError, Response{Message: "blob store unavailable"})
		return
	}
	key := utils.ObjectKey("hero", header.Filename, "jpg")
	if err := blobs.Save(c.Request.Context(), key, "image/jpeg", bytes.NewReader(processed)); err != nil {
		c.JSON(http.StatusInternalServerError, Response{Message: "image upload failed"})
		return
	}

	_, _, site, err := db.Stores(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, Response{Message: "document store unavailable"})
		return
	}
	url := blobs.URL(key)
	if err := site.SetHeroImage(c.Request.Context(), key, url); err != nil {
		c.JSON(http.StatusInternalServerError, Response{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "hero image updated", "publicUrl": url})
}
