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

type PhotoDeleteRequest struct {
	PhotoID  string `json:"photoId" binding:"required"`
	ImageKey string `json:"imageKey"`
}

const photoListLimit = 20

func PhotoList(c *gin.Context) {
	_, photos, _, err := db.Stores(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, Response{Message: "document store unavailable"})
		return
	}
	list, err := photos.ListRecent(c.Request.Context(), photoListLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, Response{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, list)
}

func PhotoUpload(c *gin.Context) {
	maxBytes := int64(config.MAX_UPLOAD_MB) << 20
	if c.Request.ContentLength > maxBytes {
		c.JSON(http.StatusRequestEntityTooLarge, Response{Message: "file too large"})
		return
	}
	title := c.PostForm("title")
	category := c.PostForm("category")
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{Message: "image file is required"})
		return
	}
	defer file.Close()
	if title == "" || category == "" {
		c.JSON(http.StatusBadRequest, Response{Message: "photo title and category are required"})
		return
	}
	if header.Size > maxBytes {
		c.JSON(http.StatusRequestEntityTooLarge, Response{Message: "file too large"})
		return
	}

	processed, err := normalizeImage(file, config.IMAGE_MAX_DIMENSION)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, Response{Message: "unsupported or corrupted image"})
		return
	}

	svc := service(c)
	if svc == nil {
		return
	}
	blobs, err := storage.Default()
	if err != nil {
		c.JSON(http.StatusInternalServerError, Response{Message: "blob store unavailable"})
		return
	}
	key := utils.ObjectKey("gallery", header.Filename, "jpg")
	if err := blobs.Save(c.Request.Context(), key, "image/jpeg", bytes.NewReader(processed)); err != nil {
		c.JSON(http.StatusInternalServerError, Response{Message: "image upload failed"})
		return
	}

	photo := &models.Photo{
		Title:            title,
		Category:         category,
		ImageKey:         key,
		ImageURL:         blobs.URL(key),
		OriginalFileName: header.Filename,
		OriginalMimeType: header.Header.Get("Content-Type"),
		FileSizeKB:       len(processed) / 1024,
	}
	photo, err = svc.CreatePhoto(c.Request.Context(), photo)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "photo uploaded",
		"newPhoto": photo,
	})
}

func PhotoDelete(c *gin.Context) {
	r := PhotoDeleteRequest{}
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, Response{Message: "photo id is required"})
		return
	}
	svc := service(c)
	if svc == nil {
		return
	}
	if err := svc.DeletePhoto(c.Request.Context(), r.PhotoID, r.ImageKey); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, Response{Message: "photo deleted"})
}
