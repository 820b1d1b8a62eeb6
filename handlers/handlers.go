package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"server/db"
	"server/gallery"
	"server/storage"
)

type Response struct {
	Message string `json:"message"`
}

// statusFromError maps the gallery error taxonomy to HTTP status codes.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, gallery.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, gallery.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, gallery.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(c *gin.Context, err error) {
	c.JSON(statusFromError(err), Response{Message: err.Error()})
}

// service builds the gallery service on the cached store handles. On failure
// it answers 500 itself and returns nil.
func service(c *gin.Context) *gallery.Service {
	cats, photos, _, err := db.Stores(c.Request.Context())
	if err != nil {
		slog.Error("document store unavailable", "err", err)
		c.JSON(http.StatusInternalServerError, Response{Message: "document store unavailable"})
		return nil
	}
	blobs, err := storage.Default()
	if err != nil {
		slog.Error("blob store unavailable", "err", err)
		c.JSON(http.StatusInternalServerError, Response{Message: "blob store unavailable"})
		return nil
	}
	return gallery.NewService(cats, photos, blobs, slog.Default())
}
