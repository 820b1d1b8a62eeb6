package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"server/db"
)

type CategoryAddRequest struct {
	Name string `json:"name" binding:"required"`
}

type CategoryRenameRequest struct {
	ID      string `json:"id" binding:"required"`
	NewName string `json:"newName" binding:"required"`
}

type CategoryIDRequest struct {
	ID string `json:"id" binding:"required"`
}

func CategoryList(c *gin.Context) {
	cats, _, _, err := db.Stores(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, Response{Message: "document store unavailable"})
		return
	}
	list, err := cats.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, Response{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, list)
}

func CategoryAdd(c *gin.Context) {
	r := CategoryAddRequest{}
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, Response{Message: "category name is required"})
		return
	}
	svc := service(c)
	if svc == nil {
		return
	}
	cat, err := svc.CreateCategory(c.Request.Context(), r.Name)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cat)
}

func CategoryRename(c *gin.Context) {
	r := CategoryRenameRequest{}
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, Response{Message: "category id and new name are required"})
		return
	}
	svc := service(c)
	if svc == nil {
		return
	}
	updated, err := svc.RenameCategory(c.Request.Context(), r.ID, r.NewName)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("category renamed, %d photos updated", updated),
		"name":    r.NewName,
	})
}

func CategoryDelete(c *gin.Context) {
	r := CategoryIDRequest{}
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, Response{Message: "category id is required"})
		return
	}
	svc := service(c)
	if svc == nil {
		return
	}
	result, err := svc.DeleteCategory(c.Request.Context(), r.ID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("category deleted, %d of %d photos removed", result.DocsDeleted, result.Matched),
		"result":  result,
	})
}
