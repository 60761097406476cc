package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.Categories())
}

func (h *Handler) GetCategory(c *gin.Context) {
	category, err := h.Store.CategoryByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Category not found"})
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *Handler) ListProducts(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.Products())
}

func (h *Handler) GetProduct(c *gin.Context) {
	product, err := h.Store.ProductByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, product)
}
