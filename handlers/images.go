package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetImage decodes the stored base64 payload and serves it as a PNG. A
// payload that cannot be decoded is treated the same as a missing one.
func (h *Handler) GetImage(c *gin.Context) {
	data, err := h.Store.ImageData(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Image not found"})
		return
	}
	c.Data(http.StatusOK, "image/png", data)
}
