package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListOrders(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.Orders())
}

// GetOrderStatus serves a synthetic transit status. There is no per-order
// status data in the fixture, so the id is accepted but not consulted.
func (h *Handler) GetOrderStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": h.Synth.OrderStatus()})
}

func (h *Handler) TrackOrder(c *gin.Context) {
	delivery, err := h.Store.DeliveryByOrderID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Order tracking not found"})
		return
	}
	c.JSON(http.StatusOK, delivery)
}

// GetTaxes serves freshly randomized VAT and shipping values.
func (h *Handler) GetTaxes(c *gin.Context) {
	c.JSON(http.StatusOK, h.Synth.TaxRates())
}
