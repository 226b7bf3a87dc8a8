// controllers/order.go
package controllers

import (
	"net/http"

	"kifkif-backend/services"
	"kifkif-backend/utils"

	"github.com/gin-gonic/gin"
)

// UpdateOrderStatusInput defines the expected JSON structure for a status change
type UpdateOrderStatusInput struct {
	Status string `json:"status" binding:"required"`
}

// OrderController handles checkout and order management endpoints
type OrderController struct {
	DM *services.DataManager
}

// GetOrders retrieves all orders
func (oc *OrderController) GetOrders(c *gin.Context) {
	c.JSON(http.StatusOK, oc.DM.GetOrders())
}

// CreateOrder places an order from the storefront checkout. Ordered items
// reduce catalog stock and the customer aggregates are updated.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var input services.OrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	order := oc.DM.AddOrder(input)
	c.JSON(http.StatusCreated, order)
}

// UpdateOrderStatus moves an order to a new status, e.g. completed
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	var input UpdateOrderStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !oc.DM.UpdateOrderStatus(c.Param("id"), input.Status) {
		utils.RespondWithError(c, http.StatusNotFound, "Order not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully"})
}
