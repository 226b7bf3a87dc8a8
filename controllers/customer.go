// controllers/customer.go
package controllers

import (
	"net/http"

	"kifkif-backend/services"

	"github.com/gin-gonic/gin"
)

// CustomerController exposes the aggregated customer records. Customers are
// created and updated only as a side effect of order placement.
type CustomerController struct {
	DM *services.DataManager
}

// GetCustomers retrieves all customer aggregates
func (cc *CustomerController) GetCustomers(c *gin.Context) {
	c.JSON(http.StatusOK, cc.DM.GetCustomers())
}
