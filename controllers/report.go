// controllers/report.go
package controllers

import (
	"net/http"

	"kifkif-backend/services"

	"github.com/gin-gonic/gin"
)

// ReportController handles the admin panel's inventory and revenue views
type ReportController struct {
	DM *services.DataManager
}

// GetInventory returns the reduced per-product inventory projection
func (rc *ReportController) GetInventory(c *gin.Context) {
	c.JSON(http.StatusOK, rc.DM.GetInventory())
}

// GetLowStockItems returns products running low on stock
func (rc *ReportController) GetLowStockItems(c *gin.Context) {
	c.JSON(http.StatusOK, rc.DM.GetLowStockItems())
}

// GetRevenue returns total revenue across completed orders
func (rc *ReportController) GetRevenue(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"totalRevenue": rc.DM.GetTotalRevenue()})
}

// GetDashboardOverview returns the summary counters shown on the admin
// panel's landing page
func (rc *ReportController) GetDashboardOverview(c *gin.Context) {
	orders := rc.DM.GetOrders()

	pendingOrders := 0
	for _, o := range orders {
		if o.Status == "pending" {
			pendingOrders++
		}
	}

	recentCount := 5
	if len(orders) < recentCount {
		recentCount = len(orders)
	}

	c.JSON(http.StatusOK, gin.H{
		"totalProducts":  len(rc.DM.GetProducts()),
		"totalOrders":    len(orders),
		"pendingOrders":  pendingOrders,
		"totalCustomers": len(rc.DM.GetCustomers()),
		"totalRevenue":   rc.DM.GetTotalRevenue(),
		"lowStockCount":  len(rc.DM.GetLowStockItems()),
		"recentOrders":   orders[len(orders)-recentCount:],
	})
}
