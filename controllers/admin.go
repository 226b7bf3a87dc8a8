// controllers/admin.go
package controllers

import (
	"net/http"

	"kifkif-backend/services"

	"github.com/gin-gonic/gin"
)

// AdminController handles maintenance endpoints
type AdminController struct {
	DM *services.DataManager
}

// ResetData wipes all collections and re-seeds the product catalog. Meant for
// demo resets, there is no undo.
func (ac *AdminController) ResetData(c *gin.Context) {
	ac.DM.ClearAllData()
	c.JSON(http.StatusOK, gin.H{"message": "All data cleared and catalog re-seeded"})
}
