// controllers/product.go
package controllers

import (
	"net/http"
	"strconv"

	"kifkif-backend/models"
	"kifkif-backend/services"
	"kifkif-backend/utils"

	"github.com/gin-gonic/gin"
)

// CreateProductInput defines the expected JSON structure for creating a product
type CreateProductInput struct {
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Size        string  `json:"size"`
	Description string  `json:"description"`
}

// UpdateStockInput defines the expected JSON structure for a stock adjustment
type UpdateStockInput struct {
	Stock int `json:"stock"`
}

// ProductController handles the catalog endpoints
type ProductController struct {
	DM *services.DataManager
}

// GetProducts retrieves the full catalog
func (pc *ProductController) GetProducts(c *gin.Context) {
	c.JSON(http.StatusOK, pc.DM.GetProducts())
}

// CreateProduct adds a product to the catalog. Stock, color and emoji are
// assigned server-side; new products always start with zero stock.
func (pc *ProductController) CreateProduct(c *gin.Context) {
	var input CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	product := pc.DM.AddProduct(models.Product{
		Name:        input.Name,
		Price:       input.Price,
		Category:    input.Category,
		Size:        input.Size,
		Description: input.Description,
	})

	c.JSON(http.StatusCreated, product)
}

// UpdateProduct merges the supplied fields over an existing product
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	var patch services.ProductPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !pc.DM.UpdateProduct(id, patch) {
		utils.RespondWithError(c, http.StatusNotFound, "Product not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully"})
}

// UpdateStock sets a product's stock level, clamped at zero
func (pc *ProductController) UpdateStock(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	var input UpdateStockInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !pc.DM.UpdateStock(id, input.Stock) {
		utils.RespondWithError(c, http.StatusNotFound, "Product not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Stock updated successfully"})
}

// DeleteProduct removes a product from the catalog
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	if !pc.DM.DeleteProduct(id) {
		utils.RespondWithError(c, http.StatusNotFound, "Product not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
