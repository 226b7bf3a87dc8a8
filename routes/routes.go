package routes

import (
	"kifkif-backend/config"
	"kifkif-backend/controllers"
	"kifkif-backend/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(dm *services.DataManager) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:3000",
			"http://localhost:5173",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	productController := controllers.ProductController{DM: dm}
	orderController := controllers.OrderController{DM: dm}
	customerController := controllers.CustomerController{DM: dm}
	reportController := controllers.ReportController{DM: dm}
	adminController := controllers.AdminController{DM: dm}

	api := r.Group("/api")
	{
		// Product routes
		products := api.Group("/products")
		{
			products.GET("", productController.GetProducts)
			products.POST("", productController.CreateProduct)
			products.PUT("/:id", productController.UpdateProduct)
			products.PUT("/:id/stock", productController.UpdateStock)
			products.DELETE("/:id", productController.DeleteProduct)
		}

		// Order routes
		orders := api.Group("/orders")
		{
			orders.GET("", orderController.GetOrders)
			orders.POST("", orderController.CreateOrder)
			orders.PUT("/:id/status", orderController.UpdateOrderStatus)
		}

		// Customer routes
		api.GET("/customers", customerController.GetCustomers)

		// Inventory routes
		inventory := api.Group("/inventory")
		{
			inventory.GET("", reportController.GetInventory)
			inventory.GET("/low-stock", reportController.GetLowStockItems)
		}

		// Reports routes
		api.GET("/reports/revenue", reportController.GetRevenue)

		// Dashboard routes
		api.GET("/dashboard", reportController.GetDashboardOverview)

		// Admin routes
		api.POST("/admin/reset", adminController.ResetData)
	}

	return r
}
