package main

import (
	"fmt"
	"log"
	"os"

	"kifkif-backend/config"
	"kifkif-backend/routes"
	"kifkif-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	st, prefix := config.OpenStore()
	dm := services.NewDataManager(st, prefix, config.SeedCatalog())

	alerts := services.NewStockAlertService(dm)
	alerts.StartScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter(dm)
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
