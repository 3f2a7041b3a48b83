package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"ticketdesk/config"
	_ "ticketdesk/docs"
	"ticketdesk/middleware"
	"ticketdesk/routes"
)

// @title Ticketdesk API
// @version 1.0
// @description Customer-support ticket tracker API
// @BasePath /
func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())

	routes.RegisterRoutes(router)

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
