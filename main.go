package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/reserve-go/config"
	"github.com/linskybing/reserve-go/db"
	_ "github.com/linskybing/reserve-go/docs"
	"github.com/linskybing/reserve-go/middleware"
	"github.com/linskybing/reserve-go/routes"
)

// @title Compute Reservation API
// @version 1.0
// @description Booking service for shared compute resources (VMs, GPUs).
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	config.LoadConfig()
	middleware.Init()
	db.Init()

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.Use(middleware.CORSMiddleware())

	routes.RegisterRoutes(router, db.DB)

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
