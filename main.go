package main

import (
	"log"

	"github.com/Yeshwanth-lb/hotel-bombaat-project/config"
	"github.com/Yeshwanth-lb/hotel-bombaat-project/controllers"
	"github.com/Yeshwanth-lb/hotel-bombaat-project/routes"
	"github.com/Yeshwanth-lb/hotel-bombaat-project/utils"
)

func main() {
	// Initialize logger
	if err := utils.InitLogger(); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	// Load environment variables
	cfg, err := config.LoadConfig()
	if err != nil {
		utils.LogError("Error loading config: %v", err)
		log.Fatal("Error loading config:", err)
	}

	// Initialize database
	config.InitDB()

	// Seed the admin account from the environment
	if err := controllers.EnsureAdminAccount(); err != nil {
		utils.LogError("Failed to ensure admin account: %v", err)
		log.Fatal("Failed to ensure admin account:", err)
	}

	// Set up router
	router := routes.SetupRouter(cfg)

	utils.LogInfo("Server starting on port %s", cfg.Port)
	// Start server
	if err := router.Run(":" + cfg.Port); err != nil {
		utils.LogError("Error starting server: %v", err)
		log.Fatal("Error starting server:", err)
	}
}
