package main

import (
	"log"
	"os"

	"devforum-api/controllers"
	"devforum-api/database"
	"devforum-api/jobs"
	"devforum-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: no .env file loaded:", err)
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET not set")
	}

	db, err := database.Connect(os.Getenv("MONGODB_URI"))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer func() {
		if err := db.Disconnect(); err != nil {
			log.Println("Failed to disconnect MongoDB:", err)
		}
	}()
	log.Println("Connected to MongoDB, devForum")

	cleanup := jobs.StartCleanup(db)
	defer cleanup.Stop()

	ct := controllers.New(db, []byte(secret))

	r := gin.Default()
	routes.SetupRoutes(r, ct)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	log.Println("DevForum server running on port", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
