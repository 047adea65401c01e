package main

import (
	"log"
	"os"

	"github.com/QASIM-LOKHANDWALA/Train.ai/db"
	_ "github.com/QASIM-LOKHANDWALA/Train.ai/docs"
	"github.com/QASIM-LOKHANDWALA/Train.ai/routes"

	"github.com/gin-gonic/gin"
)

// @title Train.ai Account Service
// @version 1.0
// @description Account service for Train.ai: user documents and the liked-model toggle against the model-training service
// @host localhost:8080
// @BasePath /
// @SecurityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Entrez le JWT avec le préfixe Bearer: Bearer <JWT>
func main() {

	gin.SetMode(gin.ReleaseMode)

	// Initialiser la base de données
	db.InitDB()

	r := routes.SetupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal("Erreur lors du démarrage du serveur:", err)
	}
}
