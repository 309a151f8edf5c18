package main

import (
	"log"
	"os"

	"go-postgres-ziswaf/config"
	"go-postgres-ziswaf/models"
	"go-postgres-ziswaf/routes"
	"go-postgres-ziswaf/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	// tanpa secret eksplisit aplikasi tidak boleh jalan
	if err := utils.InitJWT(); err != nil {
		log.Fatalf("❌ %v", err)
	}

	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Mustahiq{},
		&models.ProgramBantuan{},
		&models.SumberDana{},
		&models.ParameterField{},
		&models.ParameterFieldValue{},
		&models.CoA{},
		&models.Penyaluran{},
	)

	config.SeedAdmin()
	config.SeedCoA()

	r := gin.Default()
	routes.SetupRoutes(r)

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "🚀 Ziswaf API is running"})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	_ = r.Run(":" + port)
}
