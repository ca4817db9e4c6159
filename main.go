package main

import (
	"log"
	"net/http"
	"os"

	"vbdhotel/config"
	"vbdhotel/jobs"
	"vbdhotel/models"
	"vbdhotel/routes"
	"vbdhotel/services"

	"github.com/gin-gonic/gin"
)

// @title VBDHOTEL API
// @version 1.0
// @description API de reservaciones de hoteles, destinos y experiencias
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	config.LoadEnv()

	router, c := config.InitApp()

	config.ConnectDB()
	if _, err := config.ConnectRedis(); err != nil {
		log.Fatalf("No se pudo conectar a Redis: %v", err)
	}
	config.ConnectCloudinary()

	err := config.DB.AutoMigrate(
		&models.User{},
		&models.Hotel{},
		&models.Review{},
		&models.Reservation{},
		&models.Destination{},
		&models.Experience{},
		&models.DestinationPurchase{},
		&models.SiteConfig{},
		&models.Log{},
	)
	if err != nil {
		log.Fatalf("Error migrando las tablas: %v", err)
	}

	configService := services.NewConfigService(config.DB, config.RedisClient)
	if err := configService.Seed(); err != nil {
		log.Fatalf("Error sembrando la configuración inicial: %v", err)
	}
	if err := services.SeedSampleData(config.DB); err != nil {
		log.Fatalf("Error sembrando el catálogo inicial: %v", err)
	}

	jobs.InitCronJobs(c, config.DB)

	routes.SetupRoutes(router, config.DB, config.RedisClient)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ruta no encontrada"})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	log.Println("Servidor escuchando en el puerto " + port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Error iniciando el servidor: %v", err)
	}
}
