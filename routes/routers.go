package routes

import (
	"vbdhotel/constants"
	"vbdhotel/controllers"
	"vbdhotel/middleware"
	"vbdhotel/services"
	"vbdhotel/services/audit"

	_ "vbdhotel/docs"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes construye los servicios y controllers y registra todas
// las rutas de la API.
func SetupRoutes(router *gin.Engine, db *gorm.DB, rdb *redis.Client) {
	auditLogger := audit.New(db)

	configService := services.NewConfigService(db, rdb)
	pdfService := services.NewPDFService("uploads", constants.DefaultSiteName)
	emailService := services.NewEmailServiceFromEnv(constants.DefaultSiteName)
	ratingService := services.NewRatingService(db)
	searchService := services.NewSearchService()
	reservationService := services.NewReservationService(db, configService, auditLogger, pdfService, emailService)
	authService := services.NewAuthService(db, auditLogger)

	authController := controllers.NewAuthController(authService)
	userController := controllers.NewUserController(db, auditLogger)
	hotelController := controllers.NewHotelController(db, rdb, ratingService, reservationService, searchService, auditLogger)
	reservationController := controllers.NewReservationController(db, reservationService, pdfService)
	destinationController := controllers.NewDestinationController(db, ratingService, auditLogger)
	experienceController := controllers.NewExperienceController(db, ratingService, auditLogger)
	adminController := controllers.NewAdminController(db, configService, auditLogger)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		api.POST("/register", authController.Register)
		api.POST("/login", authController.Login)
		api.POST("/auth/google", authController.AuthGoogle)

		// /hotels/nearby debe ir antes que /hotels/:id.
		api.GET("/hotels", hotelController.GetHotels)
		api.GET("/hotels/nearby", hotelController.GetNearby)
		api.GET("/hotels/:id", hotelController.GetHotelByID)
		api.POST("/hotels/:id/check-availability", hotelController.CheckAvailability)

		api.GET("/destinations", destinationController.List)
		api.GET("/destinations/:id", destinationController.GetByID)

		api.GET("/experiences", experienceController.List)
		api.GET("/experiences/:id", experienceController.GetByID)

		api.GET("/config", adminController.GetConfig)
	}

	authenticated := router.Group("/api")
	authenticated.Use(middleware.AuthMiddleware())
	{
		authenticated.GET("/profile", userController.GetProfile)
		authenticated.PUT("/profile", userController.UpdateProfile)
		authenticated.POST("/profile/avatar", userController.UploadAvatar)

		authenticated.GET("/favorites", userController.GetFavorites)
		authenticated.POST("/favorites/:hotelId", userController.AddFavorite)
		authenticated.DELETE("/favorites/:hotelId", userController.RemoveFavorite)

		authenticated.POST("/hotels/:id/reviews", hotelController.AddReview)

		authenticated.POST("/reservations", reservationController.Create)
		authenticated.GET("/reservations", reservationController.List)
		authenticated.GET("/reservations/:id", reservationController.GetByID)
		authenticated.PUT("/reservations/:id/cancel", reservationController.Cancel)

		authenticated.POST("/destinations", destinationController.Create)
		authenticated.PUT("/destinations/:id", destinationController.Update)
		authenticated.DELETE("/destinations/:id", destinationController.Delete)
		authenticated.POST("/destinations/:id/reviews", destinationController.AddReview)
		authenticated.POST("/destinations/:id/purchases", destinationController.CreatePurchase)
		authenticated.GET("/purchases", destinationController.GetPurchases)

		authenticated.POST("/experiences", experienceController.Create)
		authenticated.PUT("/experiences/:id", experienceController.Update)
		authenticated.DELETE("/experiences/:id", experienceController.Delete)
		authenticated.POST("/experiences/:id/reviews", experienceController.AddReview)

		authenticated.GET("/admin/stats", adminController.GetStats)
		authenticated.PUT("/config/:key", adminController.UpdateConfig)
		authenticated.GET("/logs", adminController.GetLogs)
	}

	pdfRoute := router.Group("/reservation-pdf")
	pdfRoute.Use(middleware.AuthMiddleware())
	{
		pdfRoute.GET("/:id", reservationController.ServePDF)
	}
}
