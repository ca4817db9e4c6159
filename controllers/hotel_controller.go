package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"vbdhotel/config"
	"vbdhotel/dto"
	"vbdhotel/middleware"
	"vbdhotel/models"
	"vbdhotel/response"
	"vbdhotel/services"
	"vbdhotel/utils"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	hotelCacheTTL     = 5 * time.Minute
	hotelCachePattern = "hotels:*"
	defaultNearbyKm   = 50.0
	nearbyLimit       = 50
)

type HotelController struct {
	db           *gorm.DB
	rdb          *redis.Client
	ratings      *services.RatingService
	reservations *services.ReservationService
	search       *services.SearchService
	audit        services.AuditLogger
}

func NewHotelController(db *gorm.DB, rdb *redis.Client, ratings *services.RatingService,
	reservations *services.ReservationService, search *services.SearchService, audit services.AuditLogger) *HotelController {
	return &HotelController{db: db, rdb: rdb, ratings: ratings, reservations: reservations, search: search, audit: audit}
}

type hotelPage struct {
	Hotels      []models.Hotel `json:"hotels"`
	TotalPages  int            `json:"totalPages"`
	CurrentPage int            `json:"currentPage"`
	Total       int64          `json:"total"`
}

// GetHotels godoc
// @Summary Listar hoteles
// @Tags hotels
// @Produce json
// @Param search query string false "Texto sobre nombre, ubicación y descripción"
// @Param minPrice query number false "Precio mínimo por noche"
// @Param maxPrice query number false "Precio máximo por noche"
// @Param amenities query string false "Amenidades separadas por coma (deben estar todas)"
// @Param city query string false "Ciudad"
// @Param page query int false "Página"
// @Param limit query int false "Resultados por página"
// @Success 200 {object} map[string]interface{}
// @Router /api/hotels [get]
func (ctrl *HotelController) GetHotels(c *gin.Context) {
	page, limit, offset := utils.GetPagination(c)

	search := strings.TrimSpace(c.Query("search"))
	minPrice := c.Query("minPrice")
	maxPrice := c.Query("maxPrice")
	amenities := c.Query("amenities")
	city := strings.TrimSpace(c.Query("city"))

	unfiltered := search == "" && minPrice == "" && maxPrice == "" && amenities == "" && city == ""
	cacheKey := fmt.Sprintf("hotels:page:%d:limit:%d", page, limit)

	// Sólo las páginas sin filtros se cachean; los filtros producen
	// demasiadas combinaciones para que valga la pena.
	if unfiltered && ctrl.rdb != nil {
		var cached hotelPage
		if hit, err := services.GetFromRedis(config.Ctx, ctrl.rdb, cacheKey, &cached); err == nil && hit {
			c.JSON(http.StatusOK, gin.H{
				"hotels":      cached.Hotels,
				"totalPages":  cached.TotalPages,
				"currentPage": cached.CurrentPage,
				"total":       cached.Total,
			})
			return
		}
	}

	query := ctrl.db.Model(&models.Hotel{})
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("name ILIKE ? OR location ILIKE ? OR description ILIKE ?", pattern, pattern, pattern)
	}
	if minPrice != "" {
		if value, err := strconv.ParseFloat(minPrice, 64); err == nil {
			query = query.Where("price >= ?", value)
		}
	}
	if maxPrice != "" {
		if value, err := strconv.ParseFloat(maxPrice, 64); err == nil {
			query = query.Where("price <= ?", value)
		}
	}
	if amenities != "" {
		for _, amenity := range strings.Split(amenities, ",") {
			amenity = strings.TrimSpace(amenity)
			if amenity != "" {
				query = query.Where("? = ANY(amenities)", amenity)
			}
		}
	}
	if city != "" {
		query = query.Where("city ILIKE ?", "%"+city+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var hotels []models.Hotel
	err := query.Order("rating DESC, created_at DESC").
		Offset(offset).Limit(limit).
		Find(&hotels).Error
	if err != nil {
		response.ServerError(c)
		return
	}

	// Búsqueda sin resultados: se sugiere la ciudad más parecida del
	// catálogo antes de devolver la lista vacía.
	if total == 0 && (search != "" || city != "") {
		suggestion := ctrl.suggestCity(search, city)
		if suggestion != "" {
			c.JSON(http.StatusOK, gin.H{
				"hotels":      []models.Hotel{},
				"totalPages":  0,
				"currentPage": page,
				"total":       0,
				"suggestion":  suggestion,
			})
			return
		}
	}

	if unfiltered && ctrl.rdb != nil {
		_ = services.SetToRedis(config.Ctx, ctrl.rdb, cacheKey, hotelPage{
			Hotels:      hotels,
			TotalPages:  response.TotalPages(total, limit),
			CurrentPage: page,
			Total:       total,
		}, hotelCacheTTL)
	}

	response.Paginated(c, "hotels", hotels, page, limit, total)
}

func (ctrl *HotelController) suggestCity(search, city string) string {
	query := city
	if query == "" {
		query = search
	}

	var cities []string
	if err := ctrl.db.Model(&models.Hotel{}).Distinct("city").Pluck("city", &cities).Error; err != nil {
		return ""
	}
	return ctrl.search.Suggest(query, cities)
}

// GetNearby busca hoteles dentro de una caja de ±radio/111 grados
// alrededor del punto dado. Debe registrarse antes de /hotels/:id.
func (ctrl *HotelController) GetNearby(c *gin.Context) {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)
	if latErr != nil || lngErr != nil {
		response.BadRequest(c, "lat y lng son requeridos")
		return
	}

	radius := defaultNearbyKm
	if raw := c.Query("radius"); raw != "" {
		if value, err := strconv.ParseFloat(raw, 64); err == nil && value > 0 {
			radius = value
		}
	}

	// 1 grado ≈ 111 km.
	delta := radius / 111.0
	var hotels []models.Hotel
	err := ctrl.db.
		Where("lat BETWEEN ? AND ? AND lng BETWEEN ? AND ?",
			lat-delta, lat+delta, lng-delta, lng+delta).
		Order("rating DESC").
		Limit(nearbyLimit).
		Find(&hotels).Error
	if err != nil {
		response.ServerError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"hotels": hotels, "radius": radius})
}

// GetHotelByID devuelve el hotel con sus reseñas embebidas.
func (ctrl *HotelController) GetHotelByID(c *gin.Context) {
	hotelID := utils.ParseUintParam(c, "id")
	var hotel models.Hotel
	if err := ctrl.db.First(&hotel, hotelID).Error; err != nil {
		response.NotFound(c, "Hotel no encontrado")
		return
	}

	reviews, err := ctrl.ratings.ListReviews(models.ReviewTargetHotel, hotel.ID)
	if err != nil {
		response.ServerError(c)
		return
	}
	hotel.Reviews = reviews

	c.JSON(http.StatusOK, gin.H{"hotel": hotel})
}

// CheckAvailability godoc
// @Summary Consultar disponibilidad de un hotel
// @Tags hotels
// @Accept json
// @Produce json
// @Param id path int true "ID del hotel"
// @Param input body dto.CheckAvailabilityInput true "Intervalo de fechas"
// @Success 200 {object} dto.AvailabilityResponse
// @Router /api/hotels/{id}/check-availability [post]
func (ctrl *HotelController) CheckAvailability(c *gin.Context) {
	hotelID := utils.ParseUintParam(c, "id")
	var hotel models.Hotel
	if err := ctrl.db.First(&hotel, hotelID).Error; err != nil {
		response.NotFound(c, "Hotel no encontrado")
		return
	}

	var input dto.CheckAvailabilityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "checkin y checkout son requeridos")
		return
	}

	result, err := ctrl.reservations.CheckAvailability(hotelID, input.Checkin, input.Checkout)
	if err != nil {
		response.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AvailabilityResponse{
		Available:      result.Available,
		AvailableRooms: result.AvailableRooms,
		TotalRooms:     result.TotalRooms,
		BookedRooms:    result.BookedRooms,
	})
}

// AddReview registra una reseña del usuario autenticado y actualiza el
// promedio del hotel.
func (ctrl *HotelController) AddReview(c *gin.Context) {
	hotelID := utils.ParseUintParam(c, "id")
	var hotel models.Hotel
	if err := ctrl.db.First(&hotel, hotelID).Error; err != nil {
		response.NotFound(c, "Hotel no encontrado")
		return
	}

	var input dto.ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "La calificación es requerida")
		return
	}

	userID := middleware.CurrentUserID(c)
	var user models.User
	if err := ctrl.db.First(&user, userID).Error; err != nil {
		response.ServerError(c)
		return
	}

	review, err := ctrl.ratings.AddReview(models.ReviewTargetHotel, hotelID, userID, user.Name, input.Rating, input.Comment)
	if err != nil {
		response.FromError(c, err)
		return
	}

	if ctrl.rdb != nil {
		_ = services.DeleteByPattern(config.Ctx, ctrl.rdb, hotelCachePattern)
	}

	ctrl.audit.Info("Reseña agregada", &userID, "add_review",
		map[string]interface{}{"hotelId": hotelID, "rating": input.Rating})
	c.JSON(http.StatusCreated, gin.H{
		"message": "Reseña agregada",
		"review":  review,
	})
}
