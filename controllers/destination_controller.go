package controllers

import (
	"net/http"
	"strings"

	"vbdhotel/constants"
	"vbdhotel/dto"
	"vbdhotel/errors"
	"vbdhotel/middleware"
	"vbdhotel/models"
	"vbdhotel/response"
	"vbdhotel/services"
	"vbdhotel/utils"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type DestinationController struct {
	db      *gorm.DB
	ratings *services.RatingService
	audit   services.AuditLogger
}

func NewDestinationController(db *gorm.DB, ratings *services.RatingService, audit services.AuditLogger) *DestinationController {
	return &DestinationController{db: db, ratings: ratings, audit: audit}
}

func applyDestinationInput(destination *models.Destination, input dto.DestinationInput) {
	destination.Name = input.Name
	destination.Description = input.Description
	destination.State = input.State
	destination.City = input.City
	destination.Images = pq.StringArray(input.Images)
	destination.Lat = input.Lat
	destination.Lng = input.Lng
	destination.Attractions = pq.StringArray(input.Attractions)
	destination.BestTimeToVisit = input.BestTimeToVisit
	destination.AverageTemperature = input.AverageTemperature
	destination.Timezone = input.Timezone
	destination.PopularWith = pq.StringArray(input.PopularWith)
	destination.Tags = pq.StringArray(input.Tags)
	destination.Price = input.Price
	// País, moneda e idioma conservan su valor (o el default de la
	// tabla) cuando el cliente no los manda.
	if input.Country != "" {
		destination.Country = input.Country
	}
	if input.Currency != "" {
		destination.Currency = input.Currency
	}
	if input.Language != "" {
		destination.Language = input.Language
	}
}

// List godoc
// @Summary Listar destinos
// @Tags destinations
// @Produce json
// @Param search query string false "Texto sobre nombre y descripción"
// @Param country query string false "País"
// @Param state query string false "Estado"
// @Param page query int false "Página"
// @Param limit query int false "Resultados por página"
// @Success 200 {object} map[string]interface{}
// @Router /api/destinations [get]
func (ctrl *DestinationController) List(c *gin.Context) {
	page, limit, offset := utils.GetPagination(c)

	query := ctrl.db.Model(&models.Destination{})
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		pattern := "%" + search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if country := c.Query("country"); country != "" {
		query = query.Where("country ILIKE ?", "%"+country+"%")
	}
	if state := c.Query("state"); state != "" {
		query = query.Where("state ILIKE ?", "%"+state+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var destinations []models.Destination
	err := query.Order("rating DESC, created_at DESC").
		Offset(offset).Limit(limit).
		Find(&destinations).Error
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Paginated(c, "destinations", destinations, page, limit, total)
}

func (ctrl *DestinationController) GetByID(c *gin.Context) {
	destinationID := utils.ParseUintParam(c, "id")
	var destination models.Destination
	if err := ctrl.db.First(&destination, destinationID).Error; err != nil {
		response.NotFound(c, "Destino no encontrado")
		return
	}

	reviews, err := ctrl.ratings.ListReviews(models.ReviewTargetDestination, destination.ID)
	if err != nil {
		response.ServerError(c)
		return
	}
	destination.Reviews = reviews

	c.JSON(http.StatusOK, gin.H{"destination": destination})
}

func (ctrl *DestinationController) Create(c *gin.Context) {
	var input dto.DestinationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "El nombre es requerido")
		return
	}

	var destination models.Destination
	applyDestinationInput(&destination, input)
	if err := ctrl.db.Create(&destination).Error; err != nil {
		response.ServerError(c)
		return
	}

	userID := middleware.CurrentUserID(c)
	ctrl.audit.Info("Destino creado", &userID, "create_destination",
		map[string]interface{}{"destinationId": destination.ID})
	c.JSON(http.StatusCreated, gin.H{
		"message":     "Destino creado",
		"destination": destination,
	})
}

func (ctrl *DestinationController) Update(c *gin.Context) {
	destinationID := utils.ParseUintParam(c, "id")
	var destination models.Destination
	if err := ctrl.db.First(&destination, destinationID).Error; err != nil {
		response.NotFound(c, "Destino no encontrado")
		return
	}

	var input dto.DestinationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "El nombre es requerido")
		return
	}

	// Se muta la fila leída para que created_at y rating sobrevivan
	// la escritura completa de Save.
	applyDestinationInput(&destination, input)
	if err := ctrl.db.Save(&destination).Error; err != nil {
		response.ServerError(c)
		return
	}

	userID := middleware.CurrentUserID(c)
	ctrl.audit.Info("Destino actualizado", &userID, "update_destination",
		map[string]interface{}{"destinationId": destination.ID})
	c.JSON(http.StatusOK, gin.H{
		"message":     "Destino actualizado",
		"destination": destination,
	})
}

func (ctrl *DestinationController) Delete(c *gin.Context) {
	destinationID := utils.ParseUintParam(c, "id")
	var destination models.Destination
	if err := ctrl.db.First(&destination, destinationID).Error; err != nil {
		response.NotFound(c, "Destino no encontrado")
		return
	}

	if err := ctrl.db.Delete(&destination).Error; err != nil {
		response.ServerError(c)
		return
	}

	userID := middleware.CurrentUserID(c)
	ctrl.audit.Info("Destino eliminado", &userID, "delete_destination",
		map[string]interface{}{"destinationId": destination.ID})
	c.JSON(http.StatusOK, gin.H{"message": "Destino eliminado"})
}

// CreatePurchase registra la compra de un destino: cantidad por precio
// del destino, con los datos del visitante.
func (ctrl *DestinationController) CreatePurchase(c *gin.Context) {
	destinationID := utils.ParseUintParam(c, "id")
	var destination models.Destination
	if err := ctrl.db.First(&destination, destinationID).Error; err != nil {
		response.NotFound(c, "Destino no encontrado")
		return
	}

	var input dto.PurchaseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Todos los campos del visitante son requeridos")
		return
	}

	visitDate, err := services.ParseDate(input.VisitDate)
	if err != nil {
		response.FromError(c, err)
		return
	}
	if visitDate.Before(services.StartOfToday()) {
		response.FromError(c, errors.Validation("La fecha de visita no puede ser anterior a hoy"))
		return
	}

	transactionID, err := services.GenerateNumber(constants.TransactionPrefix)
	if err != nil {
		response.ServerError(c)
		return
	}

	userID := middleware.CurrentUserID(c)
	purchase := models.DestinationPurchase{
		UserID:        userID,
		UserEmail:     middleware.CurrentUserEmail(c),
		DestinationID: destination.ID,
		Quantity:      input.Quantity,
		VisitDate:     visitDate,
		VisitTime:     input.VisitTime,
		VisitorName:   input.VisitorName,
		VisitorEmail:  input.VisitorEmail,
		VisitorPhone:  input.VisitorPhone,
		Total:         destination.Price * float64(input.Quantity),
		Status:        "confirmada",
		TransactionID: transactionID,
	}
	if err := ctrl.db.Create(&purchase).Error; err != nil {
		response.ServerError(c)
		return
	}
	purchase.Destination = &destination

	ctrl.audit.Info("Compra de destino registrada", &userID, "create_purchase",
		map[string]interface{}{"destinationId": destination.ID, "transactionId": transactionID})
	c.JSON(http.StatusCreated, gin.H{
		"message":  "Compra registrada exitosamente",
		"purchase": purchase,
	})
}

// GetPurchases lista las compras del usuario autenticado.
func (ctrl *DestinationController) GetPurchases(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	page, limit, offset := utils.GetPagination(c)

	query := ctrl.db.Model(&models.DestinationPurchase{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var purchases []models.DestinationPurchase
	err := query.Preload("Destination").
		Order("purchase_date DESC").
		Offset(offset).Limit(limit).
		Find(&purchases).Error
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Paginated(c, "purchases", purchases, page, limit, total)
}

// AddReview usa el mismo agregador de reseñas que hoteles y experiencias.
func (ctrl *DestinationController) AddReview(c *gin.Context) {
	destinationID := utils.ParseUintParam(c, "id")
	var destination models.Destination
	if err := ctrl.db.First(&destination, destinationID).Error; err != nil {
		response.NotFound(c, "Destino no encontrado")
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

	review, err := ctrl.ratings.AddReview(models.ReviewTargetDestination, destinationID, userID, user.Name, input.Rating, input.Comment)
	if err != nil {
		response.FromError(c, err)
		return
	}

	ctrl.audit.Info("Reseña agregada", &userID, "add_review",
		map[string]interface{}{"destinationId": destinationID, "rating": input.Rating})
	c.JSON(http.StatusCreated, gin.H{
		"message": "Reseña agregada",
		"review":  review,
	})
}
