package controllers

import (
	"net/http"
	"os"

	"vbdhotel/dto"
	"vbdhotel/middleware"
	"vbdhotel/models"
	"vbdhotel/response"
	"vbdhotel/services"
	"vbdhotel/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ReservationController struct {
	db           *gorm.DB
	reservations *services.ReservationService
	pdf          *services.PDFService
}

func NewReservationController(db *gorm.DB, reservations *services.ReservationService, pdf *services.PDFService) *ReservationController {
	return &ReservationController{db: db, reservations: reservations, pdf: pdf}
}

// Create godoc
// @Summary Crear una reservación
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body dto.CreateReservationInput true "Datos de la reservación"
// @Success 201 {object} dto.ReservationCreatedResponse
// @Failure 400 {object} map[string]string
// @Router /api/reservations [post]
func (ctrl *ReservationController) Create(c *gin.Context) {
	var input dto.CreateReservationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Todos los campos son requeridos")
		return
	}

	userID := middleware.CurrentUserID(c)
	reservation, err := ctrl.reservations.Create(userID, input.HotelID,
		input.Checkin, input.Checkout, input.Adults, input.Children, input.RoomType)
	if err != nil {
		response.FromError(c, err)
		return
	}

	summary := dto.HotelSummary{}
	if reservation.Hotel != nil {
		summary = dto.HotelSummary{
			Name:     reservation.Hotel.Name,
			Location: reservation.Hotel.Location,
			Images:   []string(reservation.Hotel.Images),
		}
	}

	c.JSON(http.StatusCreated, dto.ReservationCreatedResponse{
		Message:     "Reservación creada exitosamente",
		Reservation: *reservation,
		Hotel:       summary,
		PdfURL:      reservation.PdfURL,
	})
}

// List devuelve las reservaciones del usuario autenticado, con filtro
// opcional por estado.
func (ctrl *ReservationController) List(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	page, limit, offset := utils.GetPagination(c)

	query := ctrl.db.Model(&models.Reservation{}).Where("user_id = ?", userID)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var reservations []models.Reservation
	err := query.Preload("Hotel").
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&reservations).Error
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Paginated(c, "reservations", reservations, page, limit, total)
}

// GetByID sólo devuelve reservaciones propias; las ajenas se reportan
// como inexistentes.
func (ctrl *ReservationController) GetByID(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	reservationID := utils.ParseUintParam(c, "id")

	var reservation models.Reservation
	err := ctrl.db.Preload("Hotel").
		Where("id = ? AND user_id = ?", reservationID, userID).
		First(&reservation).Error
	if err != nil {
		response.NotFound(c, "Reservación no encontrada")
		return
	}

	c.JSON(http.StatusOK, gin.H{"reservation": reservation})
}

// Cancel godoc
// @Summary Cancelar una reservación
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID de la reservación"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /api/reservations/{id}/cancel [put]
func (ctrl *ReservationController) Cancel(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	reservationID := utils.ParseUintParam(c, "id")

	reservation, err := ctrl.reservations.Cancel(userID, reservationID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Reservación cancelada",
		"reservation": reservation,
	})
}

// ServePDF entrega el comprobante en línea. Sólo el dueño de la
// reservación puede descargarlo.
func (ctrl *ReservationController) ServePDF(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	reservationID := utils.ParseUintParam(c, "id")

	var reservation models.Reservation
	err := ctrl.db.Where("id = ? AND user_id = ?", reservationID, userID).
		First(&reservation).Error
	if err != nil || reservation.PdfURL == "" {
		response.NotFound(c, "Comprobante no encontrado")
		return
	}

	path := ctrl.pdf.Path(reservation.ID)
	if _, err := os.Stat(path); err != nil {
		response.NotFound(c, "Comprobante no encontrado")
		return
	}

	c.Header("Content-Disposition", "inline; filename=reservation_"+reservation.ReservationNumber+".pdf")
	c.Header("Content-Type", "application/pdf")
	c.File(path)
}
