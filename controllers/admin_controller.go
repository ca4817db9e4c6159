package controllers

import (
	"net/http"

	"vbdhotel/dto"
	"vbdhotel/middleware"
	"vbdhotel/models"
	"vbdhotel/response"
	"vbdhotel/services"
	"vbdhotel/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const defaultLogsLimit = 50

type AdminController struct {
	db    *gorm.DB
	cfg   *services.ConfigService
	audit services.AuditLogger
}

func NewAdminController(db *gorm.DB, cfg *services.ConfigService, audit services.AuditLogger) *AdminController {
	return &AdminController{db: db, cfg: cfg, audit: audit}
}

// GetStats godoc
// @Summary Estadísticas generales del sitio
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /api/admin/stats [get]
func (ctrl *AdminController) GetStats(c *gin.Context) {
	var users, hotels, reservations int64
	if err := ctrl.db.Model(&models.User{}).Count(&users).Error; err != nil {
		response.ServerError(c)
		return
	}
	if err := ctrl.db.Model(&models.Hotel{}).Count(&hotels).Error; err != nil {
		response.ServerError(c)
		return
	}
	if err := ctrl.db.Model(&models.Reservation{}).Count(&reservations).Error; err != nil {
		response.ServerError(c)
		return
	}

	// Sólo cuentan como ingresos las reservaciones que llegaron a buen
	// término o siguen en pie.
	var revenue float64
	err := ctrl.db.Model(&models.Reservation{}).
		Where("status IN ?", []string{models.ReservationStatusConfirmed, models.ReservationStatusCompleted}).
		Select("COALESCE(SUM(total), 0)").
		Scan(&revenue).Error
	if err != nil {
		response.ServerError(c)
		return
	}

	var recent []models.Reservation
	err = ctrl.db.Preload("Hotel").Preload("User").
		Order("created_at DESC").
		Limit(10).
		Find(&recent).Error
	if err != nil {
		response.ServerError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"totalUsers":         users,
		"totalHotels":        hotels,
		"totalReservations":  reservations,
		"totalRevenue":       revenue,
		"recentReservations": recent,
	})
}

// GetConfig devuelve la configuración aplanada {clave: valor}.
func (ctrl *AdminController) GetConfig(c *gin.Context) {
	flat, err := ctrl.cfg.GetAll()
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"config": flat})
}

func (ctrl *AdminController) UpdateConfig(c *gin.Context) {
	key := c.Param("key")
	if key == "" {
		response.BadRequest(c, "La clave es requerida")
		return
	}

	var input dto.UpdateConfigInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "El valor es requerido")
		return
	}

	cfg, err := ctrl.cfg.Upsert(key, input.Value)
	if err != nil {
		response.FromError(c, err)
		return
	}

	userID := middleware.CurrentUserID(c)
	ctrl.audit.Info("Configuración actualizada", &userID, "update_config",
		map[string]interface{}{"key": key})
	c.JSON(http.StatusOK, gin.H{
		"message": "Configuración actualizada",
		"config":  cfg,
	})
}

// GetLogs lista la bitácora, recientes primero, con filtro por nivel.
func (ctrl *AdminController) GetLogs(c *gin.Context) {
	page, limit, offset := utils.GetPagination(c)
	if c.Query("limit") == "" {
		limit = defaultLogsLimit
		offset = (page - 1) * limit
	}

	query := ctrl.db.Model(&models.Log{})
	if level := c.Query("level"); level != "" {
		query = query.Where("level = ?", level)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var logs []models.Log
	err := query.Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&logs).Error
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Paginated(c, "logs", logs, page, limit, total)
}
