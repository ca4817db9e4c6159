package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"vbdhotel/dto"
	"vbdhotel/middleware"
	"vbdhotel/models"
	"vbdhotel/response"
	"vbdhotel/services"
	"vbdhotel/utils"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type ExperienceController struct {
	db      *gorm.DB
	ratings *services.RatingService
	audit   services.AuditLogger
}

func NewExperienceController(db *gorm.DB, ratings *services.RatingService, audit services.AuditLogger) *ExperienceController {
	return &ExperienceController{db: db, ratings: ratings, audit: audit}
}

func applyExperienceInput(experience *models.Experience, input dto.ExperienceInput) {
	experience.Title = input.Title
	experience.Description = input.Description
	experience.Category = input.Category
	experience.Location = input.Location
	experience.Duration = input.Duration
	experience.Price = input.Price
	experience.Images = pq.StringArray(input.Images)
	experience.Includes = pq.StringArray(input.Includes)
	experience.Requirements = pq.StringArray(input.Requirements)
	if input.Difficulty != "" {
		experience.Difficulty = input.Difficulty
	}
	experience.MaxParticipants = input.MaxParticipants
	experience.MinAge = input.MinAge
}

// List sólo devuelve experiencias activas; el borrado es lógico.
func (ctrl *ExperienceController) List(c *gin.Context) {
	page, limit, offset := utils.GetPagination(c)

	query := ctrl.db.Model(&models.Experience{}).Where("is_active = ?", true)
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		pattern := "%" + search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if location := c.Query("location"); location != "" {
		query = query.Where("location ILIKE ?", "%"+location+"%")
	}
	if maxPrice := c.Query("maxPrice"); maxPrice != "" {
		if value, err := strconv.ParseFloat(maxPrice, 64); err == nil {
			query = query.Where("price <= ?", value)
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var experiences []models.Experience
	err := query.Order("rating DESC, created_at DESC").
		Offset(offset).Limit(limit).
		Find(&experiences).Error
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Paginated(c, "experiences", experiences, page, limit, total)
}

func (ctrl *ExperienceController) GetByID(c *gin.Context) {
	experienceID := utils.ParseUintParam(c, "id")
	var experience models.Experience
	err := ctrl.db.Where("id = ? AND is_active = ?", experienceID, true).
		First(&experience).Error
	if err != nil {
		response.NotFound(c, "Experiencia no encontrada")
		return
	}

	reviews, err := ctrl.ratings.ListReviews(models.ReviewTargetExperience, experience.ID)
	if err != nil {
		response.ServerError(c)
		return
	}
	experience.Reviews = reviews

	c.JSON(http.StatusOK, gin.H{"experience": experience})
}

func (ctrl *ExperienceController) Create(c *gin.Context) {
	var input dto.ExperienceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Título y categoría son requeridos")
		return
	}

	experience := models.Experience{IsActive: true}
	applyExperienceInput(&experience, input)
	if err := ctrl.db.Create(&experience).Error; err != nil {
		response.ServerError(c)
		return
	}

	userID := middleware.CurrentUserID(c)
	ctrl.audit.Info("Experiencia creada", &userID, "create_experience",
		map[string]interface{}{"experienceId": experience.ID})
	c.JSON(http.StatusCreated, gin.H{
		"message":    "Experiencia creada",
		"experience": experience,
	})
}

func (ctrl *ExperienceController) Update(c *gin.Context) {
	experienceID := utils.ParseUintParam(c, "id")
	var experience models.Experience
	err := ctrl.db.Where("id = ? AND is_active = ?", experienceID, true).
		First(&experience).Error
	if err != nil {
		response.NotFound(c, "Experiencia no encontrada")
		return
	}

	var input dto.ExperienceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Título y categoría son requeridos")
		return
	}

	applyExperienceInput(&experience, input)
	if err := ctrl.db.Save(&experience).Error; err != nil {
		response.ServerError(c)
		return
	}

	userID := middleware.CurrentUserID(c)
	ctrl.audit.Info("Experiencia actualizada", &userID, "update_experience",
		map[string]interface{}{"experienceId": experience.ID})
	c.JSON(http.StatusOK, gin.H{
		"message":    "Experiencia actualizada",
		"experience": experience,
	})
}

// Delete desactiva la experiencia en lugar de borrarla, para conservar
// reseñas e historial.
func (ctrl *ExperienceController) Delete(c *gin.Context) {
	experienceID := utils.ParseUintParam(c, "id")
	var experience models.Experience
	err := ctrl.db.Where("id = ? AND is_active = ?", experienceID, true).
		First(&experience).Error
	if err != nil {
		response.NotFound(c, "Experiencia no encontrada")
		return
	}

	if err := ctrl.db.Model(&experience).Update("is_active", false).Error; err != nil {
		response.ServerError(c)
		return
	}

	userID := middleware.CurrentUserID(c)
	ctrl.audit.Info("Experiencia eliminada", &userID, "delete_experience",
		map[string]interface{}{"experienceId": experience.ID})
	c.JSON(http.StatusOK, gin.H{"message": "Experiencia eliminada"})
}

// AddReview usa el mismo agregador de reseñas que los hoteles.
func (ctrl *ExperienceController) AddReview(c *gin.Context) {
	experienceID := utils.ParseUintParam(c, "id")
	var experience models.Experience
	err := ctrl.db.Where("id = ? AND is_active = ?", experienceID, true).
		First(&experience).Error
	if err != nil {
		response.NotFound(c, "Experiencia no encontrada")
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

	review, err := ctrl.ratings.AddReview(models.ReviewTargetExperience, experienceID, userID, user.Name, input.Rating, input.Comment)
	if err != nil {
		response.FromError(c, err)
		return
	}

	ctrl.audit.Info("Reseña agregada", &userID, "add_review",
		map[string]interface{}{"experienceId": experienceID, "rating": input.Rating})
	c.JSON(http.StatusCreated, gin.H{
		"message": "Reseña agregada",
		"review":  review,
	})
}
