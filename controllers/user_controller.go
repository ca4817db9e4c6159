package controllers

import (
	"fmt"
	"net/http"

	"vbdhotel/config"
	"vbdhotel/constants"
	"vbdhotel/dto"
	"vbdhotel/errors"
	"vbdhotel/middleware"
	"vbdhotel/models"
	"vbdhotel/response"
	"vbdhotel/services"
	"vbdhotel/utils"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type UserController struct {
	db    *gorm.DB
	audit services.AuditLogger
}

func NewUserController(db *gorm.DB, audit services.AuditLogger) *UserController {
	return &UserController{db: db, audit: audit}
}

func (ctrl *UserController) currentUser(c *gin.Context) (*models.User, bool) {
	userID := middleware.CurrentUserID(c)
	var user models.User
	if err := ctrl.db.First(&user, userID).Error; err != nil {
		response.NotFound(c, "Usuario no encontrado")
		return nil, false
	}
	return &user, true
}

// GetProfile godoc
// @Summary Perfil del usuario autenticado
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserResponse
// @Router /api/profile [get]
func (ctrl *UserController) GetProfile(c *gin.Context) {
	user, ok := ctrl.currentUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": dto.SanitizeUser(*user)})
}

func (ctrl *UserController) UpdateProfile(c *gin.Context) {
	var input dto.UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Datos inválidos")
		return
	}

	user, ok := ctrl.currentUser(c)
	if !ok {
		return
	}

	updates := map[string]interface{}{}
	if input.Name != "" {
		updates["name"] = input.Name
	}
	if input.Phone != "" {
		updates["phone"] = input.Phone
	}
	if input.Country != "" {
		updates["country"] = input.Country
	}
	if len(updates) > 0 {
		if err := ctrl.db.Model(user).Updates(updates).Error; err != nil {
			response.ServerError(c)
			return
		}
	}

	ctrl.audit.Info("Perfil actualizado", &user.ID, "update_profile", nil)
	c.JSON(http.StatusOK, gin.H{
		"message": "Perfil actualizado",
		"user":    dto.SanitizeUser(*user),
	})
}

// UploadAvatar sube la imagen a Cloudinary y guarda la URL resultante.
func (ctrl *UserController) UploadAvatar(c *gin.Context) {
	user, ok := ctrl.currentUser(c)
	if !ok {
		return
	}

	file, err := c.FormFile("avatar")
	if err != nil {
		response.BadRequest(c, "Se requiere un archivo de imagen")
		return
	}
	if file.Size > constants.MaxAvatarSize {
		response.BadRequest(c, "La imagen no debe superar 5MB")
		return
	}

	src, err := file.Open()
	if err != nil {
		response.ServerError(c)
		return
	}
	defer src.Close()

	result, err := config.Cloudinary.Upload.Upload(c.Request.Context(), src, uploader.UploadParams{
		Folder:   "avatars",
		PublicID: fmt.Sprintf("user_%d", user.ID),
	})
	if err != nil {
		ctrl.audit.Error("Error subiendo avatar", &user.ID, "upload_avatar",
			map[string]interface{}{"error": err.Error()})
		response.ServerError(c)
		return
	}

	if err := ctrl.db.Model(user).Update("avatar", result.SecureURL).Error; err != nil {
		response.ServerError(c)
		return
	}
	user.Avatar = result.SecureURL

	ctrl.audit.Info("Avatar actualizado", &user.ID, "upload_avatar", nil)
	c.JSON(http.StatusOK, gin.H{
		"message": "Avatar actualizado",
		"avatar":  user.Avatar,
	})
}

// AddFavorite agrega un hotel a los favoritos del usuario. El hotel
// debe existir y no estar ya en la lista.
func (ctrl *UserController) AddFavorite(c *gin.Context) {
	hotelID := utils.ParseUintParam(c, "hotelId")
	if hotelID == 0 {
		response.BadRequest(c, "ID de hotel inválido")
		return
	}

	var hotel models.Hotel
	if err := ctrl.db.First(&hotel, hotelID).Error; err != nil {
		response.NotFound(c, "Hotel no encontrado")
		return
	}

	user, ok := ctrl.currentUser(c)
	if !ok {
		return
	}

	for _, id := range user.Favorites {
		if uint(id) == hotelID {
			response.FromError(c, errors.Conflict("El hotel ya está en favoritos"))
			return
		}
	}

	user.Favorites = append(user.Favorites, int64(hotelID))
	if err := ctrl.db.Model(user).Update("favorites", user.Favorites).Error; err != nil {
		response.ServerError(c)
		return
	}

	ctrl.audit.Info("Hotel agregado a favoritos", &user.ID, "add_favorite",
		map[string]interface{}{"hotelId": hotelID})
	c.JSON(http.StatusOK, gin.H{
		"message":   "Hotel agregado a favoritos",
		"favorites": user.Favorites,
	})
}

func (ctrl *UserController) RemoveFavorite(c *gin.Context) {
	hotelID := utils.ParseUintParam(c, "hotelId")
	if hotelID == 0 {
		response.BadRequest(c, "ID de hotel inválido")
		return
	}

	user, ok := ctrl.currentUser(c)
	if !ok {
		return
	}

	filtered := make(pq.Int64Array, 0, len(user.Favorites))
	found := false
	for _, id := range user.Favorites {
		if uint(id) == hotelID {
			found = true
			continue
		}
		filtered = append(filtered, id)
	}
	if !found {
		response.FromError(c, errors.Conflict("El hotel no está en favoritos"))
		return
	}

	user.Favorites = filtered
	if err := ctrl.db.Model(user).Update("favorites", user.Favorites).Error; err != nil {
		response.ServerError(c)
		return
	}

	ctrl.audit.Info("Hotel eliminado de favoritos", &user.ID, "remove_favorite",
		map[string]interface{}{"hotelId": hotelID})
	c.JSON(http.StatusOK, gin.H{
		"message":   "Hotel eliminado de favoritos",
		"favorites": user.Favorites,
	})
}

// GetFavorites devuelve los hoteles favoritos completos, no sólo los IDs.
func (ctrl *UserController) GetFavorites(c *gin.Context) {
	user, ok := ctrl.currentUser(c)
	if !ok {
		return
	}

	hotels := []models.Hotel{}
	if len(user.Favorites) > 0 {
		ids := make([]uint, len(user.Favorites))
		for i, id := range user.Favorites {
			ids[i] = uint(id)
		}
		if err := ctrl.db.Where("id IN ?", ids).Find(&hotels).Error; err != nil {
			response.ServerError(c)
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"favorites": hotels})
}
