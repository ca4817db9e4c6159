package controllers

import (
	"net/http"
	"time"

	"vbdhotel/dto"
	"vbdhotel/response"
	"vbdhotel/services"

	"github.com/gin-gonic/gin"
)

const tokenExpiry = 24 * time.Hour

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// Register godoc
// @Summary Registrar un usuario
// @Tags auth
// @Accept json
// @Produce json
// @Param input body dto.RegisterInput true "Datos del usuario"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /api/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Todos los campos son requeridos")
		return
	}

	user, err := ctrl.auth.Register(input.Name, input.Email, input.Password, input.Phone, input.Country)
	if err != nil {
		response.FromError(c, err)
		return
	}

	token, err := services.GenerateToken(services.UserInfo{UserID: user.ID, Email: user.Email}, tokenExpiry)
	if err != nil {
		response.ServerError(c)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Usuario registrado exitosamente",
		"token":   token,
		"user":    dto.SanitizeUser(*user),
	})
}

// Login godoc
// @Summary Iniciar sesión
// @Tags auth
// @Accept json
// @Produce json
// @Param input body dto.LoginInput true "Credenciales"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]string
// @Router /api/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Email y password son requeridos")
		return
	}

	user, err := ctrl.auth.Login(input.Email, input.Password)
	if err != nil {
		response.FromError(c, err)
		return
	}

	token, err := services.GenerateToken(services.UserInfo{UserID: user.ID, Email: user.Email}, tokenExpiry)
	if err != nil {
		response.ServerError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login exitoso",
		"token":   token,
		"user":    dto.SanitizeUser(*user),
	})
}

// AuthGoogle inicia sesión con un id_token de Google; crea el usuario
// la primera vez.
func (ctrl *AuthController) AuthGoogle(c *gin.Context) {
	var input dto.GoogleAuthInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "idToken es requerido")
		return
	}

	user, err := ctrl.auth.LoginWithGoogle(c.Request.Context(), input.IDToken)
	if err != nil {
		response.FromError(c, err)
		return
	}

	token, err := services.GenerateToken(services.UserInfo{UserID: user.ID, Email: user.Email}, tokenExpiry)
	if err != nil {
		response.ServerError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login exitoso",
		"token":   token,
		"user":    dto.SanitizeUser(*user),
	})
}
