package services

import (
	"context"
	"strings"

	"vbdhotel/config"
	"vbdhotel/errors"
	"vbdhotel/models"
	"vbdhotel/validator"

	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"
	"gorm.io/gorm"
)

const bcryptCost = 12

// HashPassword genera el hash bcrypt que se persiste en la base.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", errors.Internal(err)
	}
	return string(hashed), nil
}

// CheckPassword compara un password en claro contra su hash.
func CheckPassword(hashed, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}

// AuthService registra usuarios y resuelve credenciales, tanto locales
// como federadas vía Google.
type AuthService struct {
	db    *gorm.DB
	audit AuditLogger
}

func NewAuthService(db *gorm.DB, audit AuditLogger) *AuthService {
	return &AuthService{db: db, audit: audit}
}

// Register crea un usuario local. El email es único: el duplicado se
// reporta como conflicto antes de intentar la inserción.
func (s *AuthService) Register(name, email, password, phone, country string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var count int64
	if err := s.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, errors.Internal(err)
	}
	if count > 0 {
		s.audit.Warning("Intento de registro con email existente", nil, "register_attempt",
			map[string]interface{}{"email": email})
		return nil, errors.Conflict("El usuario ya existe")
	}

	hashed, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:     name,
		Email:    email,
		Password: hashed,
		Phone:    phone,
		Country:  country,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, errors.Internal(err)
	}

	s.audit.Info("Usuario registrado", &user.ID, "register",
		map[string]interface{}{"email": user.Email})
	return &user, nil
}

// Login valida credenciales. Usuario inexistente y password incorrecto
// producen el mismo mensaje para no filtrar qué emails existen.
func (s *AuthService) Login(email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			s.audit.Warning("Intento de login con email desconocido", nil, "login_failed",
				map[string]interface{}{"email": email})
			return nil, errors.New(errors.KindAuth, "Credenciales inválidas")
		}
		return nil, errors.Internal(err)
	}

	if !CheckPassword(user.Password, password) {
		s.audit.Warning("Intento de login con password incorrecto", &user.ID, "login_failed",
			map[string]interface{}{"email": email})
		return nil, errors.New(errors.KindAuth, "Credenciales inválidas")
	}

	s.audit.Info("Login exitoso", &user.ID, "login",
		map[string]interface{}{"email": user.Email})
	return &user, nil
}

// LoginWithGoogle verifica el id_token contra Google y crea el usuario
// en el primer inicio de sesión federado.
func (s *AuthService) LoginWithGoogle(ctx context.Context, rawToken string) (*models.User, error) {
	clientID := config.GetEnv("GOOGLE_CLIENT_ID")
	payload, err := idtoken.Validate(ctx, rawToken, clientID)
	if err != nil {
		return nil, errors.New(errors.KindForbidden, "Token de Google inválido")
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	if !validator.IsEmail(email) {
		return nil, errors.New(errors.KindForbidden, "Token de Google inválido")
	}
	email = strings.ToLower(email)

	var user models.User
	err = s.db.Where("email = ?", email).First(&user).Error
	switch {
	case err == gorm.ErrRecordNotFound:
		user = models.User{Name: name, Email: email}
		if err := s.db.Create(&user).Error; err != nil {
			return nil, errors.Internal(err)
		}
		s.audit.Info("Usuario creado vía Google", &user.ID, "register_google",
			map[string]interface{}{"email": email})
	case err != nil:
		return nil, errors.Internal(err)
	}

	s.audit.Info("Login con Google", &user.ID, "login_google",
		map[string]interface{}{"email": email})
	return &user, nil
}
