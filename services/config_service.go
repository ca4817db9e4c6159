package services

import (
	"time"

	"vbdhotel/config"
	"vbdhotel/constants"
	"vbdhotel/errors"
	"vbdhotel/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const configCacheKey = "config:all"

// ConfigService expone la configuración del sitio guardada en la base.
// Se consulta por request; el caché en Redis se invalida en cada upsert.
type ConfigService struct {
	db  *gorm.DB
	rdb *redis.Client
}

func NewConfigService(db *gorm.DB, rdb *redis.Client) *ConfigService {
	return &ConfigService{db: db, rdb: rdb}
}

// GetAll devuelve todas las configuraciones aplanadas {clave: valor}.
func (s *ConfigService) GetAll() (map[string]interface{}, error) {
	flat := make(map[string]interface{})
	if s.rdb != nil {
		if hit, err := GetFromRedis(config.Ctx, s.rdb, configCacheKey, &flat); err == nil && hit {
			return flat, nil
		}
	}

	var configs []models.SiteConfig
	if err := s.db.Find(&configs).Error; err != nil {
		return nil, errors.Internal(err)
	}
	for _, cfg := range configs {
		flat[cfg.Key] = cfg.Value.Any
	}

	if s.rdb != nil {
		_ = SetToRedis(config.Ctx, s.rdb, configCacheKey, flat, 10*time.Minute)
	}
	return flat, nil
}

// Get devuelve el valor de una clave, o nil si no existe.
func (s *ConfigService) Get(key string) (interface{}, error) {
	var cfg models.SiteConfig
	if err := s.db.Where("key = ?", key).First(&cfg).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, errors.Internal(err)
	}
	return cfg.Value.Any, nil
}

// Upsert crea o reemplaza el valor de una clave.
func (s *ConfigService) Upsert(key string, value interface{}) (*models.SiteConfig, error) {
	cfg := models.SiteConfig{
		Key:   key,
		Value: models.JSONValue{Any: value},
	}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&cfg).Error
	if err != nil {
		return nil, errors.Internal(err)
	}

	if s.rdb != nil {
		_ = DeleteFromRedis(config.Ctx, s.rdb, configCacheKey)
	}
	return &cfg, nil
}

// CancellationHours lee la ventana de cancelación; si la clave falta o
// no es numérica aplica el valor por defecto.
func (s *ConfigService) CancellationHours() int {
	value, err := s.Get("cancellation_hours")
	if err != nil || value == nil {
		return constants.DefaultCancellationHours
	}
	switch v := value.(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return constants.DefaultCancellationHours
	}
}

// EmailEnabled indica si se envían notificaciones por correo.
func (s *ConfigService) EmailEnabled() bool {
	value, err := s.Get("email_notifications")
	if err != nil || value == nil {
		return false
	}
	enabled, ok := value.(bool)
	return ok && enabled
}

// Seed inserta las configuraciones iniciales cuando la tabla está vacía.
func (s *ConfigService) Seed() error {
	var count int64
	if err := s.db.Model(&models.SiteConfig{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defaults := []models.SiteConfig{
		{Key: "site_name", Value: models.JSONValue{Any: constants.DefaultSiteName}, Description: "Nombre del sitio web"},
		{Key: "max_reservation_days", Value: models.JSONValue{Any: constants.DefaultMaxReservationDays}, Description: "Máximo de días para reservar con anticipación"},
		{Key: "cancellation_hours", Value: models.JSONValue{Any: constants.DefaultCancellationHours}, Description: "Horas mínimas para cancelar sin penalización"},
		{Key: "email_notifications", Value: models.JSONValue{Any: true}, Description: "Enviar notificaciones por email"},
	}
	return s.db.Create(&defaults).Error
}
