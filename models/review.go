package models

import "time"

// Tipos de entidad que aceptan reseñas.
const (
	ReviewTargetHotel       = "hotel"
	ReviewTargetDestination = "destination"
	ReviewTargetExperience  = "experience"
)

// Review es una reseña normalizada. El nombre del usuario se copia al
// momento de escribir y no sigue cambios posteriores del perfil.
type Review struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	TargetType string    `gorm:"index:idx_reviews_target;not null" json:"-"`
	TargetID   uint      `gorm:"index:idx_reviews_target;not null" json:"-"`
	UserID     uint      `gorm:"not null" json:"userId"`
	UserName   string    `json:"userName"`
	Rating     int       `gorm:"not null" json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"date"`
}
