package models

import (
	"time"

	"github.com/lib/pq"
)

type Experience struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	Title           string         `gorm:"not null" json:"title"`
	Description     string         `json:"description"`
	Category        string         `gorm:"not null" json:"category"`
	Location        string         `json:"location"`
	Duration        string         `json:"duration"`
	Price           float64        `json:"price"`
	Images          pq.StringArray `gorm:"type:text[]" json:"images"`
	Includes        pq.StringArray `gorm:"type:text[]" json:"includes"`
	Requirements    pq.StringArray `gorm:"type:text[]" json:"requirements"`
	Difficulty      string         `gorm:"default:'easy'" json:"difficulty"`
	MaxParticipants int            `json:"maxParticipants"`
	MinAge          int            `json:"minAge"`
	Rating          float64        `gorm:"default:0" json:"rating"`
	Reviews         []Review       `gorm:"-" json:"reviews,omitempty"`
	// El borrado de experiencias es lógico; las listas sólo muestran activas.
	IsActive bool `gorm:"default:true" json:"isActive"`
}
