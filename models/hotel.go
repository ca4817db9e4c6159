package models

import (
	"time"

	"github.com/lib/pq"
)

type Hotel struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	Name        string         `gorm:"not null" json:"name"`
	Location    string         `gorm:"not null" json:"location"`
	Description string         `json:"description"`
	Price       float64        `gorm:"not null" json:"price"`
	Amenities   pq.StringArray `gorm:"type:text[]" json:"amenities"`
	Images      pq.StringArray `gorm:"type:text[]" json:"images"`
	Videos      pq.StringArray `gorm:"type:text[]" json:"videos"`
	// Rating es el promedio materializado de las reseñas, redondeado a
	// un decimal. Se recalcula en cada escritura de reseña.
	Rating  float64  `gorm:"default:0" json:"rating"`
	Reviews []Review `gorm:"-" json:"reviews,omitempty"`
	Lat     float64  `json:"lat"`
	Lng     float64  `json:"lng"`
	City    string   `gorm:"default:'Reynosa'" json:"city"`
	Address string   `json:"address"`
	Phone   string   `json:"phone"`
	Email   string   `json:"email"`
}
