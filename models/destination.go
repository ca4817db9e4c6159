package models

import (
	"time"

	"github.com/lib/pq"
)

type Destination struct {
	ID                 uint           `gorm:"primaryKey" json:"id"`
	CreatedAt          time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	Name               string         `gorm:"not null" json:"name"`
	Description        string         `json:"description"`
	Country            string         `gorm:"default:'México'" json:"country"`
	State              string         `json:"state"`
	City               string         `json:"city"`
	Images             pq.StringArray `gorm:"type:text[]" json:"images"`
	Lat                float64        `json:"lat"`
	Lng                float64        `json:"lng"`
	Attractions        pq.StringArray `gorm:"type:text[]" json:"attractions"`
	BestTimeToVisit    string         `json:"bestTimeToVisit"`
	AverageTemperature string         `json:"averageTemperature"`
	Currency           string         `gorm:"default:'MXN'" json:"currency"`
	Language           string         `gorm:"default:'Español'" json:"language"`
	Timezone           string         `json:"timezone"`
	PopularWith        pq.StringArray `gorm:"type:text[]" json:"popularWith"`
	Tags               pq.StringArray `gorm:"type:text[]" json:"tags"`
	Price              float64        `gorm:"default:0" json:"price"`
	Rating             float64        `gorm:"default:0" json:"rating"`
	Reviews            []Review       `gorm:"-" json:"reviews,omitempty"`
}
