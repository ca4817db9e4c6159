package models

import "time"

// SiteConfig es una configuración del sitio: un valor JSON arbitrario
// por clave, actualizable por upsert.
type SiteConfig struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Key         string    `gorm:"unique;not null" json:"key"`
	Value       JSONValue `gorm:"type:jsonb" json:"value"`
	Description string    `json:"description"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
