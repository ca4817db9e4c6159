package models

import "time"

// Niveles de los registros de auditoría.
const (
	LogLevelInfo    = "info"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Log es un evento de auditoría inmutable.
type Log struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"createdAt"`
	Level     string    `gorm:"index;not null" json:"level"`
	Message   string    `json:"message"`
	UserID    *uint     `json:"userId,omitempty"`
	User      *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Action    string    `json:"action,omitempty"`
	Metadata  JSONMap   `gorm:"type:jsonb" json:"metadata,omitempty"`
}
