// Package audit escribe la bitácora de negocio en la base de datos.
// Es estrictamente best-effort: un fallo al registrar nunca se propaga
// a la operación que lo originó.
package audit

import (
	"log"

	"vbdhotel/models"

	"gorm.io/gorm"
)

type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) write(level, message string, userID *uint, action string, metadata map[string]interface{}) {
	entry := models.Log{
		Level:    level,
		Message:  message,
		UserID:   userID,
		Action:   action,
		Metadata: models.JSONMap(metadata),
	}
	if err := l.db.Create(&entry).Error; err != nil {
		log.Printf("audit: no se pudo guardar el log (%s/%s): %v", level, action, err)
	}
}

func (l *Logger) Info(message string, userID *uint, action string, metadata map[string]interface{}) {
	l.write(models.LogLevelInfo, message, userID, action, metadata)
}

func (l *Logger) Warning(message string, userID *uint, action string, metadata map[string]interface{}) {
	l.write(models.LogLevelWarning, message, userID, action, metadata)
}

func (l *Logger) Error(message string, userID *uint, action string, metadata map[string]interface{}) {
	l.write(models.LogLevelError, message, userID, action, metadata)
}
