package jobs

import (
	"log"
	"time"

	"vbdhotel/constants"
	"vbdhotel/models"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// InitCronJobs registra las tareas periódicas y arranca el scheduler.
func InitCronJobs(c *cron.Cron, db *gorm.DB) {
	_, err := c.AddFunc("@every 24h", func() {
		CleanOldLogs(db)
	})
	if err != nil {
		log.Printf("No se pudo registrar la limpieza de logs: %v", err)
		return
	}
	c.Start()
}

// CleanOldLogs borra la bitácora con más de 30 días de antigüedad,
// conservando siempre los registros de nivel error.
func CleanOldLogs(db *gorm.DB) {
	cutoff := time.Now().AddDate(0, 0, -constants.LogRetentionDays)
	result := db.Where("created_at < ? AND level <> ?", cutoff, models.LogLevelError).
		Delete(&models.Log{})
	if result.Error != nil {
		log.Printf("Error limpiando logs antiguos: %v", result.Error)
		return
	}
	log.Printf("Limpieza de logs: %d registros eliminados", result.RowsAffected)
}
