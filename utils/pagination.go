package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// GetPagination lee ?page y ?limit con sus valores por defecto y
// devuelve además el offset para la consulta.
func GetPagination(c *gin.Context) (page, limit, offset int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err = strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}
	return page, limit, (page - 1) * limit
}

// ParseUintParam convierte un parámetro de ruta a uint; 0 si es inválido.
func ParseUintParam(c *gin.Context, name string) uint {
	value, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0
	}
	return uint(value)
}
