package response

import (
	"net/http"

	"vbdhotel/errors"

	"github.com/gin-gonic/gin"
)

// Los errores siempre responden {"error": mensaje}, con el código HTTP
// según el tipo de error.

func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// FromError traduce un AppError a su respuesta JSON.
func FromError(c *gin.Context, err error) {
	Error(c, errors.HTTPStatus(err), errors.Message(err))
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func Unauthorized(c *gin.Context) {
	Error(c, http.StatusUnauthorized, "Token de acceso requerido")
}

func Forbidden(c *gin.Context) {
	Error(c, http.StatusForbidden, "Token inválido")
}

func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

func ServerError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Error interno del servidor")
}

// TotalPages calcula el número de páginas de una lista.
func TotalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	pages := int(total) / limit
	if int(total)%limit != 0 {
		pages++
	}
	return pages
}

// Paginated arma el sobre estándar de las listas:
// {<key>: items, totalPages, currentPage, total}.
func Paginated(c *gin.Context, key string, items interface{}, page, limit int, total int64) {
	c.JSON(http.StatusOK, gin.H{
		key:           items,
		"totalPages":  TotalPages(total, limit),
		"currentPage": page,
		"total":       total,
	})
}
