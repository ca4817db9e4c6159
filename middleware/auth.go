package middleware

import (
	"strings"

	"vbdhotel/response"
	"vbdhotel/services"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware exige un Bearer token válido. Sin encabezado o sin el
// esquema Bearer responde 401; con token inválido o expirado responde
// 403. La identidad queda en el contexto como userID y userEmail.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		info, err := services.ParseToken(tokenString)
		if err != nil {
			response.Forbidden(c)
			c.Abort()
			return
		}

		c.Set("userID", info.UserID)
		c.Set("userEmail", info.Email)
		c.Next()
	}
}

// CurrentUserID lee la identidad que dejó AuthMiddleware.
func CurrentUserID(c *gin.Context) uint {
	id, _ := c.Get("userID")
	userID, _ := id.(uint)
	return userID
}

// CurrentUserEmail lee el email que dejó AuthMiddleware.
func CurrentUserEmail(c *gin.Context) string {
	email, _ := c.Get("userEmail")
	value, _ := email.(string)
	return value
}
