package services

import (
	"time"

	"vbdhotel/config"
	"vbdhotel/errors"

	"github.com/dgrijalva/jwt-go"
)

// UserInfo es la identidad embebida en el token.
type UserInfo struct {
	UserID uint   `json:"userId"`
	Email  string `json:"email"`
}

type Claims struct {
	UserInfo
	jwt.StandardClaims
}

func jwtSecret() []byte {
	return []byte(config.GetEnvDefault("JWT_SECRET", "vbdhotel-secret-key-2023"))
}

// GenerateToken firma un token HS256 con la identidad del usuario.
func GenerateToken(info UserInfo, expiry time.Duration) (string, error) {
	claims := &Claims{
		UserInfo: info,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(expiry).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// ParseToken valida firma y expiración y devuelve la identidad.
func ParseToken(tokenString string) (UserInfo, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New(errors.KindForbidden, "Token inválido")
		}
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return UserInfo{}, errors.Wrap(errors.KindForbidden, "Token inválido", err)
	}
	if claims.UserID == 0 {
		return UserInfo{}, errors.New(errors.KindForbidden, "Token inválido")
	}
	return claims.UserInfo, nil
}
