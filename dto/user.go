package dto

import (
	"time"

	"vbdhotel/models"
)

type UpdateProfileInput struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Country string `json:"country"`
}

// UserResponse es el usuario sin credenciales, tal como se expone al cliente.
type UserResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Country   string    `json:"country"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func SanitizeUser(user models.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Phone:     user.Phone,
		Country:   user.Country,
		Avatar:    user.Avatar,
		CreatedAt: user.CreatedAt,
	}
}
