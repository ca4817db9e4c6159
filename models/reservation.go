package models

import "time"

// Estados de una reservación. Ningún flujo del sistema llega hoy a
// "completada"; el estado existe para datos cargados externamente.
const (
	ReservationStatusPending   = "pendiente"
	ReservationStatusConfirmed = "confirmada"
	ReservationStatusCancelled = "cancelada"
	ReservationStatusCompleted = "completada"
)

type Reservation struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UserID            uint      `gorm:"not null;index" json:"userId"`
	User              *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	HotelID           uint      `gorm:"not null;index" json:"hotelId"`
	Hotel             *Hotel    `gorm:"foreignKey:HotelID" json:"hotel,omitempty"`
	Checkin           time.Time `gorm:"not null" json:"checkin"`
	Checkout          time.Time `gorm:"not null" json:"checkout"`
	Adults            int       `gorm:"not null" json:"adults"`
	Children          int       `gorm:"default:0" json:"children"`
	RoomType          string    `gorm:"not null" json:"roomType"`
	Total             float64   `gorm:"not null" json:"total"`
	Status            string    `gorm:"default:'confirmada'" json:"status"`
	ReservationNumber string    `gorm:"unique" json:"reservationNumber"`
	PdfURL            string    `json:"pdfUrl,omitempty"`
}
