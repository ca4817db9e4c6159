package models

import "time"

// DestinationPurchase registra la compra de un destino por un usuario.
type DestinationPurchase struct {
	ID            uint         `gorm:"primaryKey" json:"id"`
	PurchaseDate  time.Time    `gorm:"autoCreateTime" json:"purchaseDate"`
	UserID        uint         `gorm:"not null;index" json:"userId"`
	UserEmail     string       `gorm:"not null" json:"userEmail"`
	DestinationID uint         `gorm:"not null" json:"destinationId"`
	Destination   *Destination `gorm:"foreignKey:DestinationID" json:"destination,omitempty"`
	Quantity      int          `gorm:"not null" json:"quantity"`
	VisitDate     time.Time    `gorm:"not null" json:"visitDate"`
	VisitTime     string       `json:"visitTime"`
	VisitorName   string       `gorm:"not null" json:"visitorName"`
	VisitorEmail  string       `gorm:"not null" json:"visitorEmail"`
	VisitorPhone  string       `gorm:"not null" json:"visitorPhone"`
	Total         float64      `gorm:"not null" json:"total"`
	Status        string       `gorm:"default:'confirmada'" json:"status"`
	TransactionID string       `gorm:"unique" json:"transactionId"`
}
