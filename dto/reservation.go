package dto

import "vbdhotel/models"

// Las fechas viajan como "2006-01-02".
type CreateReservationInput struct {
	HotelID  uint   `json:"hotelId" binding:"required"`
	Checkin  string `json:"checkin" binding:"required"`
	Checkout string `json:"checkout" binding:"required"`
	Adults   int    `json:"adults" binding:"required,min=1"`
	Children int    `json:"children" binding:"min=0"`
	RoomType string `json:"roomType" binding:"required"`
}

type CheckAvailabilityInput struct {
	Checkin  string `json:"checkin" binding:"required"`
	Checkout string `json:"checkout" binding:"required"`
}

type AvailabilityResponse struct {
	Available      bool `json:"available"`
	AvailableRooms int  `json:"availableRooms"`
	TotalRooms     int  `json:"totalRooms"`
	BookedRooms    int  `json:"bookedRooms"`
}

type HotelSummary struct {
	Name     string   `json:"name"`
	Location string   `json:"location"`
	Images   []string `json:"images"`
}

type ReservationCreatedResponse struct {
	Message     string             `json:"message"`
	Reservation models.Reservation `json:"reservation"`
	Hotel       HotelSummary       `json:"hotel"`
	PdfURL      string             `json:"pdfUrl,omitempty"`
}
