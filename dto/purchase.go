package dto

type PurchaseInput struct {
	Quantity     int    `json:"quantity" binding:"required,min=1"`
	VisitDate    string `json:"visitDate" binding:"required"`
	VisitTime    string `json:"visitTime"`
	VisitorName  string `json:"visitorName" binding:"required"`
	VisitorEmail string `json:"visitorEmail" binding:"required,email"`
	VisitorPhone string `json:"visitorPhone" binding:"required"`
}
