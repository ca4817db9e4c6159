package dto

type DestinationInput struct {
	Name               string   `json:"name" binding:"required"`
	Description        string   `json:"description"`
	Country            string   `json:"country"`
	State              string   `json:"state"`
	City               string   `json:"city"`
	Images             []string `json:"images"`
	Lat                float64  `json:"lat"`
	Lng                float64  `json:"lng"`
	Attractions        []string `json:"attractions"`
	BestTimeToVisit    string   `json:"bestTimeToVisit"`
	AverageTemperature string   `json:"averageTemperature"`
	Currency           string   `json:"currency"`
	Language           string   `json:"language"`
	Timezone           string   `json:"timezone"`
	PopularWith        []string `json:"popularWith"`
	Tags               []string `json:"tags"`
	Price              float64  `json:"price"`
}
