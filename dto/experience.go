package dto

type ExperienceInput struct {
	Title           string   `json:"title" binding:"required"`
	Description     string   `json:"description"`
	Category        string   `json:"category" binding:"required"`
	Location        string   `json:"location"`
	Duration        string   `json:"duration"`
	Price           float64  `json:"price"`
	Images          []string `json:"images"`
	Includes        []string `json:"includes"`
	Requirements    []string `json:"requirements"`
	Difficulty      string   `json:"difficulty"`
	MaxParticipants int      `json:"maxParticipants"`
	MinAge          int      `json:"minAge"`
}
