package dto

type UpdateConfigInput struct {
	Value interface{} `json:"value"`
}
