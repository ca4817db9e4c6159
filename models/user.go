package models

import (
	"time"

	"github.com/lib/pq"
)

type User struct {
	ID        uint          `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time     `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time     `gorm:"autoUpdateTime" json:"updatedAt"`
	Name      string        `gorm:"not null" json:"name"`
	Email     string        `gorm:"unique;not null" json:"email"`
	Password  string        `json:"-"`
	Phone     string        `json:"phone"`
	Country   string        `gorm:"default:'México'" json:"country"`
	Avatar    string        `json:"avatar"`
	Favorites pq.Int64Array `gorm:"type:integer[]" json:"favorites"`
}
