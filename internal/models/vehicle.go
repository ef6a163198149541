package models

import "time"

type Vehicle struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Make      string    `json:"make" gorm:"not null"`
	Model     string    `json:"model" gorm:"not null"`
	Year      int       `json:"year"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
