package models

import "time"

// Service represents a salon offering that bookings can reference.
type Service struct {
	ID          string    `json:"_id" gorm:"primaryKey;type:varchar(36)"`
	Name        string    `json:"name" gorm:"not null"`
	Price       float64   `json:"price" gorm:"not null"`
	Duration    int       `json:"duration" gorm:"not null"` // minutes
	Description string    `json:"description" gorm:"type:text;not null"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
