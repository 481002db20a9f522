package models

import "time"

// Booking represents a customer appointment for a single service.
//
// ServiceID is the stored reference. Service is filled on read and stays
// nil when the referenced service no longer exists.
type Booking struct {
	ID           string    `json:"_id" gorm:"primaryKey;type:varchar(36)"`
	CustomerName string    `json:"customerName" gorm:"not null"`
	Phone        string    `json:"phone" gorm:"not null"`
	ServiceID    string    `json:"-" gorm:"type:varchar(36);not null;index"`
	Service      *Service  `json:"selectedService" gorm:"-"`
	Date         time.Time `json:"date" gorm:"not null"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
