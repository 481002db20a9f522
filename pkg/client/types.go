package client

import "time"

// Service is a salon offering as returned by the API.
type Service struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Duration    int       `json:"duration"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Booking is an appointment as returned by the API.
// SelectedService is nil when the referenced service was deleted.
type Booking struct {
	ID              string    `json:"_id"`
	CustomerName    string    `json:"customerName"`
	Phone           string    `json:"phone"`
	SelectedService *Service  `json:"selectedService"`
	Date            time.Time `json:"date"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ServiceForm is the body sent to create or update a service.
type ServiceForm struct {
	Name        string  `json:"name,omitempty"`
	Price       float64 `json:"price"`
	Duration    int     `json:"duration"`
	Description string  `json:"description,omitempty"`
}

// BookingForm is the body sent to create or update a booking.
// SelectedService carries the service ID.
type BookingForm struct {
	CustomerName    string `json:"customerName,omitempty"`
	Phone           string `json:"phone,omitempty"`
	SelectedService string `json:"selectedService,omitempty"`
	Date            string `json:"date,omitempty"`
}

type messageResponse struct {
	Message string `json:"message"`
}
