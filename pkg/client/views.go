package client

import (
	"context"
	"errors"
	"sync"
)

// Messages shown to the user. API error text is never surfaced.
const (
	MsgFillAllFields = "Please fill all fields"

	MsgServicesFetchFailed = "Failed to fetch services"
	MsgServiceCreated      = "Service created successfully"
	MsgServiceCreateFailed = "Failed to create service"
	MsgServiceUpdated      = "Service updated successfully"
	MsgServiceUpdateFailed = "Failed to update service"
	MsgServiceDeleted      = "Service deleted successfully"
	MsgServiceDeleteFailed = "Failed to delete service"
	MsgBookingsFetchFailed = "Failed to fetch bookings"
	MsgBookingCreated      = "Booking created successfully"
	MsgBookingCreateFailed = "Failed to create booking"
	MsgBookingUpdated      = "Booking updated successfully"
	MsgBookingUpdateFailed = "Failed to update booking"
	MsgBookingDeleted      = "Booking deleted successfully"
	MsgBookingDeleteFailed = "Failed to delete booking"
)

// ErrIncompleteForm is returned when a form is submitted with a missing field.
var ErrIncompleteForm = errors.New(MsgFillAllFields)

// Notifier receives the short success and failure messages a view produces.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// ServiceAPI is the part of Client used by ServiceView.
type ServiceAPI interface {
	ListServices(ctx context.Context) ([]Service, error)
	CreateService(ctx context.Context, form ServiceForm) (*Service, error)
	UpdateService(ctx context.Context, id string, form ServiceForm) (*Service, error)
	DeleteService(ctx context.Context, id string) (string, error)
}

// BookingAPI is the part of Client used by BookingView.
type BookingAPI interface {
	ListBookings(ctx context.Context) ([]Booking, error)
	CreateBooking(ctx context.Context, form BookingForm) (*Booking, error)
	UpdateBooking(ctx context.Context, id string, form BookingForm) (*Booking, error)
	DeleteBooking(ctx context.Context, id string) (string, error)
}

// ServiceView holds the local list of services. After a mutation the
// returned record is spliced into the list; the server is not re-read.
type ServiceView struct {
	api    ServiceAPI
	notify Notifier

	mu    sync.RWMutex
	items []Service
}

// NewServiceView creates an empty view.
func NewServiceView(api ServiceAPI, notify Notifier) *ServiceView {
	return &ServiceView{api: api, notify: notify}
}

// Items returns a copy of the local list.
func (v *ServiceView) Items() []Service {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return append([]Service(nil), v.items...)
}

// Featured returns at most n services from the start of the list.
func (v *ServiceView) Featured(n int) []Service {
	items := v.Items()
	if len(items) > n {
		items = items[:n]
	}
	return items
}

// Load replaces the local list with the server's.
func (v *ServiceView) Load(ctx context.Context) error {
	items, err := v.api.ListServices(ctx)
	if err != nil {
		v.notify.Error(MsgServicesFetchFailed)
		return err
	}
	v.mu.Lock()
	v.items = items
	v.mu.Unlock()
	return nil
}

// Create submits a new service and appends it locally.
func (v *ServiceView) Create(ctx context.Context, form ServiceForm) (*Service, error) {
	if !serviceFormComplete(form) {
		v.notify.Error(MsgFillAllFields)
		return nil, ErrIncompleteForm
	}
	created, err := v.api.CreateService(ctx, form)
	if err != nil {
		v.notify.Error(MsgServiceCreateFailed)
		return nil, err
	}
	v.mu.Lock()
	v.items = append(v.items, *created)
	v.mu.Unlock()
	v.notify.Success(MsgServiceCreated)
	return created, nil
}

// Update submits an edited service and replaces the local copy.
func (v *ServiceView) Update(ctx context.Context, id string, form ServiceForm) (*Service, error) {
	if !serviceFormComplete(form) {
		v.notify.Error(MsgFillAllFields)
		return nil, ErrIncompleteForm
	}
	updated, err := v.api.UpdateService(ctx, id, form)
	if err != nil {
		v.notify.Error(MsgServiceUpdateFailed)
		return nil, err
	}
	v.mu.Lock()
	for i := range v.items {
		if v.items[i].ID == updated.ID {
			v.items[i] = *updated
		}
	}
	v.mu.Unlock()
	v.notify.Success(MsgServiceUpdated)
	return updated, nil
}

// Delete removes a service on the server and from the local list.
func (v *ServiceView) Delete(ctx context.Context, id string) error {
	if _, err := v.api.DeleteService(ctx, id); err != nil {
		v.notify.Error(MsgServiceDeleteFailed)
		return err
	}
	v.mu.Lock()
	kept := v.items[:0]
	for _, s := range v.items {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	v.items = kept
	v.mu.Unlock()
	v.notify.Success(MsgServiceDeleted)
	return nil
}

// BookingView holds the local list of bookings, updated the same way as ServiceView.
type BookingView struct {
	api    BookingAPI
	notify Notifier

	mu    sync.RWMutex
	items []Booking
}

// NewBookingView creates an empty view.
func NewBookingView(api BookingAPI, notify Notifier) *BookingView {
	return &BookingView{api: api, notify: notify}
}

// Items returns a copy of the local list.
func (v *BookingView) Items() []Booking {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return append([]Booking(nil), v.items...)
}

// Load replaces the local list with the server's.
func (v *BookingView) Load(ctx context.Context) error {
	items, err := v.api.ListBookings(ctx)
	if err != nil {
		v.notify.Error(MsgBookingsFetchFailed)
		return err
	}
	v.mu.Lock()
	v.items = items
	v.mu.Unlock()
	return nil
}

// Create submits a new booking and appends it locally.
func (v *BookingView) Create(ctx context.Context, form BookingForm) (*Booking, error) {
	if !bookingFormComplete(form) {
		v.notify.Error(MsgFillAllFields)
		return nil, ErrIncompleteForm
	}
	created, err := v.api.CreateBooking(ctx, form)
	if err != nil {
		v.notify.Error(MsgBookingCreateFailed)
		return nil, err
	}
	v.mu.Lock()
	v.items = append(v.items, *created)
	v.mu.Unlock()
	v.notify.Success(MsgBookingCreated)
	return created, nil
}

// Update submits an edited booking and replaces the local copy.
func (v *BookingView) Update(ctx context.Context, id string, form BookingForm) (*Booking, error) {
	if !bookingFormComplete(form) {
		v.notify.Error(MsgFillAllFields)
		return nil, ErrIncompleteForm
	}
	updated, err := v.api.UpdateBooking(ctx, id, form)
	if err != nil {
		v.notify.Error(MsgBookingUpdateFailed)
		return nil, err
	}
	v.mu.Lock()
	for i := range v.items {
		if v.items[i].ID == updated.ID {
			v.items[i] = *updated
		}
	}
	v.mu.Unlock()
	v.notify.Success(MsgBookingUpdated)
	return updated, nil
}

// Delete removes a booking on the server and from the local list.
func (v *BookingView) Delete(ctx context.Context, id string) error {
	if _, err := v.api.DeleteBooking(ctx, id); err != nil {
		v.notify.Error(MsgBookingDeleteFailed)
		return err
	}
	v.mu.Lock()
	kept := v.items[:0]
	for _, b := range v.items {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	v.items = kept
	v.mu.Unlock()
	v.notify.Success(MsgBookingDeleted)
	return nil
}

// The forms treat 0 like a missing value, matching the server's update rules.
func serviceFormComplete(f ServiceForm) bool {
	return f.Name != "" && f.Price != 0 && f.Duration != 0 && f.Description != ""
}

// The date is not checked here; the server validates it.
func bookingFormComplete(f BookingForm) bool {
	return f.CustomerName != "" && f.Phone != "" && f.SelectedService != ""
}
