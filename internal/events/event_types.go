package events

import (
	"time"

	"github.com/spec-kit/greentouch-site/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventQuoteRequested           EventType = "quote_requested"
	EventQuoteStatusChanged       EventType = "quote_status_changed"
	EventAppointmentRequested     EventType = "appointment_requested"
	EventAppointmentStatusChanged EventType = "appointment_status_changed"
	EventTestimonialSubmitted     EventType = "testimonial_submitted"
	EventTestimonialModerated     EventType = "testimonial_moderated"
	EventGalleryItemAdded         EventType = "gallery_item_added"
	EventGalleryItemDeleted       EventType = "gallery_item_deleted"
)

// AllEventTypes lists every event the site emits.
var AllEventTypes = []EventType{
	EventQuoteRequested,
	EventQuoteStatusChanged,
	EventAppointmentRequested,
	EventAppointmentStatusChanged,
	EventTestimonialSubmitted,
	EventTestimonialModerated,
	EventGalleryItemAdded,
	EventGalleryItemDeleted,
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	RecordID  string      `json:"record_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// QuoteRequestedPayload payload.
type QuoteRequestedPayload struct {
	Name        string             `json:"name"`
	Email       string             `json:"email"`
	ServiceType domain.ServiceType `json:"service_type"`
	GardenSize  float64            `json:"garden_size"`
}

// QuoteStatusChangedPayload payload.
type QuoteStatusChangedPayload struct {
	OldStatus domain.QuoteStatus `json:"old_status"`
	NewStatus domain.QuoteStatus `json:"new_status"`
}

// AppointmentRequestedPayload payload.
type AppointmentRequestedPayload struct {
	Name          string             `json:"name"`
	Email         string             `json:"email"`
	Phone         string             `json:"phone"`
	ServiceType   domain.ServiceType `json:"service_type"`
	PreferredDate string             `json:"preferred_date"`
}

// AppointmentStatusChangedPayload payload.
type AppointmentStatusChangedPayload struct {
	OldStatus domain.AppointmentStatus `json:"old_status"`
	NewStatus domain.AppointmentStatus `json:"new_status"`
}

// TestimonialSubmittedPayload payload.
type TestimonialSubmittedPayload struct {
	Name   string `json:"name"`
	Rating int    `json:"rating"`
}

// TestimonialModeratedPayload payload.
type TestimonialModeratedPayload struct {
	Approved bool `json:"approved"`
}

// GalleryItemPayload payload for gallery additions and removals.
type GalleryItemPayload struct {
	Title    string             `json:"title"`
	Category domain.ServiceType `json:"category"`
}
