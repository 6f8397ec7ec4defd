package domain

import "time"

// AppointmentStatus enumerates lifecycle states for site visits.
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
)

// Valid reports whether the status is a known appointment state.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentStatusPending, AppointmentStatusConfirmed, AppointmentStatusCompleted:
		return true
	}
	return false
}

// CanTransitionTo reports whether moving to next keeps the appointment
// lifecycle moving forward. Confirmation may be skipped.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	if s == next {
		return true
	}
	switch s {
	case AppointmentStatusPending:
		return next == AppointmentStatusConfirmed || next == AppointmentStatusCompleted
	case AppointmentStatusConfirmed:
		return next == AppointmentStatusCompleted
	case AppointmentStatusCompleted:
		return false
	}
	return false
}

// PreferredDateLayout is the wire format of Appointment.PreferredDate.
const PreferredDateLayout = time.DateOnly

// Appointment is a booked garden visit.
type Appointment struct {
	ID            string
	Name          string
	Email         string
	Phone         string
	Address       string
	ServiceType   ServiceType
	PreferredDate string
	Status        AppointmentStatus
	CreatedAt     time.Time
}
