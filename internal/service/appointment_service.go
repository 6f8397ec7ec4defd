package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/spec-kit/greentouch-site/internal/domain"
	"github.com/spec-kit/greentouch-site/internal/events"
	"github.com/spec-kit/greentouch-site/internal/repository"
	apperrors "github.com/spec-kit/greentouch-site/pkg/util"
)

// AppointmentService coordinates visit booking workflows.
type AppointmentService struct {
	appointments repository.AppointmentRepository
	dispatcher   events.Dispatcher
	latency      *Latency
	logger       *zap.Logger
}

// AppointmentCreateInput describes booking payload.
type AppointmentCreateInput struct {
	Name          string
	Email         string
	Phone         string
	Address       string
	ServiceType   domain.ServiceType
	PreferredDate string
}

// NewAppointmentService constructs the service.
func NewAppointmentService(deps Dependencies) *AppointmentService {
	return &AppointmentService{
		appointments: deps.AppointmentRepo,
		dispatcher:   deps.Dispatcher,
		latency:      deps.Latency,
		logger:       deps.logger(),
	}
}

// ListAppointments returns every appointment in booking order.
func (s *AppointmentService) ListAppointments(ctx context.Context) ([]domain.Appointment, error) {
	if err := s.latency.Wait(ctx, OpList); err != nil {
		return nil, err
	}
	return s.appointments.List(ctx)
}

// CreateAppointment stores a new pending appointment.
func (s *AppointmentService) CreateAppointment(ctx context.Context, input AppointmentCreateInput) (*domain.Appointment, error) {
	if err := s.latency.Wait(ctx, OpCreate); err != nil {
		return nil, err
	}

	appointment := &domain.Appointment{
		Name:          input.Name,
		Email:         input.Email,
		Phone:         input.Phone,
		Address:       input.Address,
		ServiceType:   input.ServiceType,
		PreferredDate: input.PreferredDate,
		Status:        domain.AppointmentStatusPending,
	}
	if err := s.appointments.Create(ctx, appointment); err != nil {
		return nil, err
	}

	publishEvent(ctx, s.dispatcher, s.logger, events.Event{
		Type:     events.EventAppointmentRequested,
		RecordID: appointment.ID,
		Payload: events.AppointmentRequestedPayload{
			Name:          appointment.Name,
			Email:         appointment.Email,
			Phone:         appointment.Phone,
			ServiceType:   appointment.ServiceType,
			PreferredDate: appointment.PreferredDate,
		},
	})
	return appointment, nil
}

// UpdateAppointmentStatus sets the status of an appointment.
func (s *AppointmentService) UpdateAppointmentStatus(ctx context.Context, id string, status domain.AppointmentStatus) (*domain.Appointment, error) {
	if !status.Valid() {
		return nil, apperrors.NewValidationError("invalid appointment status", map[string]any{"status": status})
	}
	if err := s.latency.Wait(ctx, OpUpdate); err != nil {
		return nil, err
	}

	appointment, previous, err := s.appointments.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("appointment", map[string]any{"id": id})
		}
		return nil, err
	}
	if !previous.CanTransitionTo(status) {
		s.logger.Warn("appointment status moved backwards",
			zap.String("appointment_id", id),
			zap.String("from", string(previous)),
			zap.String("to", string(status)))
	}

	publishEvent(ctx, s.dispatcher, s.logger, events.Event{
		Type:     events.EventAppointmentStatusChanged,
		RecordID: appointment.ID,
		Payload: events.AppointmentStatusChangedPayload{
			OldStatus: previous,
			NewStatus: status,
		},
	})
	return appointment, nil
}
