package repository

//go:generate mockgen -source=appointment_repository.go -destination=mocks/mock_appointment_repository.go -package=mock_repository

import (
	"context"
	"slices"

	"github.com/spec-kit/greentouch-site/internal/domain"
)

// AppointmentRepository encapsulates appointment persistence.
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *domain.Appointment) error
	List(ctx context.Context) ([]domain.Appointment, error)
	UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) (*domain.Appointment, domain.AppointmentStatus, error)
}

type appointmentRepository struct {
	store *Store
}

// NewAppointmentRepository instantiates repository.
func NewAppointmentRepository(store *Store) AppointmentRepository {
	return &appointmentRepository{store: store}
}

func (r *appointmentRepository) Create(_ context.Context, appointment *domain.Appointment) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	appointment.ID = s.uniqueID(func(id string) bool {
		return slices.ContainsFunc(s.appointments, func(a domain.Appointment) bool { return a.ID == id })
	})
	appointment.CreatedAt = s.Now()
	s.appointments = append(s.appointments, *appointment)
	return nil
}

func (r *appointmentRepository) List(_ context.Context) ([]domain.Appointment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return slices.Clone(r.store.appointments), nil
}

func (r *appointmentRepository) UpdateStatus(_ context.Context, id string, status domain.AppointmentStatus) (*domain.Appointment, domain.AppointmentStatus, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.appointments, func(a domain.Appointment) bool { return a.ID == id })
	if idx < 0 {
		return nil, "", ErrNotFound
	}
	previous := s.appointments[idx].Status
	s.appointments[idx].Status = status
	updated := s.appointments[idx]
	return &updated, previous, nil
}
