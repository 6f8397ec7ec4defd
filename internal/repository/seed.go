package repository

import (
	"time"

	"github.com/spec-kit/greentouch-site/internal/domain"
)

func (s *Store) seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.quotes = []domain.Quote{
		{
			ID:          "1",
			Name:        "John Smith",
			Email:       "john@example.com",
			ServiceType: domain.ServiceGardenDesign,
			GardenSize:  50,
			Comments:    "Looking for a complete garden makeover",
			Status:      domain.QuoteStatusPending,
			CreatedAt:   seedTime("2024-01-15T10:30:00Z"),
		},
		{
			ID:          "2",
			Name:        "Sarah Johnson",
			Email:       "sarah@example.com",
			ServiceType: domain.ServiceLawnMaintenance,
			GardenSize:  200,
			Comments:    "Need weekly lawn maintenance service",
			Status:      domain.QuoteStatusProcessed,
			CreatedAt:   seedTime("2024-01-14T14:20:00Z"),
		},
	}

	s.appointments = []domain.Appointment{
		{
			ID:            "1",
			Name:          "Mike Davis",
			Email:         "mike@example.com",
			Phone:         "+1234567890",
			Address:       "123 Garden St, Green City",
			ServiceType:   domain.ServiceIrrigationSystems,
			PreferredDate: "2024-01-20",
			Status:        domain.AppointmentStatusPending,
			CreatedAt:     seedTime("2024-01-15T09:15:00Z"),
		},
		{
			ID:            "2",
			Name:          "Lisa Brown",
			Email:         "lisa@example.com",
			Phone:         "+1234567891",
			Address:       "456 Plant Ave, Flower Town",
			ServiceType:   domain.ServiceDecorativePlants,
			PreferredDate: "2024-01-22",
			Status:        domain.AppointmentStatusConfirmed,
			CreatedAt:     seedTime("2024-01-14T16:45:00Z"),
		},
	}

	s.testimonials = []domain.Testimonial{
		{
			ID:        "1",
			Name:      "Jennifer Wilson",
			Text:      "GreenTouch transformed our backyard into a beautiful oasis. Professional and reliable service!",
			Rating:    5,
			Approved:  true,
			CreatedAt: seedTime("2024-01-10T12:00:00Z"),
		},
		{
			ID:        "2",
			Name:      "Robert Martinez",
			Text:      "Excellent garden design and maintenance. Highly recommend their services!",
			Rating:    5,
			Approved:  true,
			CreatedAt: seedTime("2024-01-08T15:30:00Z"),
		},
		{
			ID:        "3",
			Name:      "Emma Thompson",
			Text:      "Professional team with great attention to detail. Our lawn has never looked better.",
			Rating:    4,
			Approved:  false,
			CreatedAt: seedTime("2024-01-12T11:20:00Z"),
		},
	}

	s.gallery = []domain.GalleryItem{
		{
			ID:          "1",
			Title:       "Modern Garden Design",
			Description: "Complete backyard transformation with contemporary landscaping",
			ImageURL:    "https://images.pexels.com/photos/1301856/pexels-photo-1301856.jpeg?auto=compress&cs=tinysrgb&w=800",
			Category:    domain.ServiceGardenDesign,
			Approved:    true,
			CreatedAt:   seedTime("2024-01-01T00:00:00Z"),
		},
		{
			ID:          "2",
			Title:       "Decorative Plant Installation",
			Description: "Beautiful flower beds and ornamental plants arrangement",
			ImageURL:    "https://images.pexels.com/photos/1025994/pexels-photo-1025994.jpeg?auto=compress&cs=tinysrgb&w=800",
			Category:    domain.ServiceDecorativePlants,
			Approved:    true,
			CreatedAt:   seedTime("2024-01-02T00:00:00Z"),
		},
		{
			ID:          "3",
			Title:       "Irrigation System Setup",
			Description: "Smart irrigation system for efficient garden watering",
			ImageURL:    "https://images.pexels.com/photos/2132227/pexels-photo-2132227.jpeg?auto=compress&cs=tinysrgb&w=800",
			Category:    domain.ServiceIrrigationSystems,
			Approved:    true,
			CreatedAt:   seedTime("2024-01-03T00:00:00Z"),
		},
		{
			ID:          "4",
			Title:       "Lawn Maintenance",
			Description: "Professional lawn care and maintenance services",
			ImageURL:    "https://images.pexels.com/photos/589840/pexels-photo-589840.jpeg?auto=compress&cs=tinysrgb&w=800",
			Category:    domain.ServiceLawnMaintenance,
			Approved:    true,
			CreatedAt:   seedTime("2024-01-04T00:00:00Z"),
		},
	}
}

func seedTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}
