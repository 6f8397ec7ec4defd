package domain

import "time"

// Testimonial is a customer review. Only approved testimonials are public.
type Testimonial struct {
	ID        string
	Name      string
	Text      string
	Rating    int
	PhotoURL  string
	Approved  bool
	CreatedAt time.Time
}
