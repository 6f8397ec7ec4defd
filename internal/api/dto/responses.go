package dto

import (
	"time"

	"github.com/spec-kit/greentouch-site/internal/domain"
)

// QuoteResponse representation.
type QuoteResponse struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Email       string             `json:"email"`
	ServiceType domain.ServiceType `json:"serviceType"`
	GardenSize  float64            `json:"gardenSize"`
	Comments    string             `json:"comments,omitempty"`
	Status      domain.QuoteStatus `json:"status"`
	CreatedAt   time.Time          `json:"createdAt"`
}

// AppointmentResponse representation.
type AppointmentResponse struct {
	ID            string                   `json:"id"`
	Name          string                   `json:"name"`
	Email         string                   `json:"email"`
	Phone         string                   `json:"phone"`
	Address       string                   `json:"address"`
	ServiceType   domain.ServiceType       `json:"serviceType"`
	PreferredDate string                   `json:"preferredDate"`
	Status        domain.AppointmentStatus `json:"status"`
	CreatedAt     time.Time                `json:"createdAt"`
}

// TestimonialResponse representation.
type TestimonialResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Text      string    `json:"text"`
	Rating    int       `json:"rating"`
	PhotoURL  string    `json:"photoUrl,omitempty"`
	Approved  bool      `json:"approved"`
	CreatedAt time.Time `json:"createdAt"`
}

// GalleryItemResponse representation.
type GalleryItemResponse struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	ImageURL    string             `json:"imageUrl"`
	Category    domain.ServiceType `json:"category"`
	Approved    bool               `json:"approved"`
	CreatedAt   time.Time          `json:"createdAt"`
}

// AdminUserResponse representation.
type AdminUserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// LoginResponse carries the admin and bearer token.
type LoginResponse struct {
	User  AdminUserResponse `json:"user"`
	Token string            `json:"token"`
}

// DashboardStatsResponse representation.
type DashboardStatsResponse struct {
	TotalAppointments    int `json:"totalAppointments"`
	PendingQuotes        int `json:"pendingQuotes"`
	ApprovedTestimonials int `json:"approvedTestimonials"`
	GalleryItems         int `json:"galleryItems"`
}

// ServiceResponse describes a catalogue entry.
type ServiceResponse struct {
	Type        domain.ServiceType `json:"type"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Price       string             `json:"price,omitempty"`
}

// HeroContentResponse representation.
type HeroContentResponse struct {
	Headline   string `json:"headline"`
	Subtitle   string `json:"subtitle"`
	ButtonText string `json:"buttonText"`
}

// NewQuoteResponse maps a domain quote.
func NewQuoteResponse(q *domain.Quote) QuoteResponse {
	return QuoteResponse{
		ID:          q.ID,
		Name:        q.Name,
		Email:       q.Email,
		ServiceType: q.ServiceType,
		GardenSize:  q.GardenSize,
		Comments:    q.Comments,
		Status:      q.Status,
		CreatedAt:   q.CreatedAt,
	}
}

// NewQuoteResponses maps a list, keeping order.
func NewQuoteResponses(quotes []domain.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for i := range quotes {
		out = append(out, NewQuoteResponse(&quotes[i]))
	}
	return out
}

// NewAppointmentResponse maps a domain appointment.
func NewAppointmentResponse(a *domain.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:            a.ID,
		Name:          a.Name,
		Email:         a.Email,
		Phone:         a.Phone,
		Address:       a.Address,
		ServiceType:   a.ServiceType,
		PreferredDate: a.PreferredDate,
		Status:        a.Status,
		CreatedAt:     a.CreatedAt,
	}
}

// NewAppointmentResponses maps a list, keeping order.
func NewAppointmentResponses(appointments []domain.Appointment) []AppointmentResponse {
	out := make([]AppointmentResponse, 0, len(appointments))
	for i := range appointments {
		out = append(out, NewAppointmentResponse(&appointments[i]))
	}
	return out
}

// NewTestimonialResponse maps a domain testimonial.
func NewTestimonialResponse(t *domain.Testimonial) TestimonialResponse {
	return TestimonialResponse{
		ID:        t.ID,
		Name:      t.Name,
		Text:      t.Text,
		Rating:    t.Rating,
		PhotoURL:  t.PhotoURL,
		Approved:  t.Approved,
		CreatedAt: t.CreatedAt,
	}
}

// NewTestimonialResponses maps a list, keeping order.
func NewTestimonialResponses(testimonials []domain.Testimonial) []TestimonialResponse {
	out := make([]TestimonialResponse, 0, len(testimonials))
	for i := range testimonials {
		out = append(out, NewTestimonialResponse(&testimonials[i]))
	}
	return out
}

// NewGalleryItemResponse maps a domain gallery item.
func NewGalleryItemResponse(g *domain.GalleryItem) GalleryItemResponse {
	return GalleryItemResponse{
		ID:          g.ID,
		Title:       g.Title,
		Description: g.Description,
		ImageURL:    g.ImageURL,
		Category:    g.Category,
		Approved:    g.Approved,
		CreatedAt:   g.CreatedAt,
	}
}

// NewGalleryItemResponses maps a list, keeping order.
func NewGalleryItemResponses(items []domain.GalleryItem) []GalleryItemResponse {
	out := make([]GalleryItemResponse, 0, len(items))
	for i := range items {
		out = append(out, NewGalleryItemResponse(&items[i]))
	}
	return out
}

// NewLoginResponse maps a successful login.
func NewLoginResponse(user domain.AdminUser, token string) LoginResponse {
	return LoginResponse{
		User:  AdminUserResponse{ID: user.ID, Email: user.Email, Name: user.Name},
		Token: token,
	}
}

// NewDashboardStatsResponse maps the counters.
func NewDashboardStatsResponse(s domain.DashboardStats) DashboardStatsResponse {
	return DashboardStatsResponse(s)
}

// NewServiceResponses maps the catalogue.
func NewServiceResponses(services []domain.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, ServiceResponse(s))
	}
	return out
}

// NewHeroContentResponse maps the landing copy.
func NewHeroContentResponse(h domain.HeroContent) HeroContentResponse {
	return HeroContentResponse(h)
}
