package dto

import "strings"

// LoginRequest payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ChangePasswordRequest payload.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=NewPassword"`
}

// CreateQuoteRequest payload.
type CreateQuoteRequest struct {
	Name        string  `json:"name" validate:"required,min=2"`
	Email       string  `json:"email" validate:"required,email"`
	ServiceType string  `json:"serviceType" validate:"required,servicetype"`
	GardenSize  float64 `json:"gardenSize" validate:"gt=0"`
	Comments    string  `json:"comments"`
}

// CreateAppointmentRequest payload.
type CreateAppointmentRequest struct {
	Name          string `json:"name" validate:"required,min=2"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone" validate:"required,min=10"`
	Address       string `json:"address" validate:"required,min=5"`
	ServiceType   string `json:"serviceType" validate:"required,servicetype"`
	PreferredDate string `json:"preferredDate" validate:"required,notpast"`
}

// CreateTestimonialRequest payload.
type CreateTestimonialRequest struct {
	Name     string `json:"name" validate:"required,min=2"`
	Text     string `json:"text" validate:"required"`
	Rating   int    `json:"rating" validate:"min=1,max=5"`
	PhotoURL string `json:"photoUrl" validate:"omitempty,url"`
}

// CreateGalleryItemRequest payload.
type CreateGalleryItemRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl" validate:"required,url"`
	Category    string `json:"category" validate:"required,servicetype"`
}

// UpdateStatusRequest is shared by quotes and appointments; the value is
// checked against the record's own enum by the service.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdateApprovalRequest payload. Approved is a pointer so an absent field
// is rejected instead of read as false.
type UpdateApprovalRequest struct {
	Approved *bool `json:"approved" validate:"required"`
}

// HeroContentRequest payload.
type HeroContentRequest struct {
	Headline   string `json:"headline" validate:"required"`
	Subtitle   string `json:"subtitle" validate:"required"`
	ButtonText string `json:"buttonText" validate:"required"`
}

// Normalizer trims free-text request fields before validation so that
// whitespace-only values fail "required" and length rules.
type Normalizer interface {
	Normalize()
}

// Normalize trims text fields.
func (r *CreateQuoteRequest) Normalize() {
	trimAll(&r.Name, &r.Email, &r.ServiceType, &r.Comments)
}

// Normalize trims text fields.
func (r *CreateAppointmentRequest) Normalize() {
	trimAll(&r.Name, &r.Email, &r.Phone, &r.Address, &r.ServiceType, &r.PreferredDate)
}

// Normalize trims text fields.
func (r *CreateTestimonialRequest) Normalize() {
	trimAll(&r.Name, &r.Text, &r.PhotoURL)
}

// Normalize trims text fields.
func (r *CreateGalleryItemRequest) Normalize() {
	trimAll(&r.Title, &r.Description, &r.ImageURL, &r.Category)
}

// Normalize trims the status value.
func (r *UpdateStatusRequest) Normalize() {
	trimAll(&r.Status)
}

// Normalize trims text fields.
func (r *HeroContentRequest) Normalize() {
	trimAll(&r.Headline, &r.Subtitle, &r.ButtonText)
}

func trimAll(fields ...*string) {
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
}
