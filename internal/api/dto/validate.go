package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/spec-kit/greentouch-site/internal/domain"
	apperrors "github.com/spec-kit/greentouch-site/pkg/util"
)

// Validator checks request payloads and reports failures as
// VALIDATION_FAILED errors keyed by JSON field name.
type Validator struct {
	validate *validator.Validate
	now      func() time.Time
}

// NewValidator returns a validator using the wall clock for date rules.
func NewValidator() (*Validator, error) {
	return NewValidatorWithClock(time.Now)
}

// NewValidatorWithClock returns a validator whose "notpast" rule compares
// against now.
func NewValidatorWithClock(now func() time.Time) (*Validator, error) {
	v := &Validator{validate: validator.New(validator.WithRequiredStructEnabled()), now: now}

	v.validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	if err := v.validate.RegisterValidation("servicetype", func(fl validator.FieldLevel) bool {
		return domain.KnownServiceType(domain.ServiceType(fl.Field().String()))
	}); err != nil {
		return nil, fmt.Errorf("register servicetype: %w", err)
	}
	if err := v.validate.RegisterValidation("notpast", v.notPast); err != nil {
		return nil, fmt.Errorf("register notpast: %w", err)
	}
	return v, nil
}

// notPast accepts YYYY-MM-DD dates no earlier than today in UTC.
func (v *Validator) notPast(fl validator.FieldLevel) bool {
	date, err := time.Parse(domain.PreferredDateLayout, fl.Field().String())
	if err != nil {
		return false
	}
	now := v.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return !date.Before(today)
}

// Struct validates payload.
func (v *Validator) Struct(payload any) error {
	err := v.validate.Struct(payload)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	details := make(map[string]any, len(fieldErrs))
	for _, fe := range fieldErrs {
		details[fe.Field()] = describe(fe)
	}
	return apperrors.NewValidationError("invalid payload", details)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "url":
		return "must be a valid URL"
	case "min":
		if fe.Kind() == reflect.String {
			return "must be at least " + fe.Param() + " characters"
		}
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "eqfield":
		return "must match " + fe.Param()
	case "servicetype":
		return "must be a known service"
	case "notpast":
		return "must be a date (YYYY-MM-DD) no earlier than today"
	default:
		return "failed " + fe.Tag()
	}
}
