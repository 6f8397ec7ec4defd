package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/greentouch-site/internal/api/http/handlers"
	"github.com/spec-kit/greentouch-site/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Quotes         *handlers.QuotesHandler
	Appointments   *handlers.AppointmentsHandler
	Testimonials   *handlers.TestimonialsHandler
	Gallery        *handlers.GalleryHandler
	Dashboard      *handlers.DashboardHandler
	Site           *handlers.SiteHandler
	AuthMiddleware *auth.AuthMiddleware
	RateLimiter    *RateLimiter
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	limited := cfg.RateLimiter.Handle
	admin := cfg.AuthMiddleware.Handle
	optional := cfg.AuthMiddleware.Optional

	// Public site.
	app.Post("/login", limited, cfg.Auth.Login)
	app.Post("/quotes", limited, cfg.Quotes.CreateQuote)
	app.Post("/appointments", limited, cfg.Appointments.CreateAppointment)
	app.Post("/testimonials", limited, cfg.Testimonials.CreateTestimonial)
	app.Get("/services", cfg.Site.Services)
	app.Get("/content/hero", cfg.Site.Hero)

	// Public when ?approved=true, admin otherwise.
	app.Get("/testimonials", optional, cfg.Testimonials.ListTestimonials)
	app.Get("/gallery", optional, cfg.Gallery.ListGalleryItems)

	// Back office.
	app.Get("/quotes", admin, cfg.Quotes.ListQuotes)
	app.Patch("/quotes/:id", admin, cfg.Quotes.UpdateQuoteStatus)
	app.Get("/appointments", admin, cfg.Appointments.ListAppointments)
	app.Patch("/appointments/:id", admin, cfg.Appointments.UpdateAppointmentStatus)
	app.Patch("/testimonials/:id", admin, cfg.Testimonials.UpdateTestimonialApproval)
	app.Post("/gallery", admin, cfg.Gallery.CreateGalleryItem)
	app.Delete("/gallery/:id", admin, cfg.Gallery.DeleteGalleryItem)
	app.Get("/stats", admin, cfg.Dashboard.Stats)
	app.Put("/content/hero", admin, cfg.Site.UpdateHero)
	app.Post("/admin/password", admin, cfg.Auth.ChangePassword)
	app.Get("/metrics", admin, cfg.Dashboard.Metrics)
}

// NewApp returns a fiber app rendering unhandled errors in the site's
// error envelope.
func NewApp(appName string) *fiber.App {
	return fiber.New(fiber.Config{
		AppName:               appName,
		ErrorHandler:          ErrorHandler,
		DisableStartupMessage: true,
	})
}
