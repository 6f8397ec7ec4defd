package domain

// AdminUser describes the single back-office operator.
type AdminUser struct {
	ID    string
	Email string
	Name  string
}

// DashboardStats summarises the back-office landing page counters.
type DashboardStats struct {
	TotalAppointments    int
	PendingQuotes        int
	ApprovedTestimonials int
	GalleryItems         int
}
