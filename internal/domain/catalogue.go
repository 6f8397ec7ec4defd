package domain

// ServiceType tags quotes, appointments and gallery items with the offering
// they relate to.
type ServiceType string

const (
	ServiceGardenDesign      ServiceType = "garden-design"
	ServiceLawnMaintenance   ServiceType = "lawn-maintenance"
	ServiceIrrigationSystems ServiceType = "irrigation-systems"
	ServiceDecorativePlants  ServiceType = "decorative-plants"
	ServiceTreeCare          ServiceType = "tree-care"
	ServiceSeasonalCleanup   ServiceType = "seasonal-cleanup"
)

// Service is a catalogue entry shown on the public site.
type Service struct {
	Type        ServiceType
	Name        string
	Description string
	Price       string
}

// Catalogue lists the offerings in display order.
var Catalogue = []Service{
	{
		Type:        ServiceGardenDesign,
		Name:        "Garden Design",
		Description: "Custom garden designs tailored to your space and preferences. From concept to completion.",
		Price:       "$299",
	},
	{
		Type:        ServiceLawnMaintenance,
		Name:        "Lawn Maintenance",
		Description: "Regular lawn care including mowing, edging, fertilizing, and seasonal treatments.",
		Price:       "$89/month",
	},
	{
		Type:        ServiceIrrigationSystems,
		Name:        "Irrigation Systems",
		Description: "Smart irrigation solutions for efficient watering and water conservation.",
		Price:       "$599",
	},
	{
		Type:        ServiceDecorativePlants,
		Name:        "Decorative Plants",
		Description: "Beautiful plant installations and arrangements to enhance your outdoor space.",
		Price:       "$149",
	},
	{
		Type:        ServiceTreeCare,
		Name:        "Tree Care",
		Description: "Pruning, shaping and health checks for trees and large shrubs.",
	},
	{
		Type:        ServiceSeasonalCleanup,
		Name:        "Seasonal Cleanup",
		Description: "Leaf removal, bed clearing and garden preparation between seasons.",
	},
}

// KnownServiceType reports whether t appears in the catalogue.
func KnownServiceType(t ServiceType) bool {
	for _, svc := range Catalogue {
		if svc.Type == t {
			return true
		}
	}
	return false
}

// HeroContent is the editable banner copy of the landing page.
type HeroContent struct {
	Headline   string
	Subtitle   string
	ButtonText string
}

// DefaultHeroContent is served until an admin edits the banner.
var DefaultHeroContent = HeroContent{
	Headline:   "Bring Your Garden to Life",
	Subtitle:   "Professional Landscaping & Garden Maintenance Services",
	ButtonText: "Book a Visit",
}
