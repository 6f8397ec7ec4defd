package service

import (
	"context"
	"slices"
	"sync"

	"github.com/spec-kit/greentouch-site/internal/domain"
)

// SiteService serves the service catalogue and the editable landing copy.
type SiteService struct {
	mu      sync.RWMutex
	hero    domain.HeroContent
	latency *Latency
}

// NewSiteService starts from the default hero copy.
func NewSiteService(latency *Latency) *SiteService {
	return &SiteService{hero: domain.DefaultHeroContent, latency: latency}
}

// Services returns the catalogue in display order.
func (s *SiteService) Services() []domain.Service {
	return slices.Clone(domain.Catalogue)
}

// Hero returns the current landing copy.
func (s *SiteService) Hero(ctx context.Context) (domain.HeroContent, error) {
	if err := ctx.Err(); err != nil {
		return domain.HeroContent{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hero, nil
}

// UpdateHero replaces the landing copy.
func (s *SiteService) UpdateHero(ctx context.Context, hero domain.HeroContent) (domain.HeroContent, error) {
	if err := s.latency.Wait(ctx, OpUpdate); err != nil {
		return domain.HeroContent{}, err
	}
	s.mu.Lock()
	s.hero = hero
	s.mu.Unlock()
	return hero, nil
}
