package service

import (
	"context"

	"github.com/spec-kit/greentouch-site/internal/domain"
	"github.com/spec-kit/greentouch-site/internal/repository"
)

// DashboardService derives back-office counters.
type DashboardService struct {
	stats   repository.StatsRepository
	latency *Latency
}

// NewDashboardService constructs the service.
func NewDashboardService(deps Dependencies) *DashboardService {
	return &DashboardService{stats: deps.StatsRepo, latency: deps.Latency}
}

// GetDashboardStats recomputes the counters on every call.
func (s *DashboardService) GetDashboardStats(ctx context.Context) (domain.DashboardStats, error) {
	if err := s.latency.Wait(ctx, OpStats); err != nil {
		return domain.DashboardStats{}, err
	}
	return s.stats.Stats(ctx)
}
