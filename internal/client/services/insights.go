package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/certkeeper/internal/client/client"
	"github.com/dmitrijs2005/certkeeper/internal/client/models"
)

// InsightsService serves the read-only overviews: dashboard counters,
// profile summary, chart series and pending alerts.
type InsightsService interface {
	Dashboard(ctx context.Context) (*models.DashboardStats, error)
	Profile(ctx context.Context) (*models.ProfileSummary, error)
	Charts(ctx context.Context) (*models.ChartData, error)
	Notifications(ctx context.Context) ([]models.Notification, error)
}

type insightsService struct {
	client client.Client
}

func NewInsightsService(client client.Client) InsightsService {
	return &insightsService{client: client}
}

func (s *insightsService) Dashboard(ctx context.Context) (*models.DashboardStats, error) {
	stats, err := s.client.DashboardStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}
	return stats, nil
}

func (s *insightsService) Profile(ctx context.Context) (*models.ProfileSummary, error) {
	p, err := s.client.ProfileSummary(ctx)
	if err != nil {
		return nil, fmt.Errorf("profile summary: %w", err)
	}
	return p, nil
}

func (s *insightsService) Charts(ctx context.Context) (*models.ChartData, error) {
	c, err := s.client.ChartData(ctx)
	if err != nil {
		return nil, fmt.Errorf("chart data: %w", err)
	}
	return c, nil
}

func (s *insightsService) Notifications(ctx context.Context) ([]models.Notification, error) {
	alerts, err := s.client.Notifications(ctx)
	if err != nil {
		return nil, fmt.Errorf("notifications: %w", err)
	}
	return alerts, nil
}
