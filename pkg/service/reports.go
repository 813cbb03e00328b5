package service

import (
	"context"
	"fmt"

	"github.com/chris/gateway-dashboard/pkg/latency"
	"github.com/chris/gateway-dashboard/pkg/models"
)

// FetchPaymentSummaries returns the per-user payment summaries.
func (s *Service) FetchPaymentSummaries(ctx context.Context) ([]models.PaymentSummary, error) {
	s.Latency.Wait(latency.FetchPaymentSummaries)

	summaries, err := s.Store.ListPaymentSummaries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list payment summaries: %w", err)
	}
	return summaries, nil
}

// FetchSystemStats returns the platform-wide statistics.
func (s *Service) FetchSystemStats(ctx context.Context) (*models.SystemStats, error) {
	s.Latency.Wait(latency.FetchSystemStats)

	stats, err := s.Store.GetSystemStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get system stats: %w", err)
	}
	return stats, nil
}
