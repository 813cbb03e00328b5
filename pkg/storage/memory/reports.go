package memory

import (
	"context"

	"github.com/chris/gateway-dashboard/pkg/models"
)

// ListPaymentSummaries returns a copy of the seeded payment summaries.
func (s *Store) ListPaymentSummaries(ctx context.Context) ([]models.PaymentSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summaries := make([]models.PaymentSummary, len(s.summaries))
	copy(summaries, s.summaries)
	return summaries, nil
}

// GetSystemStats returns the seeded system statistics.
func (s *Store) GetSystemStats(ctx context.Context) (*models.SystemStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := s.stats
	return &stats, nil
}
