package storage

import (
	"context"

	"github.com/chris/gateway-dashboard/pkg/models"
)

// ReportReader defines the interface for the static reporting figures.
type ReportReader interface {
	// ListPaymentSummaries retrieves the per-user payment summaries.
	ListPaymentSummaries(ctx context.Context) ([]models.PaymentSummary, error)

	// GetSystemStats retrieves the platform-wide statistics.
	GetSystemStats(ctx context.Context) (*models.SystemStats, error)
}
