package storage

import (
	"context"

	"github.com/chris/gateway-dashboard/pkg/models"
)

// TransactionStore defines the interface for the wallet's transaction log.
type TransactionStore interface {
	// ListTransactions returns a snapshot of the log, most recent first.
	ListTransactions(ctx context.Context) ([]models.Transaction, error)

	// PrependTransaction inserts tx at the head of the log and returns the stored copy.
	PrependTransaction(ctx context.Context, tx *models.Transaction) (*models.Transaction, error)
}
