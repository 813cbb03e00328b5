package storage

import (
	"context"

	"github.com/chris/gateway-dashboard/pkg/models"
)

// WalletReader defines the interface for reading the wallet position.
type WalletReader interface {
	// GetWalletBalance derives the current balance from the transaction log.
	GetWalletBalance(ctx context.Context) (*models.WalletBalance, error)
}
