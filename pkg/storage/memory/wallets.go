package memory

import (
	"context"

	"github.com/chris/gateway-dashboard/pkg/models"
)

// GetWalletBalance folds the transaction log over the opening position.
// Only Available and Pending of the opening position are used; Total is recomputed.
func (s *Store) GetWalletBalance(ctx context.Context) (*models.WalletBalance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	balance := models.FoldBalance(s.opening, s.transactions)
	return &balance, nil
}
