package service

import (
	"context"
	"fmt"

	"github.com/chris/gateway-dashboard/pkg/latency"
	"github.com/chris/gateway-dashboard/pkg/models"
)

// FetchWalletBalance returns the balance derived from the transaction log.
func (s *Service) FetchWalletBalance(ctx context.Context) (*models.WalletBalance, error) {
	s.Latency.Wait(latency.FetchWalletBalance)

	balance, err := s.Store.GetWalletBalance(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get wallet balance: %w", err)
	}
	return balance, nil
}
