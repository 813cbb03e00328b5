package service

import (
	"context"
	"fmt"

	"github.com/chris/gateway-dashboard/pkg/latency"
	"github.com/chris/gateway-dashboard/pkg/models"
	"github.com/shopspring/decimal"
)

// FetchTransactions returns a snapshot of the transaction log, most recent first.
func (s *Service) FetchTransactions(ctx context.Context) ([]models.Transaction, error) {
	s.Latency.Wait(latency.FetchTransactions)

	txs, err := s.Store.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txs, nil
}

// CreateTransaction records an outgoing payment as a pending debit at the head of the log.
// Input is not validated here; callers check amount and recipient before calling.
func (s *Service) CreateTransaction(ctx context.Context, amount decimal.Decimal, recipient, description string) (*models.Transaction, error) {
	s.Latency.Wait(latency.CreateTransaction)

	id, err := s.newID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate transaction ID: %w", err)
	}

	tx := &models.Transaction{
		ID:          id,
		Amount:      amount,
		Type:        models.DEBIT,
		Description: description,
		Status:      models.PENDING,
		Date:        s.today(),
		Recipient:   &recipient,
	}

	created, err := s.Store.PrependTransaction(ctx, tx)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	s.Logger.Info("transaction created", "transaction_id", created.ID, "amount", created.Amount.String(), "recipient", recipient)
	return created, nil
}
