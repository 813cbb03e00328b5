package memory

import (
	"context"
	"fmt"

	"github.com/chris/gateway-dashboard/pkg/models"
)

// ListTransactions returns a copy of the transaction log, most recent first.
func (s *Store) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	txs := make([]models.Transaction, len(s.transactions))
	for i, tx := range s.transactions {
		txs[i] = copyTransaction(tx)
	}
	return txs, nil
}

// PrependTransaction inserts tx at the head of the log.
func (s *Store) PrependTransaction(ctx context.Context, tx *models.Transaction) (*models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.transactions {
		if existing.ID == tx.ID {
			return nil, fmt.Errorf("transaction ID %s already exists", tx.ID)
		}
	}

	stored := copyTransaction(*tx)
	s.transactions = append([]models.Transaction{stored}, s.transactions...)

	created := copyTransaction(stored)
	return &created, nil
}
