package memory

import (
	"fmt"
	"sync"

	"github.com/chris/gateway-dashboard/pkg/models"
	"github.com/chris/gateway-dashboard/pkg/storage"
	"golang.org/x/crypto/bcrypt"
)

// Store implements the Storage interface over process memory.
// It exclusively owns the user and transaction collections; callers only ever see copies.
type Store struct {
	mu           sync.RWMutex
	users        []models.User
	transactions []models.Transaction
	credentials  map[string][]byte
	opening      models.WalletBalance
	summaries    []models.PaymentSummary
	stats        models.SystemStats
}

// New creates a Store holding the given seed data.
func New(seed Seed) (*Store, error) {
	cost := seed.BcryptCost
	if cost == 0 {
		cost = bcrypt.MinCost
	}

	credentials := make(map[string][]byte, len(seed.Credentials))
	for email, password := range seed.Credentials {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash credential for %s: %w", email, err)
		}
		credentials[email] = hash
	}

	s := &Store{
		credentials: credentials,
		opening:     seed.OpeningBalance,
		stats:       seed.SystemStats,
	}
	for _, u := range seed.Users {
		if s.emailTaken(u.Email) {
			return nil, fmt.Errorf("seed user %s: %w", u.Email, storage.ErrDuplicateEmail)
		}
		s.users = append(s.users, u)
	}
	for _, tx := range seed.Transactions {
		s.transactions = append(s.transactions, copyTransaction(tx))
	}
	s.summaries = append(s.summaries, seed.PaymentSummaries...)

	return s, nil
}

// NewSeeded creates a Store holding the demo seed data.
func NewSeeded() (*Store, error) {
	return New(DefaultSeed())
}

// Make sure we conform to the interface
var _ storage.Storage = (*Store)(nil)

func copyTransaction(tx models.Transaction) models.Transaction {
	if tx.Recipient != nil {
		recipient := *tx.Recipient
		tx.Recipient = &recipient
	}
	return tx
}
