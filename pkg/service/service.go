package service

import (
	"log/slog"
	"time"

	"github.com/chris/gateway-dashboard/pkg/latency"
	"github.com/chris/gateway-dashboard/pkg/storage"
	"github.com/google/uuid"
)

// Service simulates a remote payments backend over an owned store.
// Every call waits its simulated latency first and then runs synchronously against the store.
type Service struct {
	Store   storage.Storage
	Latency *latency.Simulator
	Logger  *slog.Logger

	now   func() time.Time
	newID func() (string, error)
}

// New creates a new Service.
func New(store storage.Storage, sim *latency.Simulator, logger *slog.Logger) *Service {
	if sim == nil {
		sim = latency.Disabled()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		Store:   store,
		Latency: sim,
		Logger:  logger,
		now:     time.Now,
		newID:   newTimeOrderedID,
	}
}

// Make sure we conform to the interface
var _ API = (*Service)(nil)

// newTimeOrderedID returns a UUIDv7, whose leading bits are the creation timestamp.
func newTimeOrderedID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

func (s *Service) today() time.Time {
	now := s.now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
