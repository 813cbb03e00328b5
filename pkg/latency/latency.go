package latency

import "time"

// Operation names a simulated remote call.
type Operation string

const (
	Authenticate          Operation = "authenticate"
	FetchWalletBalance    Operation = "fetch_wallet_balance"
	FetchTransactions     Operation = "fetch_transactions"
	CreateTransaction     Operation = "create_transaction"
	FetchUsers            Operation = "fetch_users"
	ToggleUserStatus      Operation = "toggle_user_status"
	FetchPaymentSummaries Operation = "fetch_payment_summaries"
	FetchSystemStats      Operation = "fetch_system_stats"
	AddAdmin              Operation = "add_admin"
	RemoveAdmin           Operation = "remove_admin"
)

// Defaults are the round-trip times the demo front-end was tuned against.
var Defaults = map[Operation]time.Duration{
	Authenticate:          1000 * time.Millisecond,
	FetchWalletBalance:    800 * time.Millisecond,
	FetchTransactions:     600 * time.Millisecond,
	CreateTransaction:     1200 * time.Millisecond,
	FetchUsers:            700 * time.Millisecond,
	ToggleUserStatus:      500 * time.Millisecond,
	FetchPaymentSummaries: 900 * time.Millisecond,
	FetchSystemStats:      1000 * time.Millisecond,
	AddAdmin:              800 * time.Millisecond,
	RemoveAdmin:           600 * time.Millisecond,
}

// Simulator suspends the caller for a fixed time per operation.
// A started wait always runs to completion; it is not tied to a context.
type Simulator struct {
	delays map[Operation]time.Duration
	sleep  func(time.Duration)
}

// New creates a Simulator. Operations missing from delays do not wait.
func New(delays map[Operation]time.Duration) *Simulator {
	d := make(map[Operation]time.Duration, len(delays))
	for op, delay := range delays {
		d[op] = delay
	}
	return &Simulator{delays: d, sleep: time.Sleep}
}

// Disabled creates a Simulator that never waits.
func Disabled() *Simulator {
	return New(nil)
}

// Delay returns the configured wait for op.
func (s *Simulator) Delay(op Operation) time.Duration {
	return s.delays[op]
}

// Wait blocks for the configured delay of op.
func (s *Simulator) Wait(op Operation) {
	if d := s.delays[op]; d > 0 {
		s.sleep(d)
	}
}
