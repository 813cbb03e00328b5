package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// TransactionFilter selects a subset of the transaction log.
type TransactionFilter string

const (
	FilterAll     TransactionFilter = "all"
	FilterCredit  TransactionFilter = "credit"
	FilterDebit   TransactionFilter = "debit"
	FilterPending TransactionFilter = "pending"
)

// ParseTransactionFilter parses a filter name. The empty string means FilterAll.
func ParseTransactionFilter(s string) (TransactionFilter, error) {
	switch f := TransactionFilter(s); f {
	case "":
		return FilterAll, nil
	case FilterAll, FilterCredit, FilterDebit, FilterPending:
		return f, nil
	default:
		return "", fmt.Errorf("unknown transaction filter %q", s)
	}
}

// Matches reports whether tx passes the filter.
func (f TransactionFilter) Matches(tx Transaction) bool {
	switch f {
	case FilterCredit:
		return tx.Type == CREDIT
	case FilterDebit:
		return tx.Type == DEBIT
	case FilterPending:
		return tx.Status == PENDING
	default:
		return true
	}
}

// FilterTransactions returns the transactions matching f, preserving order.
func FilterTransactions(txs []Transaction, f TransactionFilter) []Transaction {
	out := make([]Transaction, 0, len(txs))
	for _, tx := range txs {
		if f.Matches(tx) {
			out = append(out, tx)
		}
	}
	return out
}

// BalanceChange sums the n most recent transactions, credits positive and debits negative.
// txs must be ordered most recent first.
func BalanceChange(txs []Transaction, n int) decimal.Decimal {
	if n > len(txs) {
		n = len(txs)
	}
	change := decimal.Zero
	for _, tx := range txs[:n] {
		if tx.Type == CREDIT {
			change = change.Add(tx.Amount)
		} else {
			change = change.Sub(tx.Amount)
		}
	}
	return change
}

// FoldBalance derives the wallet position from an opening balance and the transaction log.
//
// Completed credits and debits move the available amount. A pending credit is
// counted as pending; a pending debit is held, moving its amount from available
// to pending. Failed transactions are ignored.
func FoldBalance(opening WalletBalance, txs []Transaction) WalletBalance {
	available := opening.Available
	pending := opening.Pending
	for _, tx := range txs {
		switch tx.Status {
		case COMPLETED:
			if tx.Type == CREDIT {
				available = available.Add(tx.Amount)
			} else {
				available = available.Sub(tx.Amount)
			}
		case PENDING:
			if tx.Type == DEBIT {
				available = available.Sub(tx.Amount)
			}
			pending = pending.Add(tx.Amount)
		}
	}
	return WalletBalance{
		Total:     available.Add(pending),
		Available: available,
		Pending:   pending,
	}
}

// SummarizePayments adds up payment counts and amounts across summaries.
func SummarizePayments(summaries []PaymentSummary) PaymentTotals {
	totals := PaymentTotals{TotalRevenue: decimal.Zero}
	for _, s := range summaries {
		totals.TotalPayments += s.TotalPayments
		totals.TotalRevenue = totals.TotalRevenue.Add(s.TotalAmount)
	}
	return totals
}

// SummarizeUsers counts users, active users and admins.
func SummarizeUsers(users []User) UserOverview {
	overview := UserOverview{TotalUsers: len(users)}
	for _, u := range users {
		if u.IsActive {
			overview.ActiveUsers++
		}
		if u.Role == RoleAdmin {
			overview.Admins++
		}
	}
	return overview
}
