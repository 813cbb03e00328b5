package validation

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	MinPasswordLength  = 6
	MinRecipientLength = 3
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether s looks like an email address.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidateLogin checks a sign-in attempt before it reaches the authenticator.
func ValidateLogin(email, password string) error {
	ve := New()

	switch {
	case email == "":
		ve.Add("email", "cannot be empty")
	case !ValidEmail(email):
		ve.Add("email", "must be a valid email address")
	}

	switch {
	case password == "":
		ve.Add("password", "cannot be empty")
	case len(password) < MinPasswordLength:
		ve.Add("password", "must be at least 6 characters")
	}

	return ve.Err()
}

// ValidateTransfer checks an outgoing payment against the available balance.
func ValidateTransfer(amount decimal.Decimal, recipient string, available decimal.Decimal) error {
	ve := New()

	switch {
	case !amount.IsPositive():
		ve.Add("amount", "must be greater than zero")
	case amount.GreaterThan(available):
		ve.Add("amount", "insufficient funds")
	}

	if len(strings.TrimSpace(recipient)) < MinRecipientLength {
		ve.Add("recipient", "must be at least 3 characters")
	}

	return ve.Err()
}

// ValidateAdmin checks the fields of a new admin account.
func ValidateAdmin(name, email string) error {
	ve := New()

	if strings.TrimSpace(name) == "" {
		ve.Add("name", "cannot be empty")
	}
	if !ValidEmail(email) {
		ve.Add("email", "must be a valid email address")
	}

	return ve.Err()
}

// DefaultDescription fills in a transfer description left blank by the caller.
func DefaultDescription(description, recipient string) string {
	if strings.TrimSpace(description) != "" {
		return description
	}
	return "Payment to " + recipient
}
