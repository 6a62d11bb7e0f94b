// Package ledger holds the pure transaction ledger operations of the wallet
package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/piresc/pullup/internal/pkg/models"
	"github.com/piresc/pullup/internal/utils"
)

const (
	// All disables the type or status constraint
	All        = "all"
	dateLayout = "2006-01-02"
)

// Criteria is a parsed TransactionFilter. The zero value matches everything.
type Criteria struct {
	Search string
	Type   models.TransactionType
	Status models.TransactionStatus
	From   *time.Time
	To     *time.Time
}

// Parse validates f. Dates are calendar days in UTC and To covers the whole
// day up to 23:59:59.
func Parse(f models.TransactionFilter) (Criteria, error) {
	c := Criteria{Search: strings.ToLower(strings.TrimSpace(f.Search))}

	if f.Type != "" && f.Type != All {
		t := models.TransactionType(f.Type)
		switch t {
		case models.TransactionRidePayment, models.TransactionWalletTopUp,
			models.TransactionRefund, models.TransactionEarning:
			c.Type = t
		default:
			return Criteria{}, models.NewValidationError("type", fmt.Sprintf("unknown transaction type %q", f.Type))
		}
	}

	if f.Status != "" && f.Status != All {
		s := models.TransactionStatus(f.Status)
		switch s {
		case models.TransactionCompleted, models.TransactionPending, models.TransactionFailed:
			c.Status = s
		default:
			return Criteria{}, models.NewValidationError("status", fmt.Sprintf("unknown transaction status %q", f.Status))
		}
	}

	if f.DateFrom != "" {
		from, err := time.Parse(dateLayout, f.DateFrom)
		if err != nil {
			return Criteria{}, models.NewValidationError("date_from", "must be YYYY-MM-DD")
		}
		c.From = &from
	}
	if f.DateTo != "" {
		to, err := time.Parse(dateLayout, f.DateTo)
		if err != nil {
			return Criteria{}, models.NewValidationError("date_to", "must be YYYY-MM-DD")
		}
		to = to.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
		c.To = &to
	}
	return c, nil
}

// Match reports whether t satisfies every predicate of c
func (c Criteria) Match(t models.Transaction) bool {
	return c.matchSearch(t) &&
		(c.Type == "" || t.Type == c.Type) &&
		(c.Status == "" || t.Status == c.Status) &&
		(c.From == nil || !t.Date.Before(*c.From)) &&
		(c.To == nil || !t.Date.After(*c.To))
}

func (c Criteria) matchSearch(t models.Transaction) bool {
	if c.Search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(t.Description), c.Search) ||
		strings.Contains(strings.ToLower(t.ID), c.Search) ||
		strings.Contains(utils.FormatAmount(t.Amount), c.Search)
}

// Apply returns the transactions matching c in their original order
func (c Criteria) Apply(txns []models.Transaction) []models.Transaction {
	out := make([]models.Transaction, 0, len(txns))
	for _, t := range txns {
		if c.Match(t) {
			out = append(out, t)
		}
	}
	return out
}

// Filter parses f and applies it to txns
func Filter(txns []models.Transaction, f models.TransactionFilter) ([]models.Transaction, error) {
	c, err := Parse(f)
	if err != nil {
		return nil, err
	}
	return c.Apply(txns), nil
}
