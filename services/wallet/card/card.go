// Package card formats and validates stored payment cards
package card

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/piresc/pullup/internal/pkg/models"
)

const (
	maxDigits = 16
	minDigits = 13
	groupSize = 4
)

// Digits strips everything but digits from number and keeps at most 16
func Digits(number string) string {
	var b strings.Builder
	for _, r := range number {
		if !unicode.IsDigit(r) {
			continue
		}
		if b.Len() == maxDigits {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Format groups the digits of number in blocks of four separated by single spaces
func Format(number string) string {
	digits := Digits(number)
	if digits == "" {
		return ""
	}
	groups := make([]string, 0, (len(digits)+groupSize-1)/groupSize)
	for i := 0; i < len(digits); i += groupSize {
		end := i + groupSize
		if end > len(digits) {
			end = len(digits)
		}
		groups = append(groups, digits[i:end])
	}
	return strings.Join(groups, " ")
}

// DetectType infers the network from the first digit. Unknown prefixes are
// treated as Visa.
func DetectType(number string) models.PaymentMethodType {
	digits := Digits(number)
	switch {
	case strings.HasPrefix(digits, "4"):
		return models.PaymentMethodVisa
	case strings.HasPrefix(digits, "5"), strings.HasPrefix(digits, "2"):
		return models.PaymentMethodMastercard
	default:
		return models.PaymentMethodVisa
	}
}

// LastFour returns the last four digits of number
func LastFour(number string) string {
	digits := Digits(number)
	if len(digits) <= groupSize {
		return digits
	}
	return digits[len(digits)-groupSize:]
}

// ValidateNumber checks the digit count of number
func ValidateNumber(number string) error {
	n := len(Digits(number))
	if n < minDigits {
		return models.NewValidationError("card_number", fmt.Sprintf("must have between %d and %d digits", minDigits, maxDigits))
	}
	return nil
}

// NormalizeYear turns a two-digit expiry year into a four-digit one
func NormalizeYear(year int) int {
	if year >= 0 && year < 100 {
		return 2000 + year
	}
	return year
}

// ValidateExpiry accepts cards valid through the end of the expiry month
func ValidateExpiry(month, year int, now time.Time) error {
	if month < 1 || month > 12 {
		return models.NewValidationError("expiry_month", "must be between 1 and 12")
	}
	year = NormalizeYear(year)
	if year < 2000 || year > 2100 {
		return models.NewValidationError("expiry_year", "is not a valid year")
	}
	expires := time.Date(year, time.Month(month)+1, 1, 0, 0, 0, 0, time.UTC)
	if !now.UTC().Before(expires) {
		return models.NewValidationError("expiry_year", "card has expired")
	}
	return nil
}

// ValidateCVV accepts three or four digits
func ValidateCVV(cvv string) error {
	if len(cvv) < 3 || len(cvv) > 4 {
		return models.NewValidationError("cvv", "must have 3 or 4 digits")
	}
	for _, r := range cvv {
		if !unicode.IsDigit(r) {
			return models.NewValidationError("cvv", "must have 3 or 4 digits")
		}
	}
	return nil
}

// Label renders a method the way it appears on ledger entries
func Label(m models.PaymentMethod) string {
	switch m.Type {
	case models.PaymentMethodPayPal:
		return "PayPal " + m.Email
	case models.PaymentMethodMastercard:
		return "Mastercard •••• " + m.LastFour
	default:
		return "Visa •••• " + m.LastFour
	}
}
