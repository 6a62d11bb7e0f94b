package ledger

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/piresc/pullup/internal/pkg/models"
)

var csvHeader = []string{"id", "date", "type", "description", "amount", "status", "payment_method", "ride_id"}

// WriteCSV writes txns as a CSV document with a header row
func WriteCSV(w io.Writer, txns []models.Transaction) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, t := range txns {
		record := []string{
			t.ID,
			t.Date.UTC().Format(time.RFC3339),
			string(t.Type),
			t.Description,
			strconv.FormatFloat(t.Amount, 'f', 2, 64),
			string(t.Status),
			t.PaymentMethod,
			t.RideID,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
