package ledger

import (
	"github.com/piresc/pullup/internal/pkg/models"
	"github.com/piresc/pullup/internal/utils"
)

// RecentCount is the number of transactions shown as recent activity
const RecentCount = 3

// Summarize totals a ledger ordered newest first. Spending counts ride
// payments; earnings count driver earnings and refunds.
func Summarize(txns []models.Transaction) models.WalletSummary {
	var spent, earned float64
	for _, t := range txns {
		switch t.Type {
		case models.TransactionRidePayment:
			spent += t.Amount
		case models.TransactionEarning, models.TransactionRefund:
			earned += t.Amount
		}
	}

	n := RecentCount
	if len(txns) < n {
		n = len(txns)
	}
	recent := make([]models.Transaction, n)
	copy(recent, txns[:n])

	return models.WalletSummary{
		TotalSpent:         utils.RoundMoney(spent),
		TotalEarned:        utils.RoundMoney(earned),
		TransactionCount:   len(txns),
		RecentTransactions: recent,
	}
}
