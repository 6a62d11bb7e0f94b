package utils

import (
	"fmt"
	"math"
	"strconv"
)

// RoundMoney rounds to two decimals, half away from zero
func RoundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}

// HasAtMostTwoDecimals reports whether v has no sub-cent part
func HasAtMostTwoDecimals(v float64) bool {
	return math.Abs(v*100-math.Round(v*100)) < 1e-6
}

// FormatAmount renders the shortest decimal form of v, so 24.50 becomes "24.5"
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatClock renders seconds as mm:ss
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
