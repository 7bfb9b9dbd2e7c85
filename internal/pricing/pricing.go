// Package pricing is the single source of truth for consultation fees. The
// quoted estimate and the submitted amount must both come from ComputeFee so
// the two can never drift apart.
package pricing

import "github.com/shopspring/decimal"

var (
	shortMultiplier    = decimal.NewFromFloat(0.7)
	extendedMultiplier = decimal.NewFromFloat(1.4)
)

// ComputeFee derives the consultation fee from the lawyer's base fee and the
// chosen duration tier. 30 minutes prices at 70% of base, 90 minutes at
// 140%; 60 minutes, and any unrecognized duration, passes the base fee
// through unchanged. The result is rounded half-up at the currency's minor
// unit.
func ComputeFee(baseFee decimal.Decimal, durationMinutes int) decimal.Decimal {
	switch durationMinutes {
	case 30:
		return baseFee.Mul(shortMultiplier).Round(2)
	case 90:
		return baseFee.Mul(extendedMultiplier).Round(2)
	default:
		return baseFee.Round(2)
	}
}
