package ledger

import (
	"math"

	sdkmath "cosmossdk.io/math"
)

const (
	// SecondsPerYear is the annualization divisor: 365 days of 86400 seconds.
	SecondsPerYear = 31536000
	// BasisPointDivisor converts basis points to a fraction: 10000 bp = 100%.
	BasisPointDivisor = 10000
	// MaxInterestRateBps is the highest rate SetInterestRate accepts,
	// 10000% annualized.
	MaxInterestRateBps = 100 * BasisPointDivisor
)

// rewardFor prices an elapsed interval: floor(amount * rateBps * elapsed /
// (SecondsPerYear * 10000)). The triple product can exceed 64 bits for large
// stakes, so the intermediate runs on sdkmath.Int. Division truncates:
// fractions below the smallest denomination are forfeited, not carried
// forward. A quotient beyond 64 bits saturates at MaxUint64 rather than
// panicking.
func rewardFor(amount, rateBps uint64, elapsed int64) uint64 {
	if amount == 0 || rateBps == 0 || elapsed <= 0 {
		return 0
	}

	numerator := sdkmath.NewIntFromUint64(amount).
		Mul(sdkmath.NewIntFromUint64(rateBps)).
		MulRaw(elapsed)
	denominator := sdkmath.NewInt(SecondsPerYear).MulRaw(BasisPointDivisor)

	quotient := numerator.Quo(denominator)
	if !quotient.IsUint64() {
		return math.MaxUint64
	}
	return quotient.Uint64()
}
