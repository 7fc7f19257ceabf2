package ledger

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRewardFor(t *testing.T) {
	t.Run("zero inputs yield zero", func(t *testing.T) {
		assert.Zero(t, rewardFor(0, 100, SecondsPerYear))
		assert.Zero(t, rewardFor(10000, 0, SecondsPerYear))
		assert.Zero(t, rewardFor(10000, 100, 0))
		assert.Zero(t, rewardFor(10000, 100, -1))
	})

	t.Run("one year at 1% on 10000 pays 100", func(t *testing.T) {
		assert.Equal(t, uint64(100), rewardFor(10000, 100, SecondsPerYear))
	})

	t.Run("full rate over full year pays the principal", func(t *testing.T) {
		assert.Equal(t, uint64(10000), rewardFor(10000, BasisPointDivisor, SecondsPerYear))
	})

	t.Run("division truncates toward zero", func(t *testing.T) {
		// 1 token at 1bp for 1 second is far below the smallest denomination
		assert.Zero(t, rewardFor(1, 1, 1))

		// 10000 at 100bp for half a year is exactly 50, one second less
		// truncates down
		halfYear := int64(SecondsPerYear / 2)
		assert.Equal(t, uint64(50), rewardFor(10000, 100, halfYear))
		assert.Equal(t, uint64(49), rewardFor(10000, 100, halfYear-1))
	})

	t.Run("monotonic in elapsed time", func(t *testing.T) {
		prev := uint64(0)
		for _, elapsed := range []int64{1, 3600, 86400, SecondsPerYear / 4, SecondsPerYear} {
			reward := rewardFor(1_000_000, 500, elapsed)
			assert.GreaterOrEqual(t, reward, prev)
			prev = reward
		}
	})

	t.Run("intermediate product above 64 bits", func(t *testing.T) {
		// amount * rate * elapsed overflows uint64 by far; the result itself
		// fits because the divisor cancels the rate and year factors
		const amount = uint64(1_000_000_000_000_000_000)
		assert.Equal(t, amount, rewardFor(amount, BasisPointDivisor, SecondsPerYear))
	})

	t.Run("quotient above 64 bits saturates", func(t *testing.T) {
		// a maximal stake at a maximal rate over many years produces a reward
		// that cannot be represented; it clamps instead of panicking
		reward := rewardFor(math.MaxUint64, MaxInterestRateBps, 100*SecondsPerYear)
		assert.Equal(t, uint64(math.MaxUint64), reward)

		assert.NotPanics(t, func() {
			rewardFor(math.MaxUint64, math.MaxUint64, math.MaxInt64)
		})
	})
}
