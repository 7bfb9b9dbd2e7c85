package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeFee(t *testing.T) {
	base := decimal.NewFromInt(2000)

	t.Run("30 minutes prices at 70 percent", func(t *testing.T) {
		assert.True(t, ComputeFee(base, 30).Equal(decimal.NewFromInt(1400)))
	})

	t.Run("90 minutes prices at 140 percent", func(t *testing.T) {
		assert.True(t, ComputeFee(base, 90).Equal(decimal.NewFromInt(2800)))
	})

	t.Run("60 minutes passes base through", func(t *testing.T) {
		assert.True(t, ComputeFee(base, 60).Equal(base))
	})

	t.Run("unrecognized duration defaults to base", func(t *testing.T) {
		assert.True(t, ComputeFee(base, 45).Equal(base))
		assert.True(t, ComputeFee(base, 0).Equal(base))
	})

	t.Run("rounds half-up at the minor unit", func(t *testing.T) {
		// 333.35 * 0.7 = 233.345 -> 233.35
		got := ComputeFee(decimal.RequireFromString("333.35"), 30)
		assert.True(t, got.Equal(decimal.RequireFromString("233.35")), "got %s", got)
	})

	t.Run("pure: identical inputs yield identical output", func(t *testing.T) {
		for _, d := range []int{30, 60, 90} {
			a := ComputeFee(base, d)
			b := ComputeFee(base, d)
			assert.True(t, a.Equal(b), "duration %d: %s != %s", d, a, b)
		}
	})
}
