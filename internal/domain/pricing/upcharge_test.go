package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestUpchargePercentage(t *testing.T) {
	rule := UpchargeRule{Boundary: 150, Initial: 10, Increment: 1, Step: 50}

	tests := []struct {
		difference int
		want       int
	}{
		{-200, 0},
		{0, 0},
		{1, 10},
		{100, 10},
		{150, 10},
		{151, 11},
		{200, 11},
		{201, 12},
		{450, 16},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, UpchargePercentage(rule, tt.difference), "difference %d", tt.difference)
	}
}

func TestCustomSizeUpcharge(t *testing.T) {
	standard := Dimensions{Width: 2000, Depth: 900, Height: 800}

	assert.Equal(t, 0, CustomSizeUpcharge("Dellarobbia Thailand", standard, standard))
	// width +300 -> 13, depth -100 -> 0, height +50 -> 10
	custom := Dimensions{Width: 2300, Depth: 800, Height: 850}
	assert.Equal(t, 23, CustomSizeUpcharge("Dellarobbia Thailand", standard, custom))
	assert.Equal(t, 23, CustomSizeUpcharge("Dwell Living", standard, custom))
	assert.Equal(t, 0, CustomSizeUpcharge("Outdoor", standard, custom))
}

func TestItemPrice(t *testing.T) {
	price := decimal.RequireFromString("10000")
	standard := Dimensions{Width: 2000, Depth: 900, Height: 800}
	bigger := Dimensions{Width: 2100, Depth: 900, Height: 800}

	assert.True(t, price.Equal(ItemPrice(price, nil, "Dwell Living", standard, bigger, false)))
	assert.Equal(t, "11000", ItemPrice(price, nil, "Dwell Living", standard, bigger, true).String())

	custom := decimal.RequireFromString("8500.50")
	assert.Equal(t, "8500.5", ItemPrice(price, &custom, "Dwell Living", standard, bigger, true).String())

	zero := decimal.Zero
	assert.Equal(t, "11000", ItemPrice(price, &zero, "Dwell Living", standard, bigger, true).String())
}
