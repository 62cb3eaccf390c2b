package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierFor(t *testing.T) {
	tests := []struct {
		name   string
		amount int64
		want   DiscountTier
	}{
		{"small amount", 500, TierNone},
		{"upper edge of none band", 80100, TierNone},
		{"just above none band", 80101, TierTen},
		{"upper edge of ten band", 120000, TierTen},
		{"just above ten band", 120001, TierFifteen},
		{"large amount", 1000000, TierFifteen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TierFor(tt.amount))
		})
	}
}

func TestCalculateDiscount(t *testing.T) {
	tests := []struct {
		name         string
		amount       int64
		wantDiscount int64
		wantFinal    int64
	}{
		{"no discount below threshold", 500, 0, 500},
		{"no discount at boundary", 80100, 0, 80100},
		{"ten percent just above boundary, truncated", 80101, 8010, 72091},
		{"ten percent mid band", 100000, 10000, 90000},
		{"ten percent at upper boundary", 120000, 12000, 108000},
		{"fifteen plus conditional capped to twenty", 120001, 24000, 96001},
		{"twenty percent on catalog example", 120500, 24100, 96400},
		{"twenty percent large amount", 1000000, 200000, 800000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			discount, final := CalculateDiscount(tt.amount)
			assert.Equal(t, tt.wantDiscount, discount)
			assert.Equal(t, tt.wantFinal, final)
			assert.Equal(t, tt.amount, discount+final)
		})
	}
}

func TestCalculateDiscount_TruncatesTowardZero(t *testing.T) {
	// 80103 * 10% = 8010.3; the fraction is dropped, never rounded.
	discount, final := CalculateDiscount(80103)
	assert.Equal(t, int64(8010), discount)
	assert.Equal(t, int64(72093), final)
}
