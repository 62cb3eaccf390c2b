package domain

// DiscountTier is the base discount band a total amount falls into.
type DiscountTier string

const (
	TierNone    DiscountTier = "NONE"
	TierTen     DiscountTier = "TEN"
	TierFifteen DiscountTier = "FIFTEEN"
)

// Rates are kept in basis points so the discount stays in integer math end
// to end. Truncation on the final division is deliberate: boundary totals
// depend on it.
const (
	rateNoneBps        = 0
	rateTenBps         = 1000
	rateFifteenBps     = 1500
	rateConditionalBps = 1000
	rateCapBps         = 2000

	conditionalMinAmount = 900
)

var tierRateBps = map[DiscountTier]int64{
	TierNone:    rateNoneBps,
	TierTen:     rateTenBps,
	TierFifteen: rateFifteenBps,
}

// TierFor returns the base discount tier for a total amount.
// Bands: <=80100 none, (80100, 120000] ten percent, >120000 fifteen percent.
func TierFor(totalAmount int64) DiscountTier {
	switch {
	case totalAmount > 120000:
		return TierFifteen
	case totalAmount > 80100:
		return TierTen
	default:
		return TierNone
	}
}

// CalculateDiscount prices a validated transaction. The fifteen-percent tier
// earns an extra ten percent once the amount clears the conditional floor,
// and the combined rate is capped at twenty percent.
func CalculateDiscount(totalAmount int64) (totalDiscount, finalAmount int64) {
	tier := TierFor(totalAmount)
	rate := tierRateBps[tier]

	if tier == TierFifteen && totalAmount > conditionalMinAmount {
		rate += rateConditionalBps
	}
	if rate > rateCapBps {
		rate = rateCapBps
	}

	totalDiscount = totalAmount * rate / 10000
	finalAmount = totalAmount - totalDiscount
	return totalDiscount, finalAmount
}
