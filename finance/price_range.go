package finance

import (
	"fmt"
	"math"

	"move-calculator/domain"
)

// GeneratePriceRange builds a symmetric price ladder around basePrice: count
// rounded prices from basePrice×(1−spread) to basePrice×(1+spread) inclusive.
// Prices are non-decreasing; a range small enough that the step rounds to
// zero may repeat values, which is a degenerate boundary case, not an error.
//
// count must be at least 2: the step divides by count−1.
func GeneratePriceRange(basePrice, spread float64, count int) (domain.PriceRange, error) {
	if count < 2 {
		return domain.PriceRange{}, fmt.Errorf("price range needs at least 2 steps, got %d", count)
	}
	if basePrice <= 0 {
		return domain.PriceRange{}, fmt.Errorf("base price must be positive, got %g", basePrice)
	}
	if spread <= 0 || spread > 1 {
		return domain.PriceRange{}, fmt.Errorf("spread fraction must be in (0, 1], got %g", spread)
	}

	min := basePrice * (1 - spread)
	max := basePrice * (1 + spread)
	step := (max - min) / float64(count-1)

	prices := make([]int64, count)
	for i := range prices {
		prices[i] = int64(math.Round(min + float64(i)*step))
	}

	return domain.PriceRange{
		Min:    min,
		Max:    max,
		Step:   step,
		Prices: prices,
	}, nil
}
