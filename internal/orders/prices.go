package orders

import (
	"log/slog"
	"slices"

	"github.com/wfm-tools/wfmarket-data/internal/model"
)

// ExtractPrices projects a filtered order list to its platinum prices,
// sorted ascending (floor prices read low-to-high) or descending when
// requested. Orders with a missing or negative price are logged and
// skipped; a single bad order never fails the extraction.
func ExtractPrices[T model.PricedOrder](logger *slog.Logger, orders []T, descending bool) []int {
	if logger == nil {
		logger = slog.Default()
	}

	prices := make([]int, 0, len(orders))
	for _, o := range orders {
		base := o.BaseOrder()
		if base.Platinum == nil {
			logger.Warn("order has no platinum price", "order_id", base.ID)
			continue
		}
		if *base.Platinum < 0 {
			logger.Warn("order has negative platinum price",
				"order_id", base.ID,
				"platinum", *base.Platinum,
			)
			continue
		}
		prices = append(prices, *base.Platinum)
	}

	slices.Sort(prices)
	if descending {
		slices.Reverse(prices)
	}

	return prices
}
