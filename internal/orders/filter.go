package orders

import (
	"log/slog"

	"github.com/wfm-tools/wfmarket-data/internal/model"
)

// FilterItemOrders keeps the orders matching wanted whose seller is
// currently in-game. Sellers that are merely online or offline are
// excluded: they cannot complete a trade promptly, so their listings do
// not represent a reliable floor. Malformed orders are logged and dropped.
func FilterItemOrders(logger *slog.Logger, in []model.ItemOrder, wanted model.OrderType) []model.ItemOrder {
	if logger == nil {
		logger = slog.Default()
	}

	out := make([]model.ItemOrder, 0, len(in))
	for _, o := range in {
		if o.ID == "" {
			logger.Warn("dropping order with no id")
			continue
		}
		if o.OrderType == "" {
			logger.Warn("dropping order with no order type", "order_id", o.ID)
			continue
		}
		if !o.OrderType.Valid() {
			logger.Warn("unsupported order type",
				"order_id", o.ID,
				"order_type", o.OrderType,
			)
			continue
		}
		if o.OrderType != wanted {
			continue
		}
		if o.User == nil {
			logger.Warn("dropping order with no seller", "order_id", o.ID)
			continue
		}

		switch o.User.Status {
		case model.StatusInGame:
			out = append(out, o)
		case model.StatusOnline, model.StatusOffline:
			// Not tradeable right now.
		default:
			logger.Warn("unsupported user status",
				"order_id", o.ID,
				"status", o.User.Status,
			)
		}
	}

	return out
}

// FilterVisible keeps only the orders a seller currently exposes on their
// profile. Hidden listings are not real competing offers.
func FilterVisible(in []model.ProfileOrder) []model.ProfileOrder {
	out := make([]model.ProfileOrder, 0, len(in))
	for _, o := range in {
		if o.Visible {
			out = append(out, o)
		}
	}
	return out
}
