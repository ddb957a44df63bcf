package tool

import (
	"context"
	"fmt"
	"sync"

	"github.com/wfm-tools/wfmarket-data/internal/model"
	"github.com/wfm-tools/wfmarket-data/internal/orders"
)

// VerifyProfileOrders checks each of a seller's orders against the current
// market floor for its item. Floor lookups run concurrently under a bounded
// semaphore; a failed lookup is attributed to its own entry via
// OptimizerResult.Err and never blocks the siblings. Results appear in the
// profile's listing order regardless of completion order.
func (t *Tool) VerifyProfileOrders(ctx context.Context, username string, orderType model.OrderType, n int, visibleOnly bool) ([]model.OptimizerResult, error) {
	selected, err := t.ProfileOrders(ctx, username, orderType)
	if err != nil {
		return nil, err
	}
	if visibleOnly {
		selected = orders.FilterVisible(selected)
	}

	// An order without an id is invalid and never enters processing.
	valid := make([]model.ProfileOrder, 0, len(selected))
	for _, o := range selected {
		if o.ID == "" {
			t.logger.Warn("dropping profile order with no id", "username", username)
			continue
		}
		valid = append(valid, o)
	}
	selected = valid

	if len(selected) == 0 {
		return nil, nil
	}

	results := make([]model.OptimizerResult, len(selected))
	sem := make(chan struct{}, t.cfg.VerifyConcurrency)
	var wg sync.WaitGroup

	for i, o := range selected {
		wg.Add(1)
		go func(i int, o model.ProfileOrder) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[i] = model.OptimizerResult{ListedPrice: o.Platinum, Err: ctx.Err()}
				return
			}

			results[i] = t.verifyOrder(ctx, o, n)
		}(i, o)
	}

	wg.Wait()

	return results, nil
}

// verifyOrder resolves one profile order's item and its market floor.
func (t *Tool) verifyOrder(ctx context.Context, o model.ProfileOrder, n int) model.OptimizerResult {
	res := model.OptimizerResult{ListedPrice: o.Platinum}

	// A profile order without an item reference violates the upstream
	// contract; there is no item to price against.
	if o.Item == nil || o.Item.URLName == "" {
		res.Err = fmt.Errorf("profile order %s has no item reference", o.ID)
		return res
	}
	res.ItemName = o.Item.URLName

	floor, err := t.FloorPrices(ctx, o.Item.URLName, n)
	if err != nil {
		res.Err = err
		return res
	}
	res.FloorPrices = floor.Prices

	return res
}
