package api

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/wfm-tools/wfmarket-data/internal/model"
)

// NormalizeItemName converts a display name to the canonical URL form:
// surrounding whitespace stripped, inner spaces replaced with underscores,
// and lower-cased (item identifiers are case-insensitive).
func NormalizeItemName(name string) string {
	n := strings.TrimSpace(name)
	n = strings.ReplaceAll(n, " ", "_")
	return strings.ToLower(n)
}

// GetItemOrders fetches the aggregated order book for an item.
func (c *Client) GetItemOrders(ctx context.Context, itemName string) (*model.ItemOrdersPayload, error) {
	name := NormalizeItemName(itemName)

	c.logger.Debug("fetching item orders", "item", name)

	var payload model.ItemOrdersPayload
	if err := c.getPayload(ctx, "/items/"+url.PathEscape(name)+"/orders", &payload); err != nil {
		return nil, fmt.Errorf("get item orders %s: %w", name, err)
	}

	return &payload, nil
}

// GetProfileOrders fetches the orders listed under a seller's account page.
// Usernames are case-sensitive, so only surrounding whitespace is stripped.
func (c *Client) GetProfileOrders(ctx context.Context, username string) (*model.ProfileOrdersPayload, error) {
	name := strings.TrimSpace(username)

	c.logger.Debug("fetching profile orders", "username", name)

	var payload model.ProfileOrdersPayload
	if err := c.getPayload(ctx, "/profile/"+url.PathEscape(name)+"/orders", &payload); err != nil {
		return nil, fmt.Errorf("get profile orders %s: %w", name, err)
	}

	return &payload, nil
}
