package model

// -----------------------------------------------------------------------------
// Enums
// -----------------------------------------------------------------------------

// OrderType distinguishes sell listings from buy listings.
type OrderType string

const (
	OrderTypeSell OrderType = "sell"
	OrderTypeBuy  OrderType = "buy"
)

// Valid reports whether the order type is one the API documents.
func (t OrderType) Valid() bool {
	return t == OrderTypeSell || t == OrderTypeBuy
}

// UserStatus is a seller's presence state on the marketplace.
type UserStatus string

const (
	StatusInGame  UserStatus = "ingame"
	StatusOnline  UserStatus = "online"
	StatusOffline UserStatus = "offline"
)

// Valid reports whether the status is one the API documents.
func (s UserStatus) Valid() bool {
	return s == StatusInGame || s == StatusOnline || s == StatusOffline
}

// -----------------------------------------------------------------------------
// Wire Types
// -----------------------------------------------------------------------------

// User is the ephemeral seller presence info embedded in an item order.
type User struct {
	ID         string     `json:"id"`
	IngameName string     `json:"ingame_name"`
	Status     UserStatus `json:"status"`
	Region     string     `json:"region,omitempty"`
	Reputation int        `json:"reputation,omitempty"`
	LastSeen   string     `json:"last_seen,omitempty"`
}

// ItemLocale holds a localized display name for an item.
type ItemLocale struct {
	ItemName string `json:"item_name"`
}

// ItemRef is the catalog reference embedded in a profile order.
// URLName is the canonical item identifier used in API paths.
type ItemRef struct {
	ID      string     `json:"id"`
	URLName string     `json:"url_name"`
	En      ItemLocale `json:"en,omitzero"`
}

// Order is the base listing shared by both order variants.
// ID is required; an order without one is invalid and must be dropped
// before any downstream processing.
type Order struct {
	ID           string    `json:"id"`
	Platinum     *int      `json:"platinum,omitempty"`
	Quantity     int       `json:"quantity,omitempty"`
	OrderType    OrderType `json:"order_type"`
	Platform     string    `json:"platform,omitempty"`
	Region       string    `json:"region,omitempty"`
	Visible      bool      `json:"visible"`
	CreationDate string    `json:"creation_date,omitempty"`
	LastUpdate   string    `json:"last_update,omitempty"`
}

// BaseOrder returns the embedded base listing. Order variants embedding
// Order satisfy PricedOrder through promotion.
func (o Order) BaseOrder() Order { return o }

// PricedOrder is satisfied by any order variant that embeds Order.
type PricedOrder interface {
	BaseOrder() Order
}

// ItemOrder is an order from an item's aggregated order book.
// The marketplace guarantees a seller on every item order; a nil User
// signals malformed data.
type ItemOrder struct {
	Order
	User *User `json:"user,omitempty"`
}

// ProfileOrder is an order listed under a specific seller's account page.
// A nil Item is an upstream contract violation: the order cannot be
// matched against any market floor.
type ProfileOrder struct {
	Order
	Item *ItemRef `json:"item,omitempty"`
}

// ItemOrdersPayload is the payload shape of GET /items/{item}/orders.
type ItemOrdersPayload struct {
	Orders []ItemOrder `json:"orders"`
}

// ProfileOrdersPayload is the payload shape of GET /profile/{username}/orders.
type ProfileOrdersPayload struct {
	SellOrders []ProfileOrder `json:"sell_orders"`
	BuyOrders  []ProfileOrder `json:"buy_orders"`
}

// -----------------------------------------------------------------------------
// Derived Types
// -----------------------------------------------------------------------------

// FloorPriceResult is the bottom-N price view for a single item.
// Prices are ascending; fewer than N entries means fewer qualifying orders.
type FloorPriceResult struct {
	ItemName string `json:"item_name"`
	Prices   []int  `json:"prices"`
}

// OptimizerResult juxtaposes a seller's listed price with the current
// market floor for one of their profile orders. Err carries a per-entry
// failure (missing item reference, fetch error) without failing siblings.
type OptimizerResult struct {
	ItemName    string `json:"item_name"`
	ListedPrice *int   `json:"listed_price"`
	FloorPrices []int  `json:"floor_prices"`
	Err         error  `json:"-"`
}
