package tool

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/wfm-tools/wfmarket-data/internal/api"
	"github.com/wfm-tools/wfmarket-data/internal/model"
	"github.com/wfm-tools/wfmarket-data/internal/orders"
	"github.com/wfm-tools/wfmarket-data/internal/ratelimit"
)

// Config holds tool settings.
type Config struct {
	BaseURL           string        // API base URL (default: production)
	Timeout           time.Duration // Per-request HTTP timeout (default: 30s)
	RequestLimit      int           // Requests per window (default: 3)
	RequestWindow     time.Duration // Rate-limit window (default: 1s)
	RetryBackoff      time.Duration // Sleep between denied admits (default: 1s)
	DefaultFloorCount int           // Floor prices per item (default: 5)
	VerifyConcurrency int           // Concurrent floor lookups in verify (default: 3)
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL:           api.DefaultBaseURL,
		Timeout:           30 * time.Second,
		RequestLimit:      ratelimit.DefaultLimit,
		RequestWindow:     ratelimit.DefaultWindow,
		RetryBackoff:      time.Second,
		DefaultFloorCount: 5,
		VerifyConcurrency: 3,
	}
}

func (c *Config) applyDefaults() {
	d := DefaultConfig()
	if c.BaseURL == "" {
		c.BaseURL = d.BaseURL
	}
	if c.Timeout == 0 {
		c.Timeout = d.Timeout
	}
	if c.RequestLimit == 0 {
		c.RequestLimit = d.RequestLimit
	}
	if c.RequestWindow == 0 {
		c.RequestWindow = d.RequestWindow
	}
	if c.RetryBackoff == 0 {
		c.RetryBackoff = d.RetryBackoff
	}
	if c.DefaultFloorCount == 0 {
		c.DefaultFloorCount = d.DefaultFloorCount
	}
	if c.VerifyConcurrency == 0 {
		c.VerifyConcurrency = d.VerifyConcurrency
	}
}

// Tool is the fetch-and-transform pipeline over the warframe.market API.
type Tool struct {
	cfg     Config
	client  *api.Client
	limiter *ratelimit.Limiter
	logger  *slog.Logger

	shutdownOnce sync.Once
}

// New creates a Tool. Call Initialize before issuing fetches and Shutdown
// when done.
func New(cfg Config, logger *slog.Logger) *Tool {
	cfg.applyDefaults()
	if logger == nil {
		logger = slog.Default()
	}

	limiter := ratelimit.New(cfg.RequestLimit, cfg.RequestWindow, logger)
	client := api.NewClient(cfg.BaseURL, limiter,
		api.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
		api.WithBackoff(cfg.RetryBackoff),
		api.WithLogger(logger),
	)

	return &Tool{
		cfg:     cfg,
		client:  client,
		limiter: limiter,
		logger:  logger,
	}
}

// Initialize starts the rate limiter's window-reset task. The task runs
// until Shutdown or until ctx is cancelled.
func (t *Tool) Initialize(ctx context.Context) error {
	t.limiter.Start(ctx)
	t.logger.Info("tool initialized",
		"base_url", t.cfg.BaseURL,
		"request_limit", t.cfg.RequestLimit,
		"request_window", t.cfg.RequestWindow,
	)
	return nil
}

// Shutdown stops the window-reset task and releases the shared transport.
// Safe to call more than once; only the first call has effect.
func (t *Tool) Shutdown() {
	t.shutdownOnce.Do(func() {
		t.limiter.Stop()
		t.client.CloseIdleConnections()
		t.logger.Info("tool shut down")
	})
}

// FloorPrices resolves the bottom-n sell prices for an item among orders
// from sellers who are currently in-game. Fewer than n qualifying orders
// yields a shorter list; none yields an empty list, not an error.
func (t *Tool) FloorPrices(ctx context.Context, itemName string, n int) (*model.FloorPriceResult, error) {
	if n <= 0 {
		n = t.cfg.DefaultFloorCount
	}
	name := api.NormalizeItemName(itemName)

	payload, err := t.client.GetItemOrders(ctx, itemName)
	if err != nil {
		return nil, fmt.Errorf("floor prices %s: %w", name, err)
	}

	sellable := orders.FilterItemOrders(t.logger, payload.Orders, model.OrderTypeSell)
	prices := orders.ExtractPrices(t.logger, sellable, false)
	if len(prices) > n {
		prices = prices[:n]
	}

	t.logger.Debug("resolved floor prices",
		"item", name,
		"count", len(prices),
	)

	return &model.FloorPriceResult{ItemName: name, Prices: prices}, nil
}

// ProfileOrders fetches one side of a seller's order list.
func (t *Tool) ProfileOrders(ctx context.Context, username string, orderType model.OrderType) ([]model.ProfileOrder, error) {
	payload, err := t.client.GetProfileOrders(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("profile orders %s: %w", username, err)
	}

	if orderType == model.OrderTypeBuy {
		return payload.BuyOrders, nil
	}
	return payload.SellOrders, nil
}
