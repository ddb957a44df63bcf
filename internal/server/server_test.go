package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/wfm-tools/wfmarket-data/internal/tool"
)

// newTestServer stands up the router over a tool pointed at a fake
// upstream marketplace.
func newTestServer(t *testing.T, upstream http.Handler) *httptest.Server {
	t.Helper()

	market := httptest.NewServer(upstream)
	t.Cleanup(market.Close)

	tl := tool.New(tool.Config{
		BaseURL:       market.URL,
		Timeout:       5 * time.Second,
		RequestWindow: 50 * time.Millisecond,
		RetryBackoff:  10 * time.Millisecond,
	}, nil)
	if err := tl.Initialize(context.Background()); err != nil {
		t.Fatalf("Initialize() = %v", err)
	}
	t.Cleanup(tl.Shutdown)

	srv := httptest.NewServer(NewRouter(tl, nil, Options{}))
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string, out any) *http.Response {
	t.Helper()

	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode %s: %v", url, err)
		}
	}
	return resp
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	var body map[string]string
	resp := getJSON(t, srv.URL+"/healthz", &body)

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	if body["status"] != "ok" {
		t.Errorf(`body["status"] = %q, want "ok"`, body["status"])
	}
	if resp.Header.Get("X-Request-ID") == "" {
		t.Error("X-Request-ID header missing")
	}
}

func TestFloorPricesEndpoint(t *testing.T) {
	upstream := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/items/blind_rage/orders" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, `{"payload": {"orders": [
			{"id": "a", "platinum": 28, "order_type": "sell",
			 "user": {"id": "u1", "status": "ingame"}},
			{"id": "b", "platinum": 20, "order_type": "sell",
			 "user": {"id": "u2", "status": "ingame"}},
			{"id": "c", "platinum": 22, "order_type": "sell",
			 "user": {"id": "u3", "status": "ingame"}}
		]}}`)
	})

	t.Run("returns bottom n prices", func(t *testing.T) {
		srv := newTestServer(t, upstream)

		var body struct {
			ItemName string `json:"item_name"`
			Prices   []int  `json:"prices"`
		}
		resp := getJSON(t, srv.URL+"/wfmarket/items/Blind_Rage/floor-prices?count=2", &body)

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}
		if body.ItemName != "blind_rage" {
			t.Errorf("item_name = %q, want %q", body.ItemName, "blind_rage")
		}
		if want := []int{20, 22}; !slices.Equal(body.Prices, want) {
			t.Errorf("prices = %v, want %v", body.Prices, want)
		}
	})

	t.Run("invalid count is a 400", func(t *testing.T) {
		srv := newTestServer(t, upstream)

		resp := getJSON(t, srv.URL+"/wfmarket/items/blind_rage/floor-prices?count=abc", nil)
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", resp.StatusCode)
		}
	})

	t.Run("upstream failure is a 502 with the observed status", func(t *testing.T) {
		srv := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))

		var body struct {
			Error          string `json:"error"`
			UpstreamStatus int    `json:"upstream_status"`
		}
		resp := getJSON(t, srv.URL+"/wfmarket/items/no_such_item/floor-prices", &body)

		if resp.StatusCode != http.StatusBadGateway {
			t.Errorf("status = %d, want 502", resp.StatusCode)
		}
		if body.UpstreamStatus != 404 {
			t.Errorf("upstream_status = %d, want 404", body.UpstreamStatus)
		}
	})
}

func TestProfileOrdersEndpoint(t *testing.T) {
	upstream := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/profile/") {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, `{"payload": {
			"sell_orders": [{"id": "s1", "platinum": 25, "order_type": "sell", "visible": true,
			                 "item": {"id": "i1", "url_name": "blind_rage"}}],
			"buy_orders":  [{"id": "b1", "platinum": 5, "order_type": "buy", "visible": true,
			                 "item": {"id": "i2", "url_name": "overextended"}}]
		}}`)
	})

	t.Run("defaults to sell orders", func(t *testing.T) {
		srv := newTestServer(t, upstream)

		var body []map[string]any
		resp := getJSON(t, srv.URL+"/wfmarket/profile/MrTrader/orders", &body)

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}
		if len(body) != 1 || body[0]["id"] != "s1" {
			t.Errorf("body = %v, want single sell order s1", body)
		}
	})

	t.Run("buy orders on request", func(t *testing.T) {
		srv := newTestServer(t, upstream)

		var body []map[string]any
		getJSON(t, srv.URL+"/wfmarket/profile/MrTrader/orders?type=buy", &body)

		if len(body) != 1 || body[0]["id"] != "b1" {
			t.Errorf("body = %v, want single buy order b1", body)
		}
	})

	t.Run("unsupported type is a 400", func(t *testing.T) {
		srv := newTestServer(t, upstream)

		resp := getJSON(t, srv.URL+"/wfmarket/profile/MrTrader/orders?type=swap", nil)
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", resp.StatusCode)
		}
	})
}

func TestVerifyProfileEndpoint(t *testing.T) {
	upstream := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/profile/"):
			fmt.Fprint(w, `{"payload": {"sell_orders": [
				{"id": "s1", "platinum": 25, "order_type": "sell", "visible": true,
				 "item": {"id": "i1", "url_name": "blind_rage"}},
				{"id": "s2", "platinum": 10, "order_type": "sell", "visible": true}
			], "buy_orders": []}}`)
		case r.URL.Path == "/items/blind_rage/orders":
			fmt.Fprint(w, `{"payload": {"orders": [
				{"id": "a", "platinum": 20, "order_type": "sell",
				 "user": {"id": "u1", "status": "ingame"}}
			]}}`)
		default:
			http.NotFound(w, r)
		}
	})

	srv := newTestServer(t, upstream)

	var body []struct {
		ItemName    string `json:"item_name"`
		ListedPrice *int   `json:"listed_price"`
		FloorPrices []int  `json:"floor_prices"`
		Error       string `json:"error"`
	}
	resp := getJSON(t, srv.URL+"/wfmarket/profile/MrSeller/check?count=5", &body)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if len(body) != 2 {
		t.Fatalf("len(body) = %d, want 2", len(body))
	}

	if body[0].ItemName != "blind_rage" {
		t.Errorf("body[0].item_name = %q, want %q", body[0].ItemName, "blind_rage")
	}
	if body[0].ListedPrice == nil || *body[0].ListedPrice != 25 {
		t.Errorf("body[0].listed_price = %v, want 25", body[0].ListedPrice)
	}
	if want := []int{20}; !slices.Equal(body[0].FloorPrices, want) {
		t.Errorf("body[0].floor_prices = %v, want %v", body[0].FloorPrices, want)
	}
	if body[0].Error != "" {
		t.Errorf("body[0].error = %q, want empty", body[0].Error)
	}

	// The order without an item reference carries its own error.
	if body[1].Error == "" {
		t.Error("body[1].error is empty, want item-reference error")
	}
}
