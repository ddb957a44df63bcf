package orders

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/wfm-tools/wfmarket-data/internal/model"
)

func intPtr(v int) *int { return &v }

func sellOrder(id string, plat int, status model.UserStatus) model.ItemOrder {
	return model.ItemOrder{
		Order: model.Order{ID: id, Platinum: intPtr(plat), OrderType: model.OrderTypeSell},
		User:  &model.User{ID: "u-" + id, IngameName: "Tenno", Status: status},
	}
}

func TestFilterItemOrders(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		got := FilterItemOrders(nil, nil, model.OrderTypeSell)
		if len(got) != 0 {
			t.Errorf("len = %d, want 0", len(got))
		}
	})

	t.Run("keeps in-game sell orders only", func(t *testing.T) {
		in := []model.ItemOrder{
			sellOrder("a", 12, model.StatusInGame),
			sellOrder("b", 15, model.StatusOnline),
			sellOrder("c", 18, model.StatusOffline),
			{
				Order: model.Order{ID: "d", Platinum: intPtr(9), OrderType: model.OrderTypeBuy},
				User:  &model.User{ID: "u-d", Status: model.StatusInGame},
			},
		}

		got := FilterItemOrders(nil, in, model.OrderTypeSell)
		if len(got) != 1 {
			t.Fatalf("len = %d, want 1", len(got))
		}
		if got[0].ID != "a" {
			t.Errorf("kept order %q, want %q", got[0].ID, "a")
		}
	})

	t.Run("buy filter keeps buy orders", func(t *testing.T) {
		in := []model.ItemOrder{
			sellOrder("a", 12, model.StatusInGame),
			{
				Order: model.Order{ID: "d", Platinum: intPtr(9), OrderType: model.OrderTypeBuy},
				User:  &model.User{ID: "u-d", Status: model.StatusInGame},
			},
		}

		got := FilterItemOrders(nil, in, model.OrderTypeBuy)
		if len(got) != 1 || got[0].ID != "d" {
			t.Errorf("got %v, want single order d", got)
		}
	})

	t.Run("preserves relative input order", func(t *testing.T) {
		in := []model.ItemOrder{
			sellOrder("z", 90, model.StatusInGame),
			sellOrder("a", 30, model.StatusInGame),
			sellOrder("m", 60, model.StatusInGame),
		}

		got := FilterItemOrders(nil, in, model.OrderTypeSell)
		want := []string{"z", "a", "m"}
		for i, id := range want {
			if got[i].ID != id {
				t.Errorf("got[%d].ID = %q, want %q", i, got[i].ID, id)
			}
		}
	})

	t.Run("malformed orders are dropped with a warning", func(t *testing.T) {
		tests := []struct {
			name    string
			order   model.ItemOrder
			warning string
		}{
			{
				name:    "missing id",
				order:   model.ItemOrder{Order: model.Order{OrderType: model.OrderTypeSell}},
				warning: "no id",
			},
			{
				name:    "missing order type",
				order:   model.ItemOrder{Order: model.Order{ID: "x"}, User: &model.User{Status: model.StatusInGame}},
				warning: "no order type",
			},
			{
				name:    "unsupported order type",
				order:   model.ItemOrder{Order: model.Order{ID: "x", OrderType: "swap"}},
				warning: "unsupported order type",
			},
			{
				name:    "missing seller",
				order:   model.ItemOrder{Order: model.Order{ID: "x", OrderType: model.OrderTypeSell}},
				warning: "no seller",
			},
			{
				name: "unsupported status",
				order: model.ItemOrder{
					Order: model.Order{ID: "x", OrderType: model.OrderTypeSell},
					User:  &model.User{Status: "away"},
				},
				warning: "unsupported user status",
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				var buf bytes.Buffer
				logger := slog.New(slog.NewTextHandler(&buf, nil))

				in := []model.ItemOrder{tt.order, sellOrder("keep", 5, model.StatusInGame)}
				got := FilterItemOrders(logger, in, model.OrderTypeSell)

				// The batch survives the bad order.
				if len(got) != 1 || got[0].ID != "keep" {
					t.Errorf("got %v, want single order keep", got)
				}
				if !strings.Contains(buf.String(), tt.warning) {
					t.Errorf("log output %q does not contain %q", buf.String(), tt.warning)
				}
			})
		}
	})
}

func TestFilterVisible(t *testing.T) {
	in := []model.ProfileOrder{
		{Order: model.Order{ID: "a", Visible: true}},
		{Order: model.Order{ID: "b", Visible: false}},
		{Order: model.Order{ID: "c", Visible: true}},
	}

	got := FilterVisible(in)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].ID != "a" || got[1].ID != "c" {
		t.Errorf("kept %q, %q; want a, c", got[0].ID, got[1].ID)
	}

	if got := FilterVisible(nil); len(got) != 0 {
		t.Errorf("FilterVisible(nil) len = %d, want 0", len(got))
	}
}
