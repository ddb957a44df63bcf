package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/wfm-tools/wfmarket-data/internal/api"
	"github.com/wfm-tools/wfmarket-data/internal/model"
	"github.com/wfm-tools/wfmarket-data/internal/tool"
)

type handlers struct {
	tool   *tool.Tool
	logger *slog.Logger
}

type errorResponse struct {
	Error          string `json:"error"`
	UpstreamStatus int    `json:"upstream_status,omitempty"`
}

// checkEntry is the wire form of one optimizer result.
type checkEntry struct {
	ItemName    string `json:"item_name"`
	ListedPrice *int   `json:"listed_price"`
	FloorPrices []int  `json:"floor_prices,omitempty"`
	Error       string `json:"error,omitempty"`
}

func (h *handlers) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handlers) floorPrices(w http.ResponseWriter, r *http.Request) {
	itemName := chi.URLParam(r, "item_name")

	count, err := queryInt(r, "count", 0)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "count must be an integer"})
		return
	}

	result, err := h.tool.FloorPrices(r.Context(), itemName, count)
	if err != nil {
		h.writeFetchError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *handlers) profileOrders(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	orderType, ok := queryOrderType(w, r)
	if !ok {
		return
	}

	orders, err := h.tool.ProfileOrders(r.Context(), username, orderType)
	if err != nil {
		h.writeFetchError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, orders)
}

func (h *handlers) verifyProfile(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	orderType, ok := queryOrderType(w, r)
	if !ok {
		return
	}
	count, err := queryInt(r, "count", 0)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "count must be an integer"})
		return
	}
	visibleOnly := true
	if v := r.URL.Query().Get("visible_only"); v != "" {
		visibleOnly, err = strconv.ParseBool(v)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "visible_only must be a boolean"})
			return
		}
	}

	results, err := h.tool.VerifyProfileOrders(r.Context(), username, orderType, count, visibleOnly)
	if err != nil {
		h.writeFetchError(w, err)
		return
	}

	entries := make([]checkEntry, len(results))
	for i, res := range results {
		entries[i] = checkEntry{
			ItemName:    res.ItemName,
			ListedPrice: res.ListedPrice,
			FloorPrices: res.FloorPrices,
		}
		if res.Err != nil {
			entries[i].Error = res.Err.Error()
		}
	}

	writeJSON(w, http.StatusOK, entries)
}

// writeFetchError maps fetch failures: upstream API errors become 502 with
// the observed status attached, everything else is a 500.
func (h *handlers) writeFetchError(w http.ResponseWriter, err error) {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		writeJSON(w, http.StatusBadGateway, errorResponse{
			Error:          err.Error(),
			UpstreamStatus: apiErr.StatusCode,
		})
		return
	}

	h.logger.Error("request failed", "err", err)
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
}

func queryInt(r *http.Request, key string, def int) (int, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def, nil
	}
	return strconv.Atoi(v)
}

// queryOrderType parses the type parameter, defaulting to sell. On an
// unsupported value it writes a 400 and reports false.
func queryOrderType(w http.ResponseWriter, r *http.Request) (model.OrderType, bool) {
	v := r.URL.Query().Get("type")
	if v == "" {
		return model.OrderTypeSell, true
	}

	orderType := model.OrderType(v)
	if !orderType.Valid() {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "type must be sell or buy"})
		return "", false
	}
	return orderType, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
