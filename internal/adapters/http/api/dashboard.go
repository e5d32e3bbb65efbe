package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	service "github.com/okian/betcast/internal/app"
	"github.com/okian/betcast/internal/domain/model"
)

// Response headers describing where the data came from.
const (
	HeaderDataSource = "X-Data-Source"
	HeaderLoadID     = "X-Load-ID"
)

// DataHandler serves records, summaries and chart series. Every request
// runs exactly one facade load.
type DataHandler struct {
	loader Loader
}

// NewDataHandler creates a new data handler.
func NewDataHandler(loader Loader) *DataHandler {
	return &DataHandler{loader: loader}
}

type betsResponse struct {
	LoadID string      `json:"loadId"`
	Status string      `json:"status"`
	Reason string      `json:"reason,omitempty"`
	Bets   []model.Bet `json:"bets"`
}

type summaryResponse struct {
	LoadID string                `json:"loadId"`
	Status string                `json:"status"`
	Reason string                `json:"reason,omitempty"`
	Weeks  []model.WeeklySummary `json:"weeks"`
}

// HandleDashboard handles GET /api/v1/dashboard.
func (h *DataHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	d := h.loader.Dashboard(r.Context())
	setSourceHeaders(w, d.Outcome)
	writeJSON(w, http.StatusOK, d)
}

// HandleBets handles GET /api/v1/bets?week=N.
func (h *DataHandler) HandleBets(w http.ResponseWriter, r *http.Request) {
	week, filter, err := weekParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	o := h.loader.Load(r.Context())
	bets := o.Bets
	if filter {
		bets = make([]model.Bet, 0, len(o.Bets))
		for _, b := range o.Bets {
			if b.Week == week {
				bets = append(bets, b)
			}
		}
	}
	setSourceHeaders(w, o)
	writeJSON(w, http.StatusOK, betsResponse{
		LoadID: o.LoadID,
		Status: string(o.Status),
		Reason: o.Reason,
		Bets:   nonNil(bets),
	})
}

// HandleSummary handles GET /api/v1/summary?week=N.
func (h *DataHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	week, filter, err := weekParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	o := h.loader.Load(r.Context())
	weeks := o.Weeks
	if filter {
		weeks = make([]model.WeeklySummary, 0, 1)
		for _, s := range o.Weeks {
			if s.Week == week {
				weeks = append(weeks, s)
			}
		}
	}
	setSourceHeaders(w, o)
	writeJSON(w, http.StatusOK, summaryResponse{
		LoadID: o.LoadID,
		Status: string(o.Status),
		Reason: o.Reason,
		Weeks:  nonNil(weeks),
	})
}

func setSourceHeaders(w http.ResponseWriter, o service.Outcome) {
	w.Header().Set(HeaderDataSource, string(o.Status))
	w.Header().Set(HeaderLoadID, o.LoadID)
}

// weekParam reads the optional week filter.
func weekParam(r *http.Request) (float64, bool, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("week"))
	if raw == "" {
		return 0, false, nil
	}
	week, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false, fmt.Errorf("%w: %w: %q", ErrBadRequest, ErrBadWeek, raw)
	}
	return week, true, nil
}

// nonNil keeps empty lists as [] on the wire.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
