// Package analytichttp serves the dashboard, calendar and export endpoints.
package analytichttp

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"time"

	"github.com/fleetdesk/fleetdesk/internal/analytics"
	"github.com/fleetdesk/fleetdesk/internal/analytics/export"
	"github.com/fleetdesk/fleetdesk/internal/fleet"
	"github.com/fleetdesk/fleetdesk/internal/platform/httpx"
)

var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

const requestTimeout = 2 * time.Second

// AnalyticsService defines the dashboard data contract used by the handler.
type AnalyticsService interface {
	DashboardStats(ctx context.Context, filter analytics.StatsFilter) (analytics.DashboardStats, error)
	Calendar(ctx context.Context) ([]analytics.CalendarEvent, error)
	Snapshot(ctx context.Context) (analytics.Collections, error)
}

// PolicySource supplies insurance policies for the export endpoint.
type PolicySource interface {
	Policies(ctx context.Context) ([]fleet.InsurancePolicy, error)
}

// Handler coordinates HTTP requests for the fleet dashboard.
type Handler struct {
	logger   *slog.Logger
	service  AnalyticsService
	policies PolicySource
	now      func() time.Time
}

// NewHandler constructs the analytics HTTP handler.
func NewHandler(logger *slog.Logger, service AnalyticsService, policies PolicySource) *Handler {
	return &Handler{logger: logger, service: service, policies: policies, now: time.Now}
}

// WithNow overrides the handler clock for testing.
func (h *Handler) WithNow(fn func() time.Time) {
	if fn != nil {
		h.now = fn
	}
}

func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	filter, err := h.parseFilter(r)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	stats, err := h.service.DashboardStats(ctx, filter)
	if err != nil {
		h.logger.Error("load dashboard", slog.Any("error", err))
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "")
		return
	}
	httpx.JSON(w, http.StatusOK, stats)
}

func (h *Handler) handleCalendar(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	events, err := h.service.Calendar(ctx)
	if err != nil {
		h.logger.Error("load calendar", slog.Any("error", err))
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "")
		return
	}
	if r.URL.Query().Get("order") == "chronological" {
		analytics.SortEventsByStart(events)
	}
	httpx.JSON(w, http.StatusOK, events)
}

func (h *Handler) handleExportVehicles(w http.ResponseWriter, r *http.Request) {
	c, err := h.service.Snapshot(r.Context())
	if err != nil {
		h.logger.Error("export vehicles", slog.Any("error", err))
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "")
		return
	}
	h.sendCSV(w, "vehicles", export.VehicleColumns, export.VehicleRows(c.Vehicles))
}

func (h *Handler) handleExportFuel(w http.ResponseWriter, r *http.Request) {
	c, err := h.service.Snapshot(r.Context())
	if err != nil {
		h.logger.Error("export fuel records", slog.Any("error", err))
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "")
		return
	}
	h.sendCSV(w, "fuel_records", export.FuelRecordColumns, export.FuelRecordRows(c.FuelRecords))
}

func (h *Handler) handleExportPolicies(w http.ResponseWriter, r *http.Request) {
	policies, err := h.policies.Policies(r.Context())
	if err != nil {
		h.logger.Error("export policies", slog.Any("error", err))
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "")
		return
	}
	h.sendCSV(w, "insurance_policies", export.PolicyColumns, export.PolicyRows(policies))
}

func (h *Handler) sendCSV(w http.ResponseWriter, base string, cols []export.Column, rows []map[string]any) {
	name := export.Filename(base, h.now())
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	if err := export.WriteTable(w, cols, rows); err != nil {
		h.logger.Error("write csv", slog.Any("error", err), slog.String("file", name))
	}
}

func (h *Handler) parseFilter(r *http.Request) (analytics.StatsFilter, error) {
	filter := analytics.StatsFilter{
		FuelFrom: r.URL.Query().Get("from"),
		FuelTo:   r.URL.Query().Get("to"),
	}
	if filter.FuelFrom != "" && !dateRegex.MatchString(filter.FuelFrom) {
		return analytics.StatsFilter{}, fmt.Errorf("from must be YYYY-MM-DD")
	}
	if filter.FuelTo != "" && !dateRegex.MatchString(filter.FuelTo) {
		return analytics.StatsFilter{}, fmt.Errorf("to must be YYYY-MM-DD")
	}
	if filter.FuelFrom != "" && filter.FuelTo != "" && filter.FuelTo < filter.FuelFrom {
		return analytics.StatsFilter{}, fmt.Errorf("to must not precede from")
	}
	return filter, nil
}
