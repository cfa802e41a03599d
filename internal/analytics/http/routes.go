package analytichttp

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
)

// MountRoutes registers the analytics endpoints onto the router.
func (h *Handler) MountRoutes(r chi.Router) {
	if h == nil {
		return
	}
	limiter := httprate.Limit(10, time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		}),
	)

	r.Get("/analytics/dashboard", h.handleDashboard)
	r.Get("/analytics/calendar", h.handleCalendar)
	r.Group(func(gr chi.Router) {
		gr.Use(limiter)
		gr.Get("/analytics/export/vehicles.csv", h.handleExportVehicles)
		gr.Get("/analytics/export/fuel_records.csv", h.handleExportFuel)
		gr.Get("/analytics/export/insurance_policies.csv", h.handleExportPolicies)
	})
}
