package fleet

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fleetdesk/fleetdesk/internal/insurance"
	"github.com/fleetdesk/fleetdesk/internal/platform/httpx"
)

// Handler exposes the fleet CRUD endpoints as JSON.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers one CRUD subtree per entity collection.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Route("/vehicles", resource[Vehicle, Vehicle]{
		logger: h.logger, name: "vehicle",
		list:   h.service.Vehicles,
		get:    h.service.Vehicle,
		create: h.service.CreateVehicle,
		update: h.service.UpdateVehicle,
		remove: h.service.DeleteVehicle,
	}.mount)
	r.Route("/drivers", resource[Driver, Driver]{
		logger: h.logger, name: "driver",
		list:   h.service.Drivers,
		get:    h.service.Driver,
		create: h.service.CreateDriver,
		update: h.service.UpdateDriver,
		remove: h.service.DeleteDriver,
	}.mount)
	r.Route("/maintenances", resource[Maintenance, Maintenance]{
		logger: h.logger, name: "maintenance",
		list:   h.service.Maintenances,
		get:    h.service.Maintenance,
		create: h.service.CreateMaintenance,
		update: h.service.UpdateMaintenance,
		remove: h.service.DeleteMaintenance,
	}.mount)
	r.Route("/oil-changes", resource[OilChange, OilChange]{
		logger: h.logger, name: "oil change",
		list:   h.service.OilChanges,
		get:    h.service.OilChange,
		create: h.service.CreateOilChange,
		update: h.service.UpdateOilChange,
		remove: h.service.DeleteOilChange,
	}.mount)
	r.Route("/inspections", resource[TechnicalInspection, TechnicalInspection]{
		logger: h.logger, name: "inspection",
		list:   h.service.Inspections,
		get:    h.service.Inspection,
		create: h.service.CreateInspection,
		update: h.service.UpdateInspection,
		remove: h.service.DeleteInspection,
	}.mount)
	r.Route("/fuel-records", resource[FuelRecord, FuelRecord]{
		logger: h.logger, name: "fuel record",
		list:   h.service.FuelRecords,
		get:    h.service.FuelRecord,
		create: h.service.CreateFuelRecord,
		update: h.service.UpdateFuelRecord,
		remove: h.service.DeleteFuelRecord,
	}.mount)
	r.Route("/policies", resource[InsurancePolicy, insurance.PolicyForm]{
		logger: h.logger, name: "insurance policy",
		list:   h.service.Policies,
		get:    h.service.Policy,
		create: h.service.CreatePolicy,
		update: h.service.UpdatePolicy,
		remove: h.service.DeletePolicy,
	}.mount)
	r.Route("/fuel-cards", resource[FuelCard, FuelCard]{
		logger: h.logger, name: "fuel card",
		list:   h.service.FuelCards,
		get:    h.service.FuelCard,
		create: h.service.CreateFuelCard,
		update: h.service.UpdateFuelCard,
		remove: h.service.DeleteFuelCard,
	}.mount)

	// Renewal prefill for the insurance form. Seeds the form from the
	// query string without touching the store.
	r.Get("/policies-renewal-form", func(w http.ResponseWriter, r *http.Request) {
		form, renew := insurance.ParseRenewalValues(r.URL.Query())
		httpx.JSON(w, http.StatusOK, map[string]any{
			"renew": renew,
			"form":  form,
		})
	})
}

// resource wires the five CRUD verbs of one entity collection. T is the
// stored entity, F the input payload (they differ only for policies, where
// the input is the insurance form).
type resource[T any, F any] struct {
	logger *slog.Logger
	name   string
	list   func(context.Context) ([]T, error)
	get    func(context.Context, string) (T, error)
	create func(context.Context, F) (T, error)
	update func(context.Context, string, F) error
	remove func(context.Context, string) error
}

func (res resource[T, F]) mount(r chi.Router) {
	r.Get("/", res.handleList)
	r.Post("/", res.handleCreate)
	r.Get("/{id}", res.handleGet)
	r.Put("/{id}", res.handleUpdate)
	r.Delete("/{id}", res.handleDelete)
}

func (res resource[T, F]) handleList(w http.ResponseWriter, r *http.Request) {
	items, err := res.list(r.Context())
	if err != nil {
		res.fail(w, "list", err)
		return
	}
	httpx.JSON(w, http.StatusOK, items)
}

func (res resource[T, F]) handleGet(w http.ResponseWriter, r *http.Request) {
	item, err := res.get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		res.fail(w, "get", err)
		return
	}
	httpx.JSON(w, http.StatusOK, item)
}

func (res resource[T, F]) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload F
	if err := httpx.DecodeJSON(r, &payload); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "malformed JSON body")
		return
	}
	created, err := res.create(r.Context(), payload)
	if err != nil {
		res.fail(w, "create", err)
		return
	}
	httpx.JSON(w, http.StatusCreated, created)
}

func (res resource[T, F]) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var payload F
	if err := httpx.DecodeJSON(r, &payload); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "malformed JSON body")
		return
	}
	id := chi.URLParam(r, "id")
	if err := res.update(r.Context(), id, payload); err != nil {
		res.fail(w, "update", err)
		return
	}
	item, err := res.get(r.Context(), id)
	if err != nil {
		res.fail(w, "reload", err)
		return
	}
	httpx.JSON(w, http.StatusOK, item)
}

func (res resource[T, F]) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := res.remove(r.Context(), chi.URLParam(r, "id")); err != nil {
		res.fail(w, "delete", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (res resource[T, F]) fail(w http.ResponseWriter, op string, err error) {
	var fields FieldErrors
	if errors.As(err, &fields) {
		httpx.ValidationProblem(w, fields)
		return
	}
	if !errors.Is(err, httpx.ErrNotFound) {
		res.logger.Error(res.name+" "+op+" failed", slog.Any("error", err))
	}
	httpx.RespondError(w, err)
}
