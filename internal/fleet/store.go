package fleet

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/fleetdesk/fleetdesk/internal/platform/httpx"
)

// MemoryStore is the in-memory data layer. It stands in for a real backend:
// collections keep insertion order like the arrays they replace, and every
// read returns a copy so callers cannot mutate shared state.
type MemoryStore struct {
	mu sync.RWMutex

	vehicles    collection[Vehicle]
	drivers     collection[Driver]
	maintenance collection[Maintenance]
	oilChanges  collection[OilChange]
	inspections collection[TechnicalInspection]
	fuelRecords collection[FuelRecord]
	policies    collection[InsurancePolicy]
	fuelCards   collection[FuelCard]
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		vehicles:    collection[Vehicle]{kind: "vehicle", id: func(v Vehicle) string { return v.ID }, setID: func(v *Vehicle, id string) { v.ID = id }},
		drivers:     collection[Driver]{kind: "driver", id: func(d Driver) string { return d.ID }, setID: func(d *Driver, id string) { d.ID = id }},
		maintenance: collection[Maintenance]{kind: "maintenance", id: func(m Maintenance) string { return m.ID }, setID: func(m *Maintenance, id string) { m.ID = id }},
		oilChanges:  collection[OilChange]{kind: "oil change", id: func(o OilChange) string { return o.ID }, setID: func(o *OilChange, id string) { o.ID = id }},
		inspections: collection[TechnicalInspection]{kind: "inspection", id: func(i TechnicalInspection) string { return i.ID }, setID: func(i *TechnicalInspection, id string) { i.ID = id }},
		fuelRecords: collection[FuelRecord]{kind: "fuel record", id: func(f FuelRecord) string { return f.ID }, setID: func(f *FuelRecord, id string) { f.ID = id }},
		policies:    collection[InsurancePolicy]{kind: "insurance policy", id: func(p InsurancePolicy) string { return p.ID }, setID: func(p *InsurancePolicy, id string) { p.ID = id }},
		fuelCards:   collection[FuelCard]{kind: "fuel card", id: func(c FuelCard) string { return c.ID }, setID: func(c *FuelCard, id string) { c.ID = id }},
	}
}

// collection is an ordered slice of records addressed by string id.
type collection[T any] struct {
	kind  string
	rows  []T
	id    func(T) string
	setID func(*T, string)
}

func (c *collection[T]) list() []T {
	out := make([]T, len(c.rows))
	copy(out, c.rows)
	return out
}

func (c *collection[T]) get(id string) (T, error) {
	for _, row := range c.rows {
		if c.id(row) == id {
			return row, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%s %s: %w", c.kind, id, httpx.ErrNotFound)
}

func (c *collection[T]) insert(row T) T {
	if c.id(row) == "" {
		c.setID(&row, uuid.NewString())
	}
	c.rows = append(c.rows, row)
	return row
}

func (c *collection[T]) update(id string, row T) error {
	for i := range c.rows {
		if c.id(c.rows[i]) == id {
			c.setID(&row, id)
			c.rows[i] = row
			return nil
		}
	}
	return fmt.Errorf("%s %s: %w", c.kind, id, httpx.ErrNotFound)
}

func (c *collection[T]) remove(id string) error {
	for i := range c.rows {
		if c.id(c.rows[i]) == id {
			c.rows = append(c.rows[:i], c.rows[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%s %s: %w", c.kind, id, httpx.ErrNotFound)
}

func (s *MemoryStore) Vehicles(ctx context.Context) ([]Vehicle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.vehicles.list(), nil
}

func (s *MemoryStore) Vehicle(ctx context.Context, id string) (Vehicle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.vehicles.get(id)
}

func (s *MemoryStore) CreateVehicle(ctx context.Context, v Vehicle) (Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.vehicles.insert(v), nil
}

func (s *MemoryStore) UpdateVehicle(ctx context.Context, id string, v Vehicle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.vehicles.update(id, v)
}

func (s *MemoryStore) DeleteVehicle(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.vehicles.remove(id)
}

func (s *MemoryStore) Drivers(ctx context.Context) ([]Driver, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.drivers.list(), nil
}

func (s *MemoryStore) Driver(ctx context.Context, id string) (Driver, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.drivers.get(id)
}

func (s *MemoryStore) CreateDriver(ctx context.Context, d Driver) (Driver, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drivers.insert(d), nil
}

func (s *MemoryStore) UpdateDriver(ctx context.Context, id string, d Driver) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drivers.update(id, d)
}

func (s *MemoryStore) DeleteDriver(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drivers.remove(id)
}

func (s *MemoryStore) Maintenances(ctx context.Context) ([]Maintenance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.maintenance.list(), nil
}

func (s *MemoryStore) Maintenance(ctx context.Context, id string) (Maintenance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.maintenance.get(id)
}

func (s *MemoryStore) CreateMaintenance(ctx context.Context, m Maintenance) (Maintenance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.maintenance.insert(m), nil
}

func (s *MemoryStore) UpdateMaintenance(ctx context.Context, id string, m Maintenance) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.maintenance.update(id, m)
}

func (s *MemoryStore) DeleteMaintenance(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.maintenance.remove(id)
}

func (s *MemoryStore) OilChanges(ctx context.Context) ([]OilChange, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.oilChanges.list(), nil
}

func (s *MemoryStore) OilChange(ctx context.Context, id string) (OilChange, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.oilChanges.get(id)
}

func (s *MemoryStore) CreateOilChange(ctx context.Context, o OilChange) (OilChange, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.oilChanges.insert(o), nil
}

func (s *MemoryStore) UpdateOilChange(ctx context.Context, id string, o OilChange) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.oilChanges.update(id, o)
}

func (s *MemoryStore) DeleteOilChange(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.oilChanges.remove(id)
}

func (s *MemoryStore) Inspections(ctx context.Context) ([]TechnicalInspection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inspections.list(), nil
}

func (s *MemoryStore) Inspection(ctx context.Context, id string) (TechnicalInspection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inspections.get(id)
}

func (s *MemoryStore) CreateInspection(ctx context.Context, i TechnicalInspection) (TechnicalInspection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inspections.insert(i), nil
}

func (s *MemoryStore) UpdateInspection(ctx context.Context, id string, i TechnicalInspection) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inspections.update(id, i)
}

func (s *MemoryStore) DeleteInspection(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inspections.remove(id)
}

func (s *MemoryStore) FuelRecords(ctx context.Context) ([]FuelRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fuelRecords.list(), nil
}

func (s *MemoryStore) FuelRecord(ctx context.Context, id string) (FuelRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fuelRecords.get(id)
}

func (s *MemoryStore) CreateFuelRecord(ctx context.Context, f FuelRecord) (FuelRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fuelRecords.insert(f), nil
}

func (s *MemoryStore) UpdateFuelRecord(ctx context.Context, id string, f FuelRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fuelRecords.update(id, f)
}

func (s *MemoryStore) DeleteFuelRecord(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fuelRecords.remove(id)
}

func (s *MemoryStore) Policies(ctx context.Context) ([]InsurancePolicy, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.policies.list(), nil
}

func (s *MemoryStore) Policy(ctx context.Context, id string) (InsurancePolicy, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.policies.get(id)
}

func (s *MemoryStore) CreatePolicy(ctx context.Context, p InsurancePolicy) (InsurancePolicy, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.policies.insert(p), nil
}

func (s *MemoryStore) UpdatePolicy(ctx context.Context, id string, p InsurancePolicy) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.policies.update(id, p)
}

func (s *MemoryStore) DeletePolicy(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.policies.remove(id)
}

func (s *MemoryStore) FuelCards(ctx context.Context) ([]FuelCard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fuelCards.list(), nil
}

func (s *MemoryStore) FuelCard(ctx context.Context, id string) (FuelCard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fuelCards.get(id)
}

func (s *MemoryStore) CreateFuelCard(ctx context.Context, c FuelCard) (FuelCard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fuelCards.insert(c), nil
}

func (s *MemoryStore) UpdateFuelCard(ctx context.Context, id string, c FuelCard) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fuelCards.update(id, c)
}

func (s *MemoryStore) DeleteFuelCard(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fuelCards.remove(id)
}
