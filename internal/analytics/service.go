package analytics

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/fleetdesk/fleetdesk/internal/fleet"
)

// Repository exposes the read side of the fleet data layer. The in-memory
// store satisfies it today; a real backend can replace it without touching
// the computation logic.
type Repository interface {
	Vehicles(ctx context.Context) ([]fleet.Vehicle, error)
	Drivers(ctx context.Context) ([]fleet.Driver, error)
	Maintenances(ctx context.Context) ([]fleet.Maintenance, error)
	OilChanges(ctx context.Context) ([]fleet.OilChange, error)
	Inspections(ctx context.Context) ([]fleet.TechnicalInspection, error)
	FuelRecords(ctx context.Context) ([]fleet.FuelRecord, error)
}

// Service coordinates snapshot loading with the cache layer.
type Service struct {
	repo  Repository
	cache *Cache
}

// NewService wires a Repository with a Cache helper.
func NewService(repo Repository, cache *Cache) *Service {
	return &Service{repo: repo, cache: cache}
}

// Bump invalidates cached analytics. It satisfies fleet.CacheBumper.
func (s *Service) Bump(ctx context.Context) error {
	return s.cache.Bump(ctx)
}

// Snapshot loads all six collections, fanning the reads out concurrently.
func (s *Service) Snapshot(ctx context.Context) (Collections, error) {
	var c Collections
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { c.Vehicles, err = s.repo.Vehicles(ctx); return })
	g.Go(func() (err error) { c.Drivers, err = s.repo.Drivers(ctx); return })
	g.Go(func() (err error) { c.Maintenances, err = s.repo.Maintenances(ctx); return })
	g.Go(func() (err error) { c.OilChanges, err = s.repo.OilChanges(ctx); return })
	g.Go(func() (err error) { c.Inspections, err = s.repo.Inspections(ctx); return })
	g.Go(func() (err error) { c.FuelRecords, err = s.repo.FuelRecords(ctx); return })
	if err := g.Wait(); err != nil {
		return Collections{}, err
	}
	return c, nil
}

// DashboardStats resolves the dashboard aggregate using cache-aware lookups.
func (s *Service) DashboardStats(ctx context.Context, filter StatsFilter) (DashboardStats, error) {
	loader := func(ctx context.Context) (interface{}, error) {
		c, err := s.Snapshot(ctx)
		if err != nil {
			return DashboardStats{}, err
		}
		return AggregateStats(c, filter), nil
	}

	key, err := s.cache.BuildKey(ctx, keyDashboard(filter)...)
	if err != nil {
		return DashboardStats{}, err
	}
	var stats DashboardStats
	if err := s.cache.FetchJSON(ctx, key, &stats, loader); err != nil {
		return DashboardStats{}, err
	}
	return stats, nil
}

// Calendar resolves the projected service-event calendar.
func (s *Service) Calendar(ctx context.Context) ([]CalendarEvent, error) {
	loader := func(ctx context.Context) (interface{}, error) {
		c, err := s.Snapshot(ctx)
		if err != nil {
			return nil, err
		}
		return ProjectCalendar(c), nil
	}

	key, err := s.cache.BuildKey(ctx, keyCalendar()...)
	if err != nil {
		return nil, err
	}
	var events []CalendarEvent
	if err := s.cache.FetchJSON(ctx, key, &events, loader); err != nil {
		return nil, err
	}
	return events, nil
}
