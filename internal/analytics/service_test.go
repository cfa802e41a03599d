package analytics

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/fleetdesk/fleetdesk/internal/fleet"
)

type countingRepo struct {
	data  Collections
	loads int64
}

func (r *countingRepo) Vehicles(ctx context.Context) ([]fleet.Vehicle, error) {
	atomic.AddInt64(&r.loads, 1)
	return r.data.Vehicles, nil
}

func (r *countingRepo) Drivers(ctx context.Context) ([]fleet.Driver, error) {
	return r.data.Drivers, nil
}

func (r *countingRepo) Maintenances(ctx context.Context) ([]fleet.Maintenance, error) {
	return r.data.Maintenances, nil
}

func (r *countingRepo) OilChanges(ctx context.Context) ([]fleet.OilChange, error) {
	return r.data.OilChanges, nil
}

func (r *countingRepo) Inspections(ctx context.Context) ([]fleet.TechnicalInspection, error) {
	return r.data.Inspections, nil
}

func (r *countingRepo) FuelRecords(ctx context.Context) ([]fleet.FuelRecord, error) {
	return r.data.FuelRecords, nil
}

func (r *countingRepo) loadCount() int64 { return atomic.LoadInt64(&r.loads) }

func newTestCache(t *testing.T) *Cache {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewCache(client, time.Minute)
}

func TestServiceDashboardStatsCachesResult(t *testing.T) {
	repo := &countingRepo{data: sampleCollections()}
	svc := NewService(repo, newTestCache(t))
	ctx := context.Background()

	first, err := svc.DashboardStats(ctx, StatsFilter{})
	require.NoError(t, err)
	require.Equal(t, 4, first.TotalVehicles)
	require.EqualValues(t, 1, repo.loadCount())

	second, err := svc.DashboardStats(ctx, StatsFilter{})
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.EqualValues(t, 1, repo.loadCount(), "second read should come from cache")
}

func TestServiceBumpInvalidates(t *testing.T) {
	repo := &countingRepo{data: sampleCollections()}
	svc := NewService(repo, newTestCache(t))
	ctx := context.Background()

	_, err := svc.DashboardStats(ctx, StatsFilter{})
	require.NoError(t, err)
	require.EqualValues(t, 1, repo.loadCount())

	repo.data.Vehicles = append(repo.data.Vehicles, fleet.Vehicle{ID: "v5", Type: fleet.TypeCar, Status: fleet.VehicleActive})
	require.NoError(t, svc.Bump(ctx))

	stats, err := svc.DashboardStats(ctx, StatsFilter{})
	require.NoError(t, err)
	require.Equal(t, 5, stats.TotalVehicles)
	require.EqualValues(t, 2, repo.loadCount())
}

func TestServiceFilterGetsOwnCacheKey(t *testing.T) {
	repo := &countingRepo{data: sampleCollections()}
	svc := NewService(repo, newTestCache(t))
	ctx := context.Background()

	all, err := svc.DashboardStats(ctx, StatsFilter{})
	require.NoError(t, err)
	august, err := svc.DashboardStats(ctx, StatsFilter{FuelFrom: "2026-08-01", FuelTo: "2026-08-31"})
	require.NoError(t, err)

	require.NotEqual(t, all.FuelCost, august.FuelCost)
	require.EqualValues(t, 2, repo.loadCount())
}

func TestServiceCalendarCachesResult(t *testing.T) {
	repo := &countingRepo{data: calendarCollections()}
	svc := NewService(repo, newTestCache(t))
	ctx := context.Background()

	first, err := svc.Calendar(ctx)
	require.NoError(t, err)
	require.Len(t, first, 4)

	second, err := svc.Calendar(ctx)
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.EqualValues(t, 1, repo.loadCount())
}

func TestServiceWorksWithoutCache(t *testing.T) {
	repo := &countingRepo{data: sampleCollections()}
	svc := NewService(repo, nil)
	ctx := context.Background()

	stats, err := svc.DashboardStats(ctx, StatsFilter{})
	require.NoError(t, err)
	require.Equal(t, 4, stats.TotalVehicles)

	_, err = svc.DashboardStats(ctx, StatsFilter{})
	require.NoError(t, err)
	require.EqualValues(t, 2, repo.loadCount(), "nil cache recomputes every call")

	require.NoError(t, svc.Bump(ctx))
}
