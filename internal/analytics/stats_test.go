package analytics

import (
	"reflect"
	"testing"

	"github.com/fleetdesk/fleetdesk/internal/fleet"
)

func sampleCollections() Collections {
	return Collections{
		Vehicles: []fleet.Vehicle{
			{ID: "v1", Type: fleet.TypeCar, Status: fleet.VehicleActive, Mileage: 4000},
			{ID: "v2", Type: fleet.TypeVan, Status: fleet.VehicleActive, Mileage: 6000},
			{ID: "v3", Type: fleet.TypeTruck, Status: fleet.VehicleMaintenance, Mileage: 3000},
			{ID: "v4", Type: fleet.TypeBus, Status: fleet.VehicleInactive, Mileage: 3000},
		},
		Drivers: []fleet.Driver{
			{ID: "d1", Status: fleet.DriverActive},
			{ID: "d2", Status: fleet.DriverActive},
			{ID: "d3", Status: fleet.DriverSuspended},
		},
		Maintenances: []fleet.Maintenance{
			{ID: "m1", Type: "brake_service", Status: fleet.StatusScheduled},
			{ID: "m2", Type: "brake_service", Status: fleet.StatusInProgress},
			{ID: "m3", Type: "general_service", Status: fleet.StatusCompleted},
			{ID: "m4", Type: "battery_service", Status: fleet.StatusCancelled},
		},
		OilChanges: []fleet.OilChange{
			{ID: "o1", Status: fleet.StatusScheduled},
			{ID: "o2", Status: fleet.StatusCompleted},
		},
		Inspections: []fleet.TechnicalInspection{
			{ID: "i1"},
			{ID: "i2"},
		},
		FuelRecords: []fleet.FuelRecord{
			{ID: "f1", Date: "2026-08-03", Quantity: 40, Cost: 100.004},
			{ID: "f2", Date: "2026-08-17", Quantity: 35, Cost: 80.50},
			{ID: "f3", Date: "2026-07-01", Quantity: 50, Cost: 120.122},
		},
	}
}

func TestAggregateStatsCounts(t *testing.T) {
	stats := AggregateStats(sampleCollections(), StatsFilter{})

	if stats.TotalVehicles != 4 {
		t.Fatalf("total vehicles: got %d", stats.TotalVehicles)
	}
	if stats.ActiveVehicles != 2 || stats.MaintenanceVehicles != 1 {
		t.Fatalf("vehicle status counts: active=%d maintenance=%d", stats.ActiveVehicles, stats.MaintenanceVehicles)
	}
	if stats.TotalDrivers != 3 || stats.ActiveDrivers != 2 {
		t.Fatalf("driver counts: total=%d active=%d", stats.TotalDrivers, stats.ActiveDrivers)
	}
}

// Upcoming maintenance counts scheduled and in-progress records over the
// union of maintenances and oil changes.
func TestAggregateStatsUpcomingUnion(t *testing.T) {
	c := sampleCollections()
	stats := AggregateStats(c, StatsFilter{})

	want := 0
	for _, m := range c.Maintenances {
		if m.Status == fleet.StatusScheduled || m.Status == fleet.StatusInProgress {
			want++
		}
	}
	for _, o := range c.OilChanges {
		if o.Status == fleet.StatusScheduled || o.Status == fleet.StatusInProgress {
			want++
		}
	}
	if stats.UpcomingMaintenance != want {
		t.Fatalf("upcoming maintenance: got %d want %d", stats.UpcomingMaintenance, want)
	}
	if stats.UpcomingMaintenance != 3 {
		t.Fatalf("upcoming maintenance: got %d want 3", stats.UpcomingMaintenance)
	}
}

// The three-way type breakdown never exceeds the vehicle total; the bus is
// deliberately excluded.
func TestAggregateStatsTypeBreakdownBound(t *testing.T) {
	stats := AggregateStats(sampleCollections(), StatsFilter{})

	sum := stats.VehiclesByType.Truck + stats.VehiclesByType.Car + stats.VehiclesByType.Van
	if sum > stats.TotalVehicles {
		t.Fatalf("type breakdown sum %d exceeds total %d", sum, stats.TotalVehicles)
	}
	if sum != 3 {
		t.Fatalf("type breakdown sum: got %d want 3", sum)
	}
}

func TestAggregateStatsMaintenanceByType(t *testing.T) {
	stats := AggregateStats(sampleCollections(), StatsFilter{})

	if stats.MaintenanceByType["brake_service"] != 2 {
		t.Fatalf("brake_service: got %d", stats.MaintenanceByType["brake_service"])
	}
	// The inspection bucket comes from the inspections collection, not
	// from maintenance type tags.
	if stats.MaintenanceByType["inspection"] != 2 {
		t.Fatalf("inspection bucket: got %d", stats.MaintenanceByType["inspection"])
	}
}

func TestAggregateStatsFuelCostRounding(t *testing.T) {
	stats := AggregateStats(sampleCollections(), StatsFilter{})
	// 100.004 + 80.50 + 120.122 = 300.626 -> 300.63 at the cent.
	if stats.FuelCost != 300.63 {
		t.Fatalf("fuel cost: got %v want 300.63", stats.FuelCost)
	}
}

func TestAggregateStatsFuelCostDateRange(t *testing.T) {
	stats := AggregateStats(sampleCollections(), StatsFilter{FuelFrom: "2026-08-01", FuelTo: "2026-08-31"})
	if stats.FuelCost != 180.5 {
		t.Fatalf("august fuel cost: got %v want 180.5", stats.FuelCost)
	}

	open := AggregateStats(sampleCollections(), StatsFilter{FuelFrom: "2026-08-10"})
	if open.FuelCost != 80.5 {
		t.Fatalf("open-ended fuel cost: got %v want 80.5", open.FuelCost)
	}
}

func TestAggregateStatsConsumption(t *testing.T) {
	stats := AggregateStats(sampleCollections(), StatsFilter{})
	// (40+35+50) / 16000 * 100 = 0.78125 -> 0.8 at one decimal place.
	if stats.AverageFuelConsumption != 0.8 {
		t.Fatalf("consumption: got %v want 0.8", stats.AverageFuelConsumption)
	}
}

func TestAggregateStatsZeroMileageIsSafe(t *testing.T) {
	c := sampleCollections()
	for i := range c.Vehicles {
		c.Vehicles[i].Mileage = 0
	}
	stats := AggregateStats(c, StatsFilter{})
	if stats.AverageFuelConsumption != 0 {
		t.Fatalf("zero mileage must yield zero consumption, got %v", stats.AverageFuelConsumption)
	}

	empty := AggregateStats(Collections{}, StatsFilter{})
	if empty.AverageFuelConsumption != 0 || empty.FuelCost != 0 || empty.TotalVehicles != 0 {
		t.Fatalf("empty collections must degrade to zeros: %+v", empty)
	}
}

func TestAggregateStatsIsIdempotent(t *testing.T) {
	c := sampleCollections()
	first := AggregateStats(c, StatsFilter{})
	second := AggregateStats(c, StatsFilter{})
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical inputs produced different outputs:\n%+v\n%+v", first, second)
	}
}
