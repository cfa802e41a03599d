// Package analytics derives the dashboard statistics and the service-event
// calendar from the fleet collections. Everything here is a pure function of
// its inputs; identical collections always produce identical output.
package analytics

import (
	"math"

	"github.com/fleetdesk/fleetdesk/internal/fleet"
)

// Collections is a point-in-time snapshot of the raw entity collections.
type Collections struct {
	Vehicles     []fleet.Vehicle
	Drivers      []fleet.Driver
	Maintenances []fleet.Maintenance
	OilChanges   []fleet.OilChange
	Inspections  []fleet.TechnicalInspection
	FuelRecords  []fleet.FuelRecord
}

// StatsFilter scopes the fuel cost figure. Bounds are inclusive ISO dates;
// empty bounds mean full history.
type StatsFilter struct {
	FuelFrom string
	FuelTo   string
}

// VehicleTypeBreakdown is the fixed three-way type split. Vehicles of other
// types are excluded from the breakdown, so the three counts may sum to less
// than the total.
type VehicleTypeBreakdown struct {
	Truck int `json:"truck"`
	Car   int `json:"car"`
	Van   int `json:"van"`
}

// DashboardStats is the derived dashboard aggregate. It is recomputed from
// the collections on demand and never stored.
type DashboardStats struct {
	TotalVehicles       int `json:"totalVehicles"`
	ActiveVehicles      int `json:"activeVehicles"`
	MaintenanceVehicles int `json:"maintenanceVehicles"`

	TotalDrivers  int `json:"totalDrivers"`
	ActiveDrivers int `json:"activeDrivers"`

	// UpcomingMaintenance counts over the union of maintenances and oil
	// changes: both kinds feed one logical service-event stream.
	UpcomingMaintenance int `json:"upcomingMaintenance"`

	// FuelCost covers the records inside the filter range, or all of
	// them when no range is given.
	FuelCost float64 `json:"fuelCost"`

	// AverageFuelConsumption approximates fleet L/100km using the sum of
	// current odometers as the distance denominator.
	AverageFuelConsumption float64 `json:"averageFuelConsumption"`

	VehiclesByType    VehicleTypeBreakdown `json:"vehiclesByType"`
	MaintenanceByType map[string]int       `json:"maintenanceByType"`
}

// AggregateStats computes the dashboard aggregate for one snapshot.
func AggregateStats(c Collections, filter StatsFilter) DashboardStats {
	stats := DashboardStats{
		TotalVehicles:     len(c.Vehicles),
		TotalDrivers:      len(c.Drivers),
		MaintenanceByType: map[string]int{},
	}

	for _, v := range c.Vehicles {
		switch v.Status {
		case fleet.VehicleActive:
			stats.ActiveVehicles++
		case fleet.VehicleMaintenance:
			stats.MaintenanceVehicles++
		}
		switch v.Type {
		case fleet.TypeTruck:
			stats.VehiclesByType.Truck++
		case fleet.TypeCar:
			stats.VehiclesByType.Car++
		case fleet.TypeVan:
			stats.VehiclesByType.Van++
		}
	}

	for _, d := range c.Drivers {
		if d.Status == fleet.DriverActive {
			stats.ActiveDrivers++
		}
	}

	for _, m := range c.Maintenances {
		if m.Status.Upcoming() {
			stats.UpcomingMaintenance++
		}
		stats.MaintenanceByType[m.Type]++
	}
	for _, o := range c.OilChanges {
		if o.Status.Upcoming() {
			stats.UpcomingMaintenance++
		}
	}

	// The inspection bucket counts the technical-inspection collection,
	// not maintenance records tagged "inspection".
	stats.MaintenanceByType["inspection"] = len(c.Inspections)

	var cost float64
	for _, f := range c.FuelRecords {
		if inDateRange(f.Date, filter.FuelFrom, filter.FuelTo) {
			cost += f.Cost
		}
	}
	stats.FuelCost = round2(cost)
	stats.AverageFuelConsumption = fleetAverageConsumption(c.Vehicles, c.FuelRecords)

	return stats
}

// fleetAverageConsumption is the documented approximation: total fuel over
// the sum of current odometer readings, per 100 km. A per-vehicle
// delta-mileage computation can replace this without touching the aggregate.
func fleetAverageConsumption(vehicles []fleet.Vehicle, records []fleet.FuelRecord) float64 {
	var totalKm int
	for _, v := range vehicles {
		totalKm += v.Mileage
	}
	if totalKm == 0 {
		return 0
	}
	var quantity float64
	for _, f := range records {
		quantity += f.Quantity
	}
	return round1(quantity / float64(totalKm) * 100)
}

// inDateRange compares ISO YYYY-MM-DD strings lexically; empty bounds are
// unbounded.
func inDateRange(date, from, to string) bool {
	if from != "" && date < from {
		return false
	}
	if to != "" && date > to {
		return false
	}
	return true
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
