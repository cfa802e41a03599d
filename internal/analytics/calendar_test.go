package analytics

import (
	"testing"
	"time"

	"github.com/fleetdesk/fleetdesk/internal/fleet"
)

func calendarCollections() Collections {
	return Collections{
		Vehicles: []fleet.Vehicle{
			{ID: "v1", Brand: "Renault", Model: "Trafic", PlateNumber: "120 TU 4521"},
		},
		Maintenances: []fleet.Maintenance{
			{ID: "m1", VehicleID: "v1", ScheduledDate: "2026-03-10", Description: "Brake pads", Status: fleet.StatusInProgress},
		},
		OilChanges: []fleet.OilChange{
			{ID: "o1", VehicleID: "v1", ScheduledDate: "2026-02-05", OilType: "10W-40", Status: fleet.StatusScheduled},
		},
		Inspections: []fleet.TechnicalInspection{
			{ID: "i1", VehicleID: "v1", InspectionDate: "2024-01-15", NextInspectionDate: "2026-01-15", InspectionCenter: "Agence Tunis"},
		},
	}
}

func TestProjectCalendarInspectionPair(t *testing.T) {
	events := ProjectCalendar(Collections{
		Inspections: []fleet.TechnicalInspection{
			{ID: "i1", VehicleID: "v9", InspectionDate: "2024-01-15", NextInspectionDate: "2026-01-15"},
		},
	})

	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	past, next := events[0], events[1]

	if past.ID != "inspection-i1" || next.ID != "inspection-next-i1" {
		t.Fatalf("event ids: %q, %q", past.ID, next.ID)
	}
	if past.Status != "completed" {
		t.Fatalf("past inspection status: got %q want completed", past.Status)
	}
	if next.Status != "scheduled" {
		t.Fatalf("next inspection status: got %q want scheduled", next.Status)
	}
	if !past.Start.Equal(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("past start: %v", past.Start)
	}
	if !next.Start.Equal(time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("next start: %v", next.Start)
	}
	if got := past.End.Sub(past.Start); got != time.Hour {
		t.Fatalf("inspection window: %v", got)
	}
}

func TestProjectCalendarNoNextInspection(t *testing.T) {
	events := ProjectCalendar(Collections{
		Inspections: []fleet.TechnicalInspection{
			{ID: "i1", VehicleID: "v1", InspectionDate: "2024-01-15"},
		},
	})
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
}

func TestProjectCalendarSourceKindOrder(t *testing.T) {
	events := ProjectCalendar(calendarCollections())

	ids := make([]string, len(events))
	for i, e := range events {
		ids[i] = e.ID
	}
	want := []string{"maintenance-m1", "oilchange-o1", "inspection-i1", "inspection-next-i1"}
	if len(ids) != len(want) {
		t.Fatalf("got %d events, want %d", len(ids), len(want))
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("event %d: got %q want %q", i, ids[i], want[i])
		}
	}
}

func TestProjectCalendarTitlesAndWindows(t *testing.T) {
	events := ProjectCalendar(calendarCollections())

	m := events[0]
	if m.Title != "Maintenance - Renault Trafic (120 TU 4521)" {
		t.Fatalf("maintenance title: %q", m.Title)
	}
	if got := m.End.Sub(m.Start); got != 2*time.Hour {
		t.Fatalf("maintenance window: %v", got)
	}
	// in_progress records display as scheduled.
	if m.Status != "scheduled" {
		t.Fatalf("maintenance status: got %q want scheduled", m.Status)
	}

	o := events[1]
	if o.Title != "Oil change - Renault Trafic (120 TU 4521)" {
		t.Fatalf("oil change title: %q", o.Title)
	}
	if o.Type != EventMaintenance {
		t.Fatalf("oil change type: %q", o.Type)
	}
	if got := o.End.Sub(o.Start); got != time.Hour {
		t.Fatalf("oil change window: %v", got)
	}
}

func TestProjectCalendarUnknownVehicle(t *testing.T) {
	events := ProjectCalendar(Collections{
		Maintenances: []fleet.Maintenance{
			{ID: "m1", VehicleID: "ghost", ScheduledDate: "2026-03-10", Status: fleet.StatusScheduled},
		},
	})
	if events[0].Title != "Maintenance - Unknown vehicle" {
		t.Fatalf("fallback title: %q", events[0].Title)
	}
}

func TestProjectCalendarBadDateYieldsZeroStart(t *testing.T) {
	events := ProjectCalendar(Collections{
		Maintenances: []fleet.Maintenance{
			{ID: "m1", VehicleID: "v1", ScheduledDate: "not-a-date", Status: fleet.StatusScheduled},
		},
	})
	if len(events) != 1 {
		t.Fatalf("bad dates must not drop events, got %d", len(events))
	}
	if !events[0].Start.IsZero() {
		t.Fatalf("start should be zero, got %v", events[0].Start)
	}
}

func TestSortEventsByStart(t *testing.T) {
	events := ProjectCalendar(calendarCollections())
	SortEventsByStart(events)

	for i := 1; i < len(events); i++ {
		if events[i].Start.Before(events[i-1].Start) {
			t.Fatalf("events out of order at %d: %v after %v", i, events[i].Start, events[i-1].Start)
		}
	}
	if events[0].ID != "inspection-i1" {
		t.Fatalf("earliest event: got %q", events[0].ID)
	}
}
