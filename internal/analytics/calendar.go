package analytics

import (
	"sort"
	"time"

	"github.com/fleetdesk/fleetdesk/internal/fleet"
)

// EventType classifies calendar events.
type EventType string

const (
	EventMaintenance EventType = "maintenance"
	EventInspection  EventType = "inspection"
)

const fallbackVehicleLabel = "Unknown vehicle"

// CalendarEvent is a derived calendar entry. It is never persisted.
type CalendarEvent struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Type        EventType `json:"type"`
	VehicleID   string    `json:"vehicleId"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
}

// ProjectCalendar flattens the three service-event collections into one
// sequence, in source-kind order: maintenances, oil changes, then inspection
// pairs. No chronological sort is applied here; callers needing one use
// SortEventsByStart. A record whose date does not parse yields an event with
// a zero Start rather than being dropped.
func ProjectCalendar(c Collections) []CalendarEvent {
	names := make(map[string]string, len(c.Vehicles))
	for _, v := range c.Vehicles {
		names[v.ID] = v.DisplayName()
	}
	vehicleLabel := func(id string) string {
		if name, ok := names[id]; ok {
			return name
		}
		return fallbackVehicleLabel
	}

	events := make([]CalendarEvent, 0, len(c.Maintenances)+len(c.OilChanges)+2*len(c.Inspections))

	for _, m := range c.Maintenances {
		start := parseEventDate(m.ScheduledDate)
		events = append(events, CalendarEvent{
			ID:          "maintenance-" + m.ID,
			Title:       "Maintenance - " + vehicleLabel(m.VehicleID),
			Start:       start,
			End:         start.Add(2 * time.Hour),
			Type:        EventMaintenance,
			VehicleID:   m.VehicleID,
			Description: m.Description,
			Status:      displayStatus(m.Status),
		})
	}

	for _, o := range c.OilChanges {
		start := parseEventDate(o.ScheduledDate)
		events = append(events, CalendarEvent{
			ID:          "oilchange-" + o.ID,
			Title:       "Oil change - " + vehicleLabel(o.VehicleID),
			Start:       start,
			End:         start.Add(time.Hour),
			Type:        EventMaintenance,
			VehicleID:   o.VehicleID,
			Description: o.OilType,
			Status:      displayStatus(o.Status),
		})
	}

	for _, insp := range c.Inspections {
		start := parseEventDate(insp.InspectionDate)
		// The inspection itself already happened, whatever the source
		// record says.
		events = append(events, CalendarEvent{
			ID:          "inspection-" + insp.ID,
			Title:       "Technical inspection - " + vehicleLabel(insp.VehicleID),
			Start:       start,
			End:         start.Add(time.Hour),
			Type:        EventInspection,
			VehicleID:   insp.VehicleID,
			Description: insp.InspectionCenter,
			Status:      string(fleet.StatusCompleted),
		})
		if insp.NextInspectionDate != "" {
			next := parseEventDate(insp.NextInspectionDate)
			events = append(events, CalendarEvent{
				ID:          "inspection-next-" + insp.ID,
				Title:       "Technical inspection - " + vehicleLabel(insp.VehicleID),
				Start:       next,
				End:         next.Add(time.Hour),
				Type:        EventInspection,
				VehicleID:   insp.VehicleID,
				Description: insp.InspectionCenter,
				Status:      string(fleet.StatusScheduled),
			})
		}
	}

	return events
}

// SortEventsByStart orders events chronologically in place, zero-date events
// first.
func SortEventsByStart(events []CalendarEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Start.Before(events[j].Start)
	})
}

// displayStatus collapses in_progress to scheduled for display.
func displayStatus(s fleet.ServiceStatus) string {
	if s == fleet.StatusInProgress {
		return string(fleet.StatusScheduled)
	}
	return string(s)
}

func parseEventDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}
	}
	return t
}
