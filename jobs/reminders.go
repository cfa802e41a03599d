package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/fleetdesk/fleetdesk/internal/fleet"
)

// FleetSource is the read surface the scans need. The in-memory store
// satisfies it.
type FleetSource interface {
	Vehicles(ctx context.Context) ([]fleet.Vehicle, error)
	Maintenances(ctx context.Context) ([]fleet.Maintenance, error)
	OilChanges(ctx context.Context) ([]fleet.OilChange, error)
	Policies(ctx context.Context) ([]fleet.InsurancePolicy, error)
}

// ReminderJob logs upcoming service events and expiring policies. The scans
// only read and log; notification delivery is a later phase.
type ReminderJob struct {
	Source FleetSource
	Logger *slog.Logger
	clock  func() time.Time
}

// NewReminderJob initialises the reminder handler.
func NewReminderJob(source FleetSource, logger *slog.Logger) *ReminderJob {
	return &ReminderJob{
		Source: source,
		Logger: logger,
		clock: func() time.Time {
			return time.Now().UTC()
		},
	}
}

const dateLayout = "2006-01-02"

// HandleMaintenanceReminder processes TaskMaintenanceReminder tasks.
func (j *ReminderJob) HandleMaintenanceReminder(ctx context.Context, t *asynq.Task) error {
	if j == nil {
		return errors.New("maintenance reminder: handler not configured")
	}
	var payload MaintenanceReminderPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return asynq.SkipRetry
	}
	if payload.WindowDays <= 0 {
		payload.WindowDays = 7
	}

	today := j.clock().Format(dateLayout)
	horizon := j.clock().AddDate(0, 0, payload.WindowDays).Format(dateLayout)
	logger := j.Logger.With(slog.Int("window_days", payload.WindowDays))
	logger.Info("starting maintenance reminder scan")

	labels, err := j.vehicleLabels(ctx)
	if err != nil {
		return err
	}

	maintenances, err := j.Source.Maintenances(ctx)
	if err != nil {
		return err
	}
	oilChanges, err := j.Source.OilChanges(ctx)
	if err != nil {
		return err
	}

	due := 0
	for _, m := range maintenances {
		if m.Status.Upcoming() && m.ScheduledDate >= today && m.ScheduledDate <= horizon {
			due++
			logger.Warn("maintenance due",
				slog.String("maintenance_id", m.ID),
				slog.String("vehicle", labels[m.VehicleID]),
				slog.String("scheduled", m.ScheduledDate),
			)
		}
	}
	for _, o := range oilChanges {
		if o.Status.Upcoming() && o.ScheduledDate >= today && o.ScheduledDate <= horizon {
			due++
			logger.Warn("oil change due",
				slog.String("oil_change_id", o.ID),
				slog.String("vehicle", labels[o.VehicleID]),
				slog.String("scheduled", o.ScheduledDate),
			)
		}
	}

	logger.Info("maintenance reminder scan finished", slog.Int("due", due))
	return nil
}

// HandlePolicyExpiryScan processes TaskPolicyExpiryScan tasks.
func (j *ReminderJob) HandlePolicyExpiryScan(ctx context.Context, t *asynq.Task) error {
	if j == nil {
		return errors.New("policy expiry scan: handler not configured")
	}
	var payload PolicyExpiryScanPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return asynq.SkipRetry
	}
	if payload.WindowDays <= 0 {
		payload.WindowDays = 30
	}

	today := j.clock().Format(dateLayout)
	horizon := j.clock().AddDate(0, 0, payload.WindowDays).Format(dateLayout)
	logger := j.Logger.With(slog.Int("window_days", payload.WindowDays))
	logger.Info("starting policy expiry scan")

	labels, err := j.vehicleLabels(ctx)
	if err != nil {
		return err
	}
	policies, err := j.Source.Policies(ctx)
	if err != nil {
		return err
	}

	expiring := 0
	for _, p := range policies {
		if p.Status != fleet.PolicyActive {
			continue
		}
		if p.EndDate >= today && p.EndDate <= horizon {
			expiring++
			logger.Warn("policy expiring",
				slog.String("policy_number", p.PolicyNumber),
				slog.String("vehicle", labels[p.VehicleID]),
				slog.String("end_date", p.EndDate),
			)
		}
	}

	logger.Info("policy expiry scan finished", slog.Int("expiring", expiring))
	return nil
}

func (j *ReminderJob) vehicleLabels(ctx context.Context) (map[string]string, error) {
	vehicles, err := j.Source.Vehicles(ctx)
	if err != nil {
		return nil, err
	}
	labels := make(map[string]string, len(vehicles))
	for _, v := range vehicles {
		labels[v.ID] = v.DisplayName()
	}
	return labels, nil
}
