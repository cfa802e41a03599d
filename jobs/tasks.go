// Package jobs runs the background scans over the fleet data.
package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskMaintenanceReminder scans for service events coming due.
	TaskMaintenanceReminder = "fleet:maintenance_reminder"
	// TaskPolicyExpiryScan scans for insurance policies about to expire.
	TaskPolicyExpiryScan = "fleet:policy_expiry_scan"
)

// MaintenanceReminderPayload configures the reminder scan window.
type MaintenanceReminderPayload struct {
	WindowDays int `json:"window_days"`
}

// NewMaintenanceReminderTask constructs the reminder task.
func NewMaintenanceReminderTask(payload MaintenanceReminderPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskMaintenanceReminder, data), nil
}

// PolicyExpiryScanPayload configures the expiry scan window.
type PolicyExpiryScanPayload struct {
	WindowDays int `json:"window_days"`
}

// NewPolicyExpiryScanTask constructs the expiry scan task.
func NewPolicyExpiryScanTask(payload PolicyExpiryScanPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskPolicyExpiryScan, data), nil
}
