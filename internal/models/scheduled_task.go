package models

import (
	"time"

	"github.com/teambition/rrule-go"
)

// ScheduledTaskStatus represents the status of a scheduled task
type ScheduledTaskStatus string

const (
	ScheduledTaskStatusActive   ScheduledTaskStatus = "active"
	ScheduledTaskStatusDone     ScheduledTaskStatus = "done"
	ScheduledTaskStatusFailure  ScheduledTaskStatus = "failure"
	ScheduledTaskStatusDisabled ScheduledTaskStatus = "disabled"
)

// ScheduledTaskType represents the type of scheduled task
type ScheduledTaskType string

const (
	ScheduledTaskTypeOneTime   ScheduledTaskType = "onetime"
	ScheduledTaskTypeRecurring ScheduledTaskType = "recurring"
)

// ScheduledTask tracks background work that needs to run at a specific time
type ScheduledTask struct {
	ID                uint                   `json:"id"`
	CreatedAt         time.Time              `json:"created_at"`
	TaskName          string                 `json:"task_name"`
	Arguments         map[string]interface{} `json:"arguments"`
	LastRun           *time.Time             `json:"last_run"`
	Due               time.Time              `json:"due"`
	RecurringInterval *string                `json:"recurring_interval"` // RFC 5545 RRULE
	Status            ScheduledTaskStatus    `json:"status"`
	TaskType          ScheduledTaskType      `json:"task_type"`
	MaxAttempt        int                    `json:"max_attempt"`
}

// NextDue calculates the next due date after now for a recurring task
func (t ScheduledTask) NextDue(now time.Time) time.Time {
	if t.TaskType == ScheduledTaskTypeOneTime {
		return t.Due
	}

	if t.RecurringInterval != nil && *t.RecurringInterval != "" {
		rule, err := rrule.StrToRRule(*t.RecurringInterval)
		if err == nil {
			rule.DTStart(t.Due)
			next := rule.After(now, false)
			if !next.IsZero() {
				return next
			}
		}
	}
	// Fallback to current Due if parsing fails
	return t.Due
}

// ScheduledTaskHistory tracks the execution history of scheduled tasks
type ScheduledTaskHistory struct {
	ScheduledTaskID uint                   `json:"scheduled_task_id"`
	TaskName        string                 `json:"task_name"`
	RunAt           time.Time              `json:"run_at"`
	Runtime         int                    `json:"runtime"` // milliseconds
	Status          string                 `json:"status"`
	AttemptNumber   int                    `json:"attempt_number"`
	Arguments       map[string]interface{} `json:"arguments"`
	Result          map[string]interface{} `json:"result"`
}
