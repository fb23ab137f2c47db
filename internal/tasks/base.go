package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"marhaba_app_echo/internal/models"
)

// taskSpec describes a task to schedule. An empty rrule makes it one-time.
type taskSpec struct {
	name       string
	args       interface{}
	due        time.Time
	rrule      string
	maxAttempt int
}

// build turns the spec into a ScheduledTask, storing args as a JSON object
func (s taskSpec) build() (*models.ScheduledTask, error) {
	var stored map[string]interface{}
	if err := roundTrip(s.args, &stored); err != nil {
		return nil, fmt.Errorf("task %s: %w", s.name, err)
	}

	task := &models.ScheduledTask{
		TaskName:   s.name,
		Arguments:  stored,
		Due:        s.due,
		Status:     models.ScheduledTaskStatusActive,
		TaskType:   models.ScheduledTaskTypeOneTime,
		MaxAttempt: s.maxAttempt,
	}
	if s.rrule != "" {
		rule := s.rrule
		task.RecurringInterval = &rule
		task.TaskType = models.ScheduledTaskTypeRecurring
	}
	return task, nil
}

// decodeArgs converts the stored argument map back into a typed struct
func decodeArgs(args map[string]interface{}, dest interface{}) error {
	if err := roundTrip(args, dest); err != nil {
		return fmt.Errorf("decode args: %w", err)
	}
	return nil
}

func roundTrip(src, dest interface{}) error {
	raw, err := json.Marshal(src)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dest)
}
