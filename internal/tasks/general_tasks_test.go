package tasks

import (
	"context"
	"testing"
	"time"

	"marhaba_app_echo/internal/models"
)

func TestMarketplaceReport(t *testing.T) {
	deps := newDeps(t, &fakeSender{})
	task := models.ScheduledTask{TaskName: MarketplaceReportTask.TaskID(), Arguments: map[string]interface{}{"note": "nightly"}}

	result, err := MarketplaceReportTask.HandleExecution(context.Background(), deps, task)
	if err != nil {
		t.Fatalf("HandleExecution() error = %v", err)
	}

	offers := result["offers"].(map[string]int)
	if offers["trip"] != 2 || offers["hotel"] != 1 || offers["guesthouse"] != 1 {
		t.Errorf("offers = %v; want trip:2 hotel:1 guesthouse:1", offers)
	}
	bookings := result["bookings"].(map[string]int)
	if bookings["completed"] != 1 || bookings["upcoming"] != 1 {
		t.Errorf("bookings = %v; want completed:1 upcoming:1", bookings)
	}
	if got := result["paid_revenue_dzd"].(float64); got != 236000 {
		t.Errorf("paid_revenue_dzd = %v; want 236000", got)
	}
	if got := result["unanswered_inquiries"].(int); got != 1 {
		t.Errorf("unanswered_inquiries = %d; want 1", got)
	}
}

func TestTaskSpecBuild(t *testing.T) {
	due := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		spec     taskSpec
		wantType models.ScheduledTaskType
		wantRule bool
	}{
		{
			name:     "one-time",
			spec:     taskSpec{name: "send_notification", args: SendNotificationArgs{ProviderID: "p1", Key: "k"}, due: due, maxAttempt: 3},
			wantType: models.ScheduledTaskTypeOneTime,
		},
		{
			name:     "recurring",
			spec:     taskSpec{name: "inquiry_digest", args: struct{}{}, due: due, rrule: "FREQ=DAILY", maxAttempt: 1},
			wantType: models.ScheduledTaskTypeRecurring,
			wantRule: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task, err := tt.spec.build()
			if err != nil {
				t.Fatalf("build() error = %v", err)
			}
			if task.TaskType != tt.wantType || task.Status != models.ScheduledTaskStatusActive {
				t.Errorf("type/status = %s/%s; want %s/active", task.TaskType, task.Status, tt.wantType)
			}
			if (task.RecurringInterval != nil) != tt.wantRule {
				t.Errorf("RecurringInterval = %v; want set=%v", task.RecurringInterval, tt.wantRule)
			}
			if task.Arguments == nil || !task.Due.Equal(due) || task.MaxAttempt != tt.spec.maxAttempt {
				t.Errorf("task = %+v", task)
			}
		})
	}

	var args SendNotificationArgs
	task, _ := tests[0].spec.build()
	if err := decodeArgs(task.Arguments, &args); err != nil || args.ProviderID != "p1" {
		t.Errorf("decodeArgs() = %+v, %v; want provider p1", args, err)
	}
}
