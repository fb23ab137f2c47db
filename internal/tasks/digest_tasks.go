package tasks

import (
	"context"
	"time"

	"go.uber.org/zap"

	"marhaba_app_echo/internal/logger"
	"marhaba_app_echo/internal/models"
)

// InquiryDigestTaskDef reminds providers of unread inquiries and pending bookings
type InquiryDigestTaskDef struct{}

// TaskID returns the unique identifier for this task
func (t *InquiryDigestTaskDef) TaskID() string {
	return "inquiry_digest"
}

// CreateTask builds the recurring digest task from an RRULE
func (t *InquiryDigestTaskDef) CreateTask(rrule string, start time.Time) (*models.ScheduledTask, error) {
	return taskSpec{name: t.TaskID(), args: struct{}{}, due: start, rrule: rrule, maxAttempt: 1}.build()
}

// HandleExecution sends one digest per provider with something waiting.
// Delivery failures are counted, not returned, so one bad address does not
// block the others.
func (t *InquiryDigestTaskDef) HandleExecution(ctx context.Context, deps Deps, task models.ScheduledTask) (map[string]interface{}, error) {
	log := logger.FromContext(ctx)
	lang := deps.Translator.Fallback()
	subject := deps.Translator.T(lang, "digestSubject", nil)

	entries := deps.Dashboard.Digest()
	successCount := 0
	failureCount := 0
	var failures []string

	for _, e := range entries {
		text := deps.Translator.T(lang, "digestAlert", map[string]interface{}{
			"inquiries": e.UnreadInquiries,
			"bookings":  e.PendingBookings,
		})
		if _, err := deps.Sender.Send(ctx, e.Provider, subject, text); err != nil {
			log.Warn("Failed to send digest", zap.String("provider_id", e.Provider.ID), zap.Error(err))
			failureCount++
			failures = append(failures, e.Provider.ID)
			continue
		}
		successCount++
	}

	result := map[string]interface{}{
		"total":   len(entries),
		"success": successCount,
		"failure": failureCount,
	}
	if failureCount > 0 {
		result["failed_providers"] = failures
	}
	return result, nil
}

// InquiryDigestTask is the singleton instance of InquiryDigestTaskDef
var InquiryDigestTask = &InquiryDigestTaskDef{}
