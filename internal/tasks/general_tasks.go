package tasks

import (
	"context"

	"go.uber.org/zap"

	"marhaba_app_echo/internal/logger"
	"marhaba_app_echo/internal/models"
)

// MarketplaceReportTaskDef logs a snapshot of the catalogue and booking load
type MarketplaceReportTaskDef struct{}

// TaskID returns the unique identifier for this task
func (t *MarketplaceReportTaskDef) TaskID() string {
	return "marketplace_report"
}

// HandleExecution counts offers per category, bookings per status and
// unanswered inquiries. An optional "note" argument is echoed in the log.
func (t *MarketplaceReportTaskDef) HandleExecution(ctx context.Context, deps Deps, task models.ScheduledTask) (map[string]interface{}, error) {
	offers := map[string]int{}
	for _, o := range deps.Store.Offers() {
		offers[string(o.Category)]++
	}
	bookings := map[string]int{}
	revenue := 0.0
	for _, b := range deps.Store.Bookings() {
		bookings[string(b.Status)]++
		if b.PaymentStatus == models.PaymentStatusPaid {
			revenue += b.TotalPrice
		}
	}
	unanswered := 0
	for _, i := range deps.Store.Inquiries() {
		if !i.Answered() {
			unanswered++
		}
	}

	note, _ := task.Arguments["note"].(string)
	logger.FromContext(ctx).Info("Marketplace report",
		zap.String("note", note),
		zap.Any("offers", offers),
		zap.Any("bookings", bookings),
		zap.Float64("paid_revenue_dzd", revenue),
		zap.Int("unanswered_inquiries", unanswered))

	return map[string]interface{}{
		"status":               "success",
		"offers":               offers,
		"bookings":             bookings,
		"paid_revenue_dzd":     revenue,
		"unanswered_inquiries": unanswered,
	}, nil
}

// MarketplaceReportTask is the singleton instance of MarketplaceReportTaskDef
var MarketplaceReportTask = &MarketplaceReportTaskDef{}
