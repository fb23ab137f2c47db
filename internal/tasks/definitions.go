package tasks

import (
	"context"

	"marhaba_app_echo/internal/i18n"
	"marhaba_app_echo/internal/models"
	"marhaba_app_echo/internal/services"
	"marhaba_app_echo/internal/store"
)

// Sender delivers a text to a user over the best available channel
type Sender interface {
	Send(ctx context.Context, recipient models.User, subject, text string) (services.Channel, error)
}

// Deps are the collaborators task handlers need
type Deps struct {
	Store      *store.Store
	Dashboard  *services.DashboardService
	Sender     Sender
	Translator *i18n.Translator
}

// DefineTasks registers all available tasks on the registry
func DefineTasks(r *Registry, deps Deps) {
	// general
	r.Register(MarketplaceReportTask.TaskID(), func(ctx context.Context, task models.ScheduledTask) (map[string]interface{}, error) {
		return MarketplaceReportTask.HandleExecution(ctx, deps, task)
	})

	// notifications
	r.Register(SendNotificationTask.TaskID(), func(ctx context.Context, task models.ScheduledTask) (map[string]interface{}, error) {
		return SendNotificationTask.HandleExecution(ctx, deps, task)
	})
	r.Register(InquiryDigestTask.TaskID(), func(ctx context.Context, task models.ScheduledTask) (map[string]interface{}, error) {
		return InquiryDigestTask.HandleExecution(ctx, deps, task)
	})
}
