package tasks

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"marhaba_app_echo/internal/logger"
	"marhaba_app_echo/internal/models"
	"marhaba_app_echo/internal/services"
)

// SendNotificationArgs defines the arguments for a notification task
type SendNotificationArgs struct {
	ProviderID string                 `json:"provider_id"`
	Key        string                 `json:"key"`
	SubjectKey string                 `json:"subject_key,omitempty"`
	Params     map[string]interface{} `json:"params"`
}

// SendNotificationTaskDef encapsulates the notification task logic
type SendNotificationTaskDef struct{}

// TaskID returns the unique identifier for this task
func (t *SendNotificationTaskDef) TaskID() string {
	return "send_notification"
}

// CreateTask builds a ScheduledTask record for this task
func (t *SendNotificationTaskDef) CreateTask(args SendNotificationArgs, due time.Time) (*models.ScheduledTask, error) {
	return taskSpec{name: t.TaskID(), args: args, due: due, maxAttempt: 3}.build()
}

// HandleExecution renders the message in the default language and sends it to the provider
func (t *SendNotificationTaskDef) HandleExecution(ctx context.Context, deps Deps, task models.ScheduledTask) (map[string]interface{}, error) {
	var args SendNotificationArgs
	if err := decodeArgs(task.Arguments, &args); err != nil {
		return nil, err
	}
	if args.Key == "" {
		return nil, fmt.Errorf("notification key is missing")
	}

	provider, ok := deps.Store.FindUserByID(args.ProviderID)
	if !ok {
		// the provider is gone, nothing to retry
		logger.FromContext(ctx).Warn("Skipping notification, unknown provider",
			zap.String("provider_id", args.ProviderID))
		return map[string]interface{}{"status": "skipped"}, nil
	}

	lang := deps.Translator.Fallback()
	subjectKey := args.SubjectKey
	if subjectKey == "" {
		subjectKey = "alertSubject"
	}
	subject := deps.Translator.T(lang, subjectKey, nil)
	text := deps.Translator.T(lang, args.Key, localizeParams(args.Params, lang))

	channel, err := deps.Sender.Send(ctx, provider, subject, text)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"status":  "success",
		"channel": string(channel),
	}, nil
}

// SendNotificationTask is the singleton instance of SendNotificationTaskDef
var SendNotificationTask = &SendNotificationTaskDef{}

// localizeParams picks the language variant of bilingual parameters
func localizeParams(params map[string]interface{}, lang models.Language) map[string]interface{} {
	out := make(map[string]interface{}, len(params))
	for k, v := range params {
		if m, ok := v.(map[string]interface{}); ok {
			ls := models.LocalizedString{}
			ls.En, _ = m["en"].(string)
			ls.Ar, _ = m["ar"].(string)
			out[k] = ls.Get(lang)
			continue
		}
		out[k] = v
	}
	return out
}

// Dispatcher queues provider alerts as send_notification tasks so that the
// request that raised them never waits on delivery.
type Dispatcher struct {
	scheduler *Scheduler
	now       func() time.Time
}

func NewDispatcher(scheduler *Scheduler) *Dispatcher {
	return &Dispatcher{scheduler: scheduler, now: time.Now}
}

// Alert implements services.Alerter
func (d *Dispatcher) Alert(ctx context.Context, alert services.Alert) {
	task, err := SendNotificationTask.CreateTask(SendNotificationArgs{
		ProviderID: alert.ProviderID,
		Key:        alert.Key,
		Params:     alert.Params,
	}, d.now())
	if err != nil {
		logger.FromContext(ctx).Error("Failed to build notification task", zap.Error(err))
		return
	}
	d.scheduler.Schedule(task)
}

var _ services.Alerter = (*Dispatcher)(nil)
