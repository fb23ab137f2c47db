package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"marhaba_app_echo/internal/config"
	"marhaba_app_echo/internal/logger"
	"marhaba_app_echo/internal/models"
)

// Channel is the medium a notification went out on
type Channel string

const (
	ChannelWhatsapp Channel = "whatsapp"
	ChannelEmail    Channel = "email"
	ChannelLog      Channel = "log"
)

// Alert is a provider notification. Key names an i18n message, Params fill
// its placeholders.
type Alert struct {
	ProviderID string                 `json:"provider_id"`
	Key        string                 `json:"key"`
	Params     map[string]interface{} `json:"params"`
}

// Alerter dispatches provider alerts. Implementations must not block the
// caller and must not report delivery failures back.
type Alerter interface {
	Alert(ctx context.Context, alert Alert)
}

type logAlerter struct{}

func (logAlerter) Alert(ctx context.Context, alert Alert) {
	logger.FromContext(ctx).Info("Provider alert",
		zap.String("provider_id", alert.ProviderID),
		zap.String("key", alert.Key),
		zap.Any("params", alert.Params))
}

type messenger interface {
	Configured() bool
	SendMessage(ctx context.Context, chatID, text string) error
}

type mailer interface {
	Configured() bool
	SendEmail(to []string, subject, body string) error
}

// NotificationService picks a delivery channel for a user: WhatsApp when
// WAHA is configured and the user has a phone, then email, then the log.
type NotificationService struct {
	whatsapp messenger
	email    mailer
}

func NewNotificationService(cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		whatsapp: NewWahaService(cfg),
		email:    NewEmailService(cfg),
	}
}

// Send delivers text to the recipient and returns the channel used
func (s *NotificationService) Send(ctx context.Context, recipient models.User, subject, text string) (Channel, error) {
	log := logger.FromContext(ctx).With(zap.String("user_id", recipient.ID))

	if s.whatsapp.Configured() && recipient.Phone != "" {
		if err := s.whatsapp.SendMessage(ctx, recipient.Phone, text); err != nil {
			return ChannelWhatsapp, fmt.Errorf("whatsapp to %s: %w", recipient.ID, err)
		}
		log.Info("Notification sent", zap.String("channel", string(ChannelWhatsapp)))
		return ChannelWhatsapp, nil
	}

	if s.email.Configured() && recipient.Email != "" {
		if err := s.email.SendEmail([]string{recipient.Email}, subject, text); err != nil {
			return ChannelEmail, fmt.Errorf("email to %s: %w", recipient.ID, err)
		}
		log.Info("Notification sent", zap.String("channel", string(ChannelEmail)))
		return ChannelEmail, nil
	}

	log.Info("Notification logged",
		zap.String("channel", string(ChannelLog)),
		zap.String("subject", subject),
		zap.String("text", text))
	return ChannelLog, nil
}
