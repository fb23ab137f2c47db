package services

import (
	"context"
	"errors"
	"testing"

	"marhaba_app_echo/internal/models"
)

type fakeMessenger struct {
	configured bool
	err        error
	sent       []string
}

func (f *fakeMessenger) Configured() bool { return f.configured }

func (f *fakeMessenger) SendMessage(_ context.Context, chatID, text string) error {
	f.sent = append(f.sent, chatID+":"+text)
	return f.err
}

type fakeMailer struct {
	configured bool
	sent       []string
}

func (f *fakeMailer) Configured() bool { return f.configured }

func (f *fakeMailer) SendEmail(to []string, subject, body string) error {
	f.sent = append(f.sent, to[0]+":"+subject)
	return nil
}

func TestNotificationServiceChannel(t *testing.T) {
	withPhone := models.User{ID: "p1", Email: "p1@example.com", Phone: "0551234567"}
	noPhone := models.User{ID: "p2", Email: "p2@example.com"}

	tests := []struct {
		name      string
		waha      bool
		smtp      bool
		recipient models.User
		want      Channel
	}{
		{"whatsapp when configured and phone present", true, true, withPhone, ChannelWhatsapp},
		{"email when recipient has no phone", true, true, noPhone, ChannelEmail},
		{"email when waha not configured", false, true, withPhone, ChannelEmail},
		{"log when nothing configured", false, false, withPhone, ChannelLog},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wa := &fakeMessenger{configured: tt.waha}
			mail := &fakeMailer{configured: tt.smtp}
			svc := &NotificationService{whatsapp: wa, email: mail}

			got, err := svc.Send(context.Background(), tt.recipient, "subject", "text")
			if err != nil {
				t.Fatalf("Send() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Send() channel = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestNotificationServiceWhatsappError(t *testing.T) {
	wa := &fakeMessenger{configured: true, err: errors.New("boom")}
	svc := &NotificationService{whatsapp: wa, email: &fakeMailer{}}

	_, err := svc.Send(context.Background(), models.User{ID: "p1", Phone: "0551234567"}, "s", "t")
	if err == nil {
		t.Fatal("Send() expected error")
	}
}
