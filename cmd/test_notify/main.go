package main

import (
	"context"
	"flag"
	"time"

	"go.uber.org/zap"

	"marhaba_app_echo/internal/config"
	"marhaba_app_echo/internal/logger"
	"marhaba_app_echo/internal/models"
	"marhaba_app_echo/internal/services"
	"marhaba_app_echo/internal/store"
)

func main() {
	userID := flag.String("user", "", "Seeded user id to notify (e.g. p1)")
	phone := flag.String("phone", "", "Phone number, overrides the user's (e.g. 0551234567)")
	email := flag.String("email", "", "Email address, overrides the user's")
	msg := flag.String("msg", "Test message from Marhaba", "Message body")
	flag.Parse()

	cfg, err := config.Load("marhaba-test-notify")
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}
	if err := logger.InitLogger(&logger.LogConfig{Level: "debug", Environment: "development", ServiceName: cfg.ServiceName}); err != nil {
		panic(err)
	}
	log := logger.GetLogger()
	defer log.Sync()

	recipient := models.User{ID: "cli", Name: "CLI"}
	if *userID != "" {
		u, ok := store.NewSeeded().FindUserByID(*userID)
		if !ok {
			log.Fatal("Unknown user", zap.String("user_id", *userID))
		}
		recipient = u
	}
	if *phone != "" {
		recipient.Phone = *phone
	}
	if *email != "" {
		recipient.Email = *email
	}
	if recipient.Phone == "" && recipient.Email == "" {
		log.Fatal("Provide -user, -phone or -email")
	}

	log.Info("Sending test notification",
		zap.String("chat_id", services.NormalizeChatID(recipient.Phone)),
		zap.String("email", recipient.Email))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	channel, err := services.NewNotificationService(cfg.Notification).Send(ctx, recipient, "Marhaba test", *msg)
	if err != nil {
		log.Fatal("Failed to send message", zap.String("channel", string(channel)), zap.Error(err))
	}

	log.Info("Message sent successfully", zap.String("channel", string(channel)))
}
