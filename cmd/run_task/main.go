package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"marhaba_app_echo/internal/config"
	"marhaba_app_echo/internal/i18n"
	"marhaba_app_echo/internal/logger"
	"marhaba_app_echo/internal/models"
	"marhaba_app_echo/internal/services"
	"marhaba_app_echo/internal/store"
	"marhaba_app_echo/internal/tasks"
)

// run_task executes one registered task against the seed data and prints the
// run history. Useful to try out task handlers and notification channels.
func main() {
	taskName := flag.String("task_name", "", "Name of the task (mandatory)")
	argsStr := flag.String("arguments", "{}", "JSON arguments for the task")
	maxAttempt := flag.Int("max_attempt", 3, "Max attempts (optional, default: 3)")
	flag.Parse()

	if *taskName == "" {
		fmt.Println("Usage: run_task -task_name <name> [-arguments <json_args>] [-max_attempt <n>]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg, err := config.Load("marhaba-run-task")
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}
	if err := logger.InitLogger(&logger.LogConfig{Level: cfg.Log.Level, Environment: "development", ServiceName: cfg.ServiceName}); err != nil {
		panic(err)
	}
	log := logger.GetLogger()
	defer log.Sync()

	var args map[string]interface{}
	if err := json.Unmarshal([]byte(*argsStr), &args); err != nil {
		log.Fatal("Invalid JSON arguments", zap.Error(err))
	}

	tr, err := i18n.New(models.ParseLanguage(cfg.DefaultLang, models.LanguageArabic))
	if err != nil {
		log.Fatal("Failed to load translations", zap.Error(err))
	}

	db := store.NewSeeded()
	registry := tasks.NewRegistry()
	tasks.DefineTasks(registry, tasks.Deps{
		Store:      db,
		Dashboard:  services.NewDashboardService(db, nil),
		Sender:     services.NewNotificationService(cfg.Notification),
		Translator: tr,
	})

	scheduler := tasks.NewScheduler(registry, time.Minute)
	task := scheduler.Schedule(&models.ScheduledTask{
		TaskName:   *taskName,
		Arguments:  args,
		Due:        time.Now(),
		TaskType:   models.ScheduledTaskTypeOneTime,
		MaxAttempt: *maxAttempt,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	scheduler.RunDue(ctx)

	for _, h := range scheduler.History() {
		out, _ := json.MarshalIndent(h, "", "  ")
		fmt.Println(string(out))
	}
	fmt.Printf("Task: %s (ID: %d)\n", task.TaskName, task.ID)
}
