package tasks

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"marhaba_app_echo/internal/logger"
	"marhaba_app_echo/internal/metrics"
	"marhaba_app_echo/internal/models"
)

const historyLimit = 500

// Scheduler keeps scheduled tasks in memory and runs the due ones on every
// tick. Scheduling a task that is already due wakes the loop early.
type Scheduler struct {
	registry *Registry
	tick     time.Duration
	now      func() time.Time

	mu      sync.Mutex
	nextID  uint
	tasks   map[uint]*models.ScheduledTask
	history []models.ScheduledTaskHistory
	wake    chan struct{}
}

func NewScheduler(registry *Registry, tick time.Duration) *Scheduler {
	if registry == nil {
		registry = GlobalRegistry
	}
	return &Scheduler{
		registry: registry,
		tick:     tick,
		now:      time.Now,
		tasks:    make(map[uint]*models.ScheduledTask),
		wake:     make(chan struct{}, 1),
	}
}

// Schedule stores the task and returns it with its id assigned
func (s *Scheduler) Schedule(task *models.ScheduledTask) models.ScheduledTask {
	s.mu.Lock()
	s.nextID++
	task.ID = s.nextID
	task.CreatedAt = s.now()
	if task.Status == "" {
		task.Status = models.ScheduledTaskStatusActive
	}
	if task.MaxAttempt <= 0 {
		task.MaxAttempt = 1
	}
	stored := *task
	s.tasks[task.ID] = &stored
	due := !task.Due.After(s.now())
	s.mu.Unlock()

	if due {
		select {
		case s.wake <- struct{}{}:
		default:
		}
	}
	return stored
}

// Tasks returns a snapshot of all tasks ordered by id
func (s *Scheduler) Tasks() []models.ScheduledTask {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ScheduledTask, 0, len(s.tasks))
	for _, t := range s.tasks {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// History returns the recorded runs, oldest first
func (s *Scheduler) History() []models.ScheduledTaskHistory {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.ScheduledTaskHistory(nil), s.history...)
}

// Run processes due tasks until ctx is cancelled
func (s *Scheduler) Run(ctx context.Context) {
	log := logger.FromContext(ctx)
	log.Info("Scheduler started", zap.Duration("tick", s.tick))

	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()

	s.RunDue(ctx)
	for {
		select {
		case <-ticker.C:
			s.RunDue(ctx)
		case <-s.wake:
			s.RunDue(ctx)
		case <-ctx.Done():
			log.Info("Scheduler stopped")
			return
		}
	}
}

// RunDue executes every active task whose due time has passed
func (s *Scheduler) RunDue(ctx context.Context) int {
	now := s.now()

	s.mu.Lock()
	var pending []models.ScheduledTask
	for _, t := range s.tasks {
		if t.Status == models.ScheduledTaskStatusActive && !t.Due.After(now) {
			pending = append(pending, *t)
		}
	}
	s.mu.Unlock()

	sort.Slice(pending, func(i, j int) bool { return pending[i].Due.Before(pending[j].Due) })
	for _, task := range pending {
		if ctx.Err() != nil {
			return 0
		}
		s.execute(ctx, task)
	}
	return len(pending)
}

func (s *Scheduler) execute(ctx context.Context, task models.ScheduledTask) {
	log := logger.FromContext(ctx).With(
		zap.Uint("task_id", task.ID),
		zap.String("task_name", task.TaskName))

	if task.Arguments == nil {
		task.Arguments = make(map[string]interface{})
	}

	handler, found := s.registry.Get(task.TaskName)
	if !found {
		log.Warn("Task handler not found, marking as failure")
		now := s.now()
		s.record(models.ScheduledTaskHistory{
			ScheduledTaskID: task.ID,
			TaskName:        task.TaskName,
			RunAt:           now,
			Status:          "handler_not_found",
			AttemptNumber:   1,
			Arguments:       task.Arguments,
			Result:          map[string]interface{}{"error": "Handler not found"},
		})
		s.update(task.ID, func(t *models.ScheduledTask) {
			t.Status = models.ScheduledTaskStatusFailure
			t.LastRun = &now
		})
		metrics.TaskRuns.WithLabelValues(task.TaskName, "handler_not_found").Inc()
		return
	}

	var startTime time.Time
	var err error
	for attempt := 1; attempt <= task.MaxAttempt; attempt++ {
		startTime = s.now()
		var result map[string]interface{}
		result, err = handler(ctx, task)
		runtime := s.now().Sub(startTime)

		status := "success"
		resultData := result
		if err != nil {
			status = "failure"
			resultData = map[string]interface{}{"error": err.Error()}
			log.Warn("Task failed", zap.Int("attempt", attempt), zap.Error(err))
		} else {
			log.Info("Task completed", zap.Int("attempt", attempt))
		}

		s.record(models.ScheduledTaskHistory{
			ScheduledTaskID: task.ID,
			TaskName:        task.TaskName,
			RunAt:           startTime,
			Runtime:         int(runtime.Milliseconds()),
			Status:          status,
			AttemptNumber:   attempt,
			Arguments:       task.Arguments,
			Result:          resultData,
		})
		metrics.TaskRuns.WithLabelValues(task.TaskName, status).Inc()

		if err == nil || ctx.Err() != nil {
			break
		}
	}

	s.update(task.ID, func(t *models.ScheduledTask) {
		t.LastRun = &startTime
		if err != nil {
			t.Status = models.ScheduledTaskStatusFailure
			return
		}
		switch t.TaskType {
		case models.ScheduledTaskTypeRecurring:
			nextDue := t.NextDue(startTime)
			// only re-arm when the rule yields a later occurrence
			if nextDue.After(t.Due) {
				t.Status = models.ScheduledTaskStatusActive
				t.Due = nextDue
			} else {
				t.Status = models.ScheduledTaskStatusDone
			}
		default:
			t.Status = models.ScheduledTaskStatusDone
		}
	})
	s.pruneDone(task.ID)
}

// pruneDone drops a finished one-time task; its history is kept
func (s *Scheduler) pruneDone(id uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.tasks[id]; ok && t.TaskType != models.ScheduledTaskTypeRecurring && t.Status == models.ScheduledTaskStatusDone {
		delete(s.tasks, id)
	}
}

func (s *Scheduler) update(id uint, fn func(*models.ScheduledTask)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.tasks[id]; ok {
		fn(t)
	}
}

func (s *Scheduler) record(h models.ScheduledTaskHistory) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, h)
	if len(s.history) > historyLimit {
		s.history = append([]models.ScheduledTaskHistory(nil), s.history[len(s.history)-historyLimit:]...)
	}
}
