package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"example.com/finance-dashboard/backend/internal/news"
)

// NewsRefresher обновляет кеш новостей в фоне.
type NewsRefresher interface {
	Refresh(ctx context.Context) []news.Item
}

// Scheduler запускает периодические фоновые задачи сервиса.
type Scheduler struct {
	cron   *cron.Cron
	logger *slog.Logger
}

// New создаёт планировщик с заданным интервалом обновления новостей.
func New(news NewsRefresher, refreshEvery time.Duration, logger *slog.Logger) (*Scheduler, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if refreshEvery <= 0 {
		return nil, fmt.Errorf("refresh interval must be positive, got %s", refreshEvery)
	}

	c := cron.New()
	spec := fmt.Sprintf("@every %s", refreshEvery)

	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		count := news.Refresh(ctx)
		logger.Info("news cache refreshed", "items", count)
	})
	if err != nil {
		return nil, fmt.Errorf("schedule news refresh: %w", err)
	}

	return &Scheduler{cron: c, logger: logger}, nil
}

// Start запускает фоновые задачи.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop останавливает планировщик и ждёт завершения текущих задач.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
