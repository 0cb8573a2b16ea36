package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"example.com/finance-dashboard/backend/internal/news"
)

type stubRefresher struct {
	calls atomic.Int32
}

func (s *stubRefresher) Refresh(ctx context.Context) []news.Item {
	s.calls.Add(1)
	return nil
}

// TestNewRejectsZeroInterval проверяет отказ при нулевом интервале.
func TestNewRejectsZeroInterval(t *testing.T) {
	if _, err := New(&stubRefresher{}, 0, nil); err == nil {
		t.Fatal("expected error for zero interval")
	}
}

// TestSchedulerRunsRefresh проверяет периодический запуск обновления.
func TestSchedulerRunsRefresh(t *testing.T) {
	stub := &stubRefresher{}

	s, err := New(stub, 50*time.Millisecond, nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	s.Start()
	defer s.Stop()

	deadline := time.After(2 * time.Second)
	for stub.calls.Load() == 0 {
		select {
		case <-deadline:
			t.Fatal("refresh was never invoked")
		case <-time.After(10 * time.Millisecond):
		}
	}
}
