package handlers

import (
	"testing"
	"time"

	"example.com/finance-dashboard/backend/internal/models"
)

// TestToGoalResponse проверяет прогресс и прогноз в ответе по цели.
func TestToGoalResponse(t *testing.T) {
	now := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	goal := models.Goal{
		Name:     "Emergency Fund",
		Target:   100000,
		Saved:    25000,
		Deadline: time.Date(2026, 11, 11, 0, 0, 0, 0, time.UTC),
	}

	response := toGoalResponse(goal, now)
	if response.Progress != 25 {
		t.Fatalf("expected progress 25, got %f", response.Progress)
	}
	if response.Deadline != "2026-11-11" {
		t.Fatalf("unexpected deadline: %s", response.Deadline)
	}
	if response.Forecast.MonthsLeft != 10 {
		t.Fatalf("expected 10 months left, got %d", response.Forecast.MonthsLeft)
	}
	if response.Forecast.RequiredMonthly != 7500 {
		t.Fatalf("expected required monthly 7500, got %f", response.Forecast.RequiredMonthly)
	}
}

// TestToGoalResponseOverfunded проверяет потолок прогресса в 100 процентов.
func TestToGoalResponseOverfunded(t *testing.T) {
	now := time.Now()
	goal := models.Goal{
		Name:     "Vacation",
		Target:   50000,
		Saved:    75000,
		Deadline: now.AddDate(0, 6, 0),
	}

	response := toGoalResponse(goal, now)
	if response.Progress != 100 {
		t.Fatalf("expected progress capped at 100, got %f", response.Progress)
	}
	if response.Forecast.RequiredMonthly >= 0 {
		t.Fatalf("expected negative required monthly, got %f", response.Forecast.RequiredMonthly)
	}
}
