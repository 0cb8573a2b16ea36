package finance

import (
	"errors"
	"math"
	"testing"
	"time"
)

var forecastNow = time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

// TestForecastGoal проверяет расчет взноса и оценки достижимости.
func TestForecastGoal(t *testing.T) {
	deadline := forecastNow.AddDate(0, 0, 300) // 10 месяцев

	forecast, err := ForecastGoal(500000, 100000, deadline, forecastNow)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if forecast.MonthsLeft != 10 {
		t.Fatalf("expected 10 months left, got %d", forecast.MonthsLeft)
	}
	if forecast.RequiredMonthly != 40000 {
		t.Fatalf("expected required monthly 40000, got %f", forecast.RequiredMonthly)
	}

	// 20% прогресса + 80/10 по оставшимся месяцам.
	if math.Abs(forecast.CompletionProbability-28) > 1e-9 {
		t.Fatalf("expected probability 28, got %f", forecast.CompletionProbability)
	}
}

// TestForecastGoalMet проверяет отрицательный взнос для достигнутой цели.
func TestForecastGoalMet(t *testing.T) {
	deadline := forecastNow.AddDate(0, 6, 0)

	forecast, err := ForecastGoal(200000, 200000, deadline, forecastNow)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if forecast.RequiredMonthly > 0 {
		t.Fatalf("expected non-positive required monthly, got %f", forecast.RequiredMonthly)
	}
	if forecast.CompletionProbability != 100 {
		t.Fatalf("expected probability capped at 100, got %f", forecast.CompletionProbability)
	}
}

// TestForecastGoalOverfunded проверяет потолок оценки при перевыполненной цели.
func TestForecastGoalOverfunded(t *testing.T) {
	deadline := forecastNow.AddDate(1, 0, 0)

	forecast, err := ForecastGoal(100000, 150000, deadline, forecastNow)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if forecast.RequiredMonthly >= 0 {
		t.Fatalf("expected negative required monthly, got %f", forecast.RequiredMonthly)
	}
	if forecast.CompletionProbability != 100 {
		t.Fatalf("expected probability 100, got %f", forecast.CompletionProbability)
	}
}

// TestForecastGoalPastDeadline проверяет один оставшийся месяц для дедлайна в прошлом.
func TestForecastGoalPastDeadline(t *testing.T) {
	deadline := forecastNow.AddDate(0, 0, -90)

	forecast, err := ForecastGoal(120000, 20000, deadline, forecastNow)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if forecast.MonthsLeft != 1 {
		t.Fatalf("expected 1 month left, got %d", forecast.MonthsLeft)
	}
	if forecast.RequiredMonthly != 100000 {
		t.Fatalf("expected required monthly 100000, got %f", forecast.RequiredMonthly)
	}
}

// TestForecastGoalInvalidTarget проверяет ошибку валидации для нулевой цели.
func TestForecastGoalInvalidTarget(t *testing.T) {
	_, err := ForecastGoal(0, 0, forecastNow.AddDate(0, 1, 0), forecastNow)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}

	_, err = ForecastGoal(-100, 0, forecastNow.AddDate(0, 1, 0), forecastNow)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

// TestForecastGoalISO проверяет разбор дедлайна из строки.
func TestForecastGoalISO(t *testing.T) {
	forecast, err := ForecastGoalISO(500000, 100000, "2026-11-11", forecastNow)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if forecast.MonthsLeft != 10 {
		t.Fatalf("expected 10 months left, got %d", forecast.MonthsLeft)
	}

	_, err = ForecastGoalISO(500000, 100000, "11/11/2026", forecastNow)
	if !errors.Is(err, ErrParse) {
		t.Fatalf("expected parse error, got %v", err)
	}
}

// TestParseDate проверяет разбор дат формата YYYY-MM-DD.
func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2026-08-30")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if parsed.Format(DateLayout) != "2026-08-30" {
		t.Fatalf("unexpected date: %s", parsed.Format(DateLayout))
	}

	if _, err := ParseDate("2026-13-01"); !errors.Is(err, ErrParse) {
		t.Fatalf("expected parse error, got %v", err)
	}
}
