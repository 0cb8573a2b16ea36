package finance

import (
	"math"
	"testing"
)

// TestComputeSavings проверяет расчет сбережений и нормы сбережений.
func TestComputeSavings(t *testing.T) {
	result := ComputeSavings(100000, 70000)
	if result.Savings != 30000 {
		t.Fatalf("expected savings 30000, got %f", result.Savings)
	}
	if result.Rate != 30 {
		t.Fatalf("expected rate 30, got %f", result.Rate)
	}
}

// TestComputeSavingsNegative проверяет, что расходы выше дохода — не ошибка.
func TestComputeSavingsNegative(t *testing.T) {
	result := ComputeSavings(50000, 80000)
	if result.Savings != -30000 {
		t.Fatalf("expected savings -30000, got %f", result.Savings)
	}
	if result.Rate != -60 {
		t.Fatalf("expected rate -60, got %f", result.Rate)
	}
}

// TestComputeSavingsZeroIncome проверяет отсутствие деления на ноль.
func TestComputeSavingsZeroIncome(t *testing.T) {
	result := ComputeSavings(0, 0)
	if result.Savings != 0 || result.Rate != 0 {
		t.Fatalf("expected zero result, got %+v", result)
	}

	result = ComputeSavings(0, 5000)
	if result.Rate != 0 {
		t.Fatalf("expected zero rate for zero income, got %f", result.Rate)
	}
}

// TestNetWorth проверяет расчет чистой стоимости.
func TestNetWorth(t *testing.T) {
	got := NetWorth(map[string]float64{"a": 100}, map[string]float64{"b": 40})
	if got != 60 {
		t.Fatalf("expected 60, got %f", got)
	}
}

// TestNetWorthEmpty проверяет, что пустые карты дают ноль.
func TestNetWorthEmpty(t *testing.T) {
	if got := NetWorth(map[string]float64{}, map[string]float64{}); got != 0 {
		t.Fatalf("expected 0, got %f", got)
	}

	if got := NetWorth(nil, nil); got != 0 {
		t.Fatalf("expected 0 for nil maps, got %f", got)
	}
}

// TestNetWorthNegative проверяет, что чистая стоимость может быть отрицательной.
func TestNetWorthNegative(t *testing.T) {
	assets := map[string]float64{"savings": 200000}
	liabilities := map[string]float64{"education_loan": 2500000, "car_loan": 300000}

	got := NetWorth(assets, liabilities)
	if got != -2600000 {
		t.Fatalf("expected -2600000, got %f", got)
	}
}

// TestNetWorthNonFinite проверяет нулевой результат при NaN или Inf во входе.
func TestNetWorthNonFinite(t *testing.T) {
	if got := NetWorth(map[string]float64{"a": math.NaN()}, nil); got != 0 {
		t.Fatalf("expected 0 for NaN asset, got %f", got)
	}

	if got := NetWorth(map[string]float64{"a": 100}, map[string]float64{"b": math.Inf(1)}); got != 0 {
		t.Fatalf("expected 0 for Inf liability, got %f", got)
	}
}

// TestComputeSavingsIdempotent проверяет идемпотентность чистых функций.
func TestComputeSavingsIdempotent(t *testing.T) {
	first := ComputeSavings(123456.78, 98765.43)
	second := ComputeSavings(123456.78, 98765.43)

	if first != second {
		t.Fatalf("expected identical results, got %+v and %+v", first, second)
	}
}
