package finance

import (
	"errors"
	"math"
	"testing"
)

// TestSIPFutureValue проверяет расчет будущей стоимости по аннуитету пренумерандо.
func TestSIPFutureValue(t *testing.T) {
	got, err := SIPFutureValue(5000, 10, 12)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if math.Abs(got-1161695) > 5 {
		t.Fatalf("expected ~1161695, got %f", got)
	}
}

// TestSIPFutureValueZeroRate проверяет частный случай нулевой ставки.
func TestSIPFutureValueZeroRate(t *testing.T) {
	got, err := SIPFutureValue(5000, 10, 0)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if got != 5000*120 {
		t.Fatalf("expected %f, got %f", 5000.0*120, got)
	}
}

// TestSIPFutureValueInvalid проверяет ошибки валидации входных данных.
func TestSIPFutureValueInvalid(t *testing.T) {
	cases := []struct {
		name    string
		monthly float64
		years   int
		rate    float64
	}{
		{"zero monthly", 0, 10, 12},
		{"negative monthly", -100, 10, 12},
		{"zero years", 5000, 0, 12},
		{"negative years", 5000, -1, 12},
		{"negative rate", 5000, 10, -1},
	}

	for _, tc := range cases {
		if _, err := SIPFutureValue(tc.monthly, tc.years, tc.rate); !errors.Is(err, ErrValidation) {
			t.Fatalf("%s: expected validation error, got %v", tc.name, err)
		}
	}
}

// TestEMI проверяет расчет аннуитетного платежа на эталонном примере.
func TestEMI(t *testing.T) {
	result, err := EMI(1000000, 10, 10)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if math.Abs(result.EMI-13215) > 1 {
		t.Fatalf("expected EMI ~13215, got %f", result.EMI)
	}
	if result.Months != 120 {
		t.Fatalf("expected 120 months, got %d", result.Months)
	}

	expectedTotal := result.EMI * 120
	if math.Abs(result.TotalPayment-expectedTotal) > 1e-6 {
		t.Fatalf("expected total payment %f, got %f", expectedTotal, result.TotalPayment)
	}
	if math.Abs(result.TotalInterest-(expectedTotal-1000000)) > 1e-6 {
		t.Fatalf("expected total interest %f, got %f", expectedTotal-1000000, result.TotalInterest)
	}
}

// TestEMIZeroRate проверяет равные доли при нулевой ставке.
func TestEMIZeroRate(t *testing.T) {
	result, err := EMI(120000, 0, 1)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if result.EMI != 10000 {
		t.Fatalf("expected EMI 10000, got %f", result.EMI)
	}
	if result.TotalInterest != 0 {
		t.Fatalf("expected zero interest, got %f", result.TotalInterest)
	}
}

// TestEMIInvalid проверяет отказ без молчаливого исправления входа.
func TestEMIInvalid(t *testing.T) {
	if _, err := EMI(0, 10, 10); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error for zero principal, got %v", err)
	}
	if _, err := EMI(1000000, -5, 10); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error for negative rate, got %v", err)
	}
	if _, err := EMI(1000000, 10, 0); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error for zero tenure, got %v", err)
	}
}

// TestAmortizationSchedule проверяет длину графика и нулевой остаток в конце.
func TestAmortizationSchedule(t *testing.T) {
	schedule, err := AmortizationSchedule(1000000, 10, 10)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(schedule) != 120 {
		t.Fatalf("expected 120 entries, got %d", len(schedule))
	}

	last := schedule[len(schedule)-1]
	if last.Balance > 1 {
		t.Fatalf("expected final balance near zero, got %f", last.Balance)
	}

	first := schedule[0]
	if first.Month != 1 {
		t.Fatalf("expected first month index 1, got %d", first.Month)
	}
	if math.Abs(first.Interest-1000000*10/100/12) > 1e-6 {
		t.Fatalf("unexpected first interest: %f", first.Interest)
	}
	if math.Abs(first.Principal+first.Interest-first.EMI) > 1e-6 {
		t.Fatalf("components do not sum to EMI: %f + %f != %f", first.Principal, first.Interest, first.EMI)
	}
}

// TestAmortizationScheduleDeterministic проверяет детерминированность графика.
func TestAmortizationScheduleDeterministic(t *testing.T) {
	first, err := AmortizationSchedule(500000, 8.5, 5)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	second, err := AmortizationSchedule(500000, 8.5, 5)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("expected equal length, got %d and %d", len(first), len(second))
	}

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("entry %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

// TestAmortizationScheduleZeroRate проверяет график при нулевой ставке.
func TestAmortizationScheduleZeroRate(t *testing.T) {
	schedule, err := AmortizationSchedule(120000, 0, 1)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(schedule) != 12 {
		t.Fatalf("expected 12 entries, got %d", len(schedule))
	}

	for _, entry := range schedule {
		if entry.Interest != 0 {
			t.Fatalf("expected zero interest at month %d, got %f", entry.Month, entry.Interest)
		}
	}

	if schedule[len(schedule)-1].Balance != 0 {
		t.Fatalf("expected zero final balance, got %f", schedule[len(schedule)-1].Balance)
	}
}
