package handlers

import (
	"testing"

	"example.com/finance-dashboard/backend/internal/models"
)

// TestToBudgetResponse проверяет расчет метрик бюджета.
func TestToBudgetResponse(t *testing.T) {
	snapshot := models.BudgetSnapshot{Income: 100000, Expenses: 70000, Savings: 45000}

	response := toBudgetResponse(snapshot)
	if response.MonthlySavings != 30000 {
		t.Fatalf("expected monthly savings 30000, got %f", response.MonthlySavings)
	}
	if response.SavingsRate != 30 {
		t.Fatalf("expected savings rate 30, got %f", response.SavingsRate)
	}
	if response.TotalSavings != 45000 {
		t.Fatalf("expected total savings 45000, got %f", response.TotalSavings)
	}
}

// TestToBudgetResponseZeroIncome проверяет нулевую норму сбережений без дохода.
func TestToBudgetResponseZeroIncome(t *testing.T) {
	response := toBudgetResponse(models.BudgetSnapshot{Income: 0, Expenses: 5000})
	if response.SavingsRate != 0 {
		t.Fatalf("expected zero savings rate, got %f", response.SavingsRate)
	}
	if response.MonthlySavings != -5000 {
		t.Fatalf("expected monthly savings -5000, got %f", response.MonthlySavings)
	}
}
