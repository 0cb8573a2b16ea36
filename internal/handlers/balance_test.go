package handlers

import (
	"testing"

	"example.com/finance-dashboard/backend/internal/models"
)

// TestToBalanceSheet проверяет разбиение строк и чистую стоимость.
func TestToBalanceSheet(t *testing.T) {
	entries := []models.BalanceEntry{
		{Side: models.BalanceSideAsset, Category: "cash", Amount: 50000},
		{Side: models.BalanceSideAsset, Category: "stocks", Amount: 150000},
		{Side: models.BalanceSideLiability, Category: "home_loan", Amount: 120000},
	}

	sheet := toBalanceSheet(entries)
	if len(sheet.Assets) != 2 {
		t.Fatalf("expected 2 assets, got %d", len(sheet.Assets))
	}
	if len(sheet.Liabilities) != 1 {
		t.Fatalf("expected 1 liability, got %d", len(sheet.Liabilities))
	}
	if sheet.NetWorth != 80000 {
		t.Fatalf("expected net worth 80000, got %f", sheet.NetWorth)
	}
}

// TestToBalanceSheetEmpty проверяет пустой отчет.
func TestToBalanceSheetEmpty(t *testing.T) {
	sheet := toBalanceSheet(nil)
	if sheet.NetWorth != 0 {
		t.Fatalf("expected zero net worth, got %f", sheet.NetWorth)
	}
	if sheet.Assets == nil || sheet.Liabilities == nil {
		t.Fatal("expected empty maps, not nil")
	}
}
