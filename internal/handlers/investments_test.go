package handlers

import "testing"

// TestNormalizeTicker проверяет нормализацию тикера.
func TestNormalizeTicker(t *testing.T) {
	value := "  infy "
	normalized := normalizeTicker(&value)
	if normalized == nil || *normalized != "INFY" {
		t.Fatalf("expected INFY, got %v", normalized)
	}

	empty := "   "
	if normalizeTicker(&empty) != nil {
		t.Fatal("expected nil for blank ticker")
	}

	if normalizeTicker(nil) != nil {
		t.Fatal("expected nil for nil ticker")
	}
}
