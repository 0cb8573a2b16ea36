package handlers

import "testing"

// TestParseFloatParam проверяет разбор числовых query-параметров.
func TestParseFloatParam(t *testing.T) {
	value, err := parseFloatParam("1000000")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if value != 1000000 {
		t.Fatalf("expected 1000000, got %f", value)
	}

	if _, err := parseFloatParam("not-a-number"); err == nil {
		t.Fatal("expected error for invalid value")
	}
	if _, err := parseFloatParam(""); err == nil {
		t.Fatal("expected error for empty value")
	}
}

// TestFormatFloat проверяет денежный формат с двумя знаками.
func TestFormatFloat(t *testing.T) {
	if got := formatFloat(13215.0736); got != "13215.07" {
		t.Fatalf("expected 13215.07, got %s", got)
	}
	if got := formatFloat(0); got != "0.00" {
		t.Fatalf("expected 0.00, got %s", got)
	}
}
