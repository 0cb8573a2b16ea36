package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

// TestTokenPairRoundTrip проверяет выпуск и разбор пары токенов.
func TestTokenPairRoundTrip(t *testing.T) {
	manager := NewTokenManager("test-secret", "finance-dashboard", 15*time.Minute, 24*time.Hour)
	userID := uuid.New()
	refreshID := uuid.New()

	pair, err := manager.NewTokenPair(userID, refreshID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	claims, err := manager.ParseAccessToken(pair.AccessToken)
	if err != nil {
		t.Fatalf("expected valid access token, got %v", err)
	}
	if claims.Subject != userID.String() {
		t.Fatalf("unexpected subject: %s", claims.Subject)
	}

	refreshClaims, err := manager.ParseRefreshToken(pair.RefreshToken)
	if err != nil {
		t.Fatalf("expected valid refresh token, got %v", err)
	}
	if refreshClaims.ID != refreshID.String() {
		t.Fatalf("unexpected refresh token id: %s", refreshClaims.ID)
	}
}

// TestTokenTypeMismatch проверяет отказ при подмене типа токена.
func TestTokenTypeMismatch(t *testing.T) {
	manager := NewTokenManager("test-secret", "finance-dashboard", 15*time.Minute, 24*time.Hour)

	pair, err := manager.NewTokenPair(uuid.New(), uuid.New())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if _, err := manager.ParseAccessToken(pair.RefreshToken); err == nil {
		t.Fatal("expected error for refresh token in access slot")
	}
	if _, err := manager.ParseRefreshToken(pair.AccessToken); err == nil {
		t.Fatal("expected error for access token in refresh slot")
	}
}

// TestCompareTokenHash проверяет сравнение хэша refresh-токена.
func TestCompareTokenHash(t *testing.T) {
	token := "opaque-refresh-token"
	hash := HashToken(token)

	if !CompareTokenHash(hash, token) {
		t.Fatal("expected hash to match token")
	}
	if CompareTokenHash(hash, "another-token") {
		t.Fatal("expected mismatch for different token")
	}
}
