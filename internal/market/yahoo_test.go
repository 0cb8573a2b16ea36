package market

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"example.com/finance-dashboard/backend/internal/config"
)

func chartBody(symbol string, price float64) string {
	return fmt.Sprintf(`{"chart":{"result":[{"meta":{"symbol":%q,"regularMarketPrice":%f,"regularMarketTime":1700000000}}],"error":null}}`, symbol, price)
}

// TestYahooQuote проверяет получение котировки и нормализацию тикера.
func TestYahooQuote(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v8/finance/chart/INFY" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		fmt.Fprint(w, chartBody("INFY", 1520.5))
	}))
	defer server.Close()

	provider := NewYahooProvider(config.MarketConfig{
		BaseURL:  server.URL,
		Timeout:  2 * time.Second,
		CacheTTL: time.Minute,
	})

	quote, err := provider.Quote(context.Background(), "  infy ")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if quote.Symbol != "INFY" {
		t.Fatalf("expected symbol INFY, got %s", quote.Symbol)
	}
	if quote.Price != 1520.5 {
		t.Fatalf("expected price 1520.5, got %f", quote.Price)
	}
}

// TestYahooQuoteCache проверяет, что повторный запрос в пределах TTL идет из кэша.
func TestYahooQuoteCache(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		fmt.Fprint(w, chartBody("TCS", 3900))
	}))
	defer server.Close()

	provider := NewYahooProvider(config.MarketConfig{
		BaseURL:  server.URL,
		Timeout:  2 * time.Second,
		CacheTTL: time.Minute,
	})

	for i := 0; i < 3; i++ {
		if _, err := provider.Quote(context.Background(), "TCS"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	}

	if calls.Load() != 1 {
		t.Fatalf("expected 1 upstream call, got %d", calls.Load())
	}
}

// TestYahooQuoteNotFound проверяет ошибку для пустого тикера и пустого результата.
func TestYahooQuoteNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"chart":{"result":[],"error":null}}`)
	}))
	defer server.Close()

	provider := NewYahooProvider(config.MarketConfig{
		BaseURL:  server.URL,
		Timeout:  2 * time.Second,
		CacheTTL: time.Minute,
	})

	if _, err := provider.Quote(context.Background(), ""); !errors.Is(err, ErrQuoteNotFound) {
		t.Fatalf("expected ErrQuoteNotFound for empty symbol, got %v", err)
	}

	if _, err := provider.Quote(context.Background(), "NOPE"); !errors.Is(err, ErrQuoteNotFound) {
		t.Fatalf("expected ErrQuoteNotFound for empty result, got %v", err)
	}
}
