package news

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"example.com/finance-dashboard/backend/internal/config"
)

const sampleRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Test Feed</title>
    <item>
      <title>Stock market rally lifts banking shares</title>
      <link>https://example.com/rally</link>
      <pubDate>Mon, 24 Aug 2026 10:00:00 +0530</pubDate>
    </item>
    <item>
      <title>Local cricket team wins championship</title>
      <link>https://example.com/cricket</link>
      <pubDate>Mon, 24 Aug 2026 11:00:00 +0530</pubDate>
    </item>
    <item>
      <title>Rupee falls against dollar on inflation fears</title>
      <link>https://example.com/rupee</link>
      <pubDate>Tue, 25 Aug 2026 09:00:00 +0530</pubDate>
    </item>
  </channel>
</rss>`

// TestParseFeed проверяет разбор RSS и фильтрацию по финансовым словам.
func TestParseFeed(t *testing.T) {
	items, err := parseFeed("Test Feed", []byte(sampleRSS))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(items) != 2 {
		t.Fatalf("expected 2 finance items, got %d", len(items))
	}

	for _, item := range items {
		if item.Source != "Test Feed" {
			t.Fatalf("unexpected source: %s", item.Source)
		}
		if item.Published.IsZero() {
			t.Fatalf("expected parsed pubDate for %q", item.Title)
		}
	}
}

// TestParseFeedInvalid проверяет ошибку на некорректном XML.
func TestParseFeedInvalid(t *testing.T) {
	if _, err := parseFeed("Broken", []byte("<rss><channel>")); err == nil {
		t.Fatal("expected error for malformed xml")
	}
}

// TestAnalyzeSentiment проверяет оценку тональности по ключевым словам.
func TestAnalyzeSentiment(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Markets rally to record high", SentimentPositive},
		{"Shares crash as recession fears grow", SentimentNegative},
		{"RBI keeps repo rate unchanged", SentimentNeutral},
		{"Stocks rise after earlier fall", SentimentNeutral},
	}

	for _, tc := range cases {
		if got := analyzeSentiment(tc.title); got != tc.want {
			t.Fatalf("%q: expected %s, got %s", tc.title, tc.want, got)
		}
	}
}

// TestSortAndDedupe проверяет удаление дубликатов и сортировку по дате.
func TestSortAndDedupe(t *testing.T) {
	older := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)

	items := []Item{
		{Title: "A", Published: older},
		{Title: "B", Published: newer},
		{Title: "A", Published: newer},
		{Title: "C", Published: older.Add(time.Hour)},
	}

	got := sortAndDedupe(items, 2)
	if len(got) != 2 {
		t.Fatalf("expected 2 items, got %d", len(got))
	}
	if got[0].Title != "B" {
		t.Fatalf("expected newest first, got %s", got[0].Title)
	}
}

// TestHeadlinesFallback проверяет запасной набор при недоступных источниках.
func TestHeadlinesFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	service := NewService(config.NewsConfig{
		Feeds:    []string{server.URL + "/feed.rss"},
		Timeout:  time.Second,
		CacheTTL: time.Minute,
		MaxItems: 15,
	}, nil)
	service.client.RetryMax = 0

	items := service.Headlines(context.Background())
	if len(items) < minLiveItems {
		t.Fatalf("expected sample headlines, got %d items", len(items))
	}
	if items[0].Source != "Economic Times" {
		t.Fatalf("expected sample data, got source %s", items[0].Source)
	}
}

// TestHeadlinesCache проверяет, что повторный вызов в пределах TTL не ходит в сеть.
func TestHeadlinesCache(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	service := NewService(config.NewsConfig{
		Feeds:    []string{server.URL + "/feed.rss"},
		Timeout:  time.Second,
		CacheTTL: time.Minute,
		MaxItems: 15,
	}, nil)
	service.client.RetryMax = 0

	service.Headlines(context.Background())
	first := calls.Load()

	service.Headlines(context.Background())
	if calls.Load() != first {
		t.Fatalf("expected cached result, upstream calls went from %d to %d", first, calls.Load())
	}
}

// TestFeedName проверяет вывод имени источника из URL ленты.
func TestFeedName(t *testing.T) {
	if got := feedName("https://www.moneycontrol.com/rss/latestnews.xml"); got != "moneycontrol.com" {
		t.Fatalf("unexpected feed name: %s", got)
	}
}
