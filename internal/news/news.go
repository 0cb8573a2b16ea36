// Package news собирает финансовые заголовки из RSS-лент с кэшированием
// и запасным набором новостей на случай недоступности источников.
package news

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"example.com/finance-dashboard/backend/internal/config"
)

// minLiveItems — минимум живых заголовков, ниже которого отдаются запасные.
const minLiveItems = 5

type Item struct {
	Source    string    `json:"source"`
	Title     string    `json:"title"`
	Sentiment string    `json:"sentiment"`
	Link      string    `json:"link"`
	Published time.Time `json:"published,omitempty"`
}

type Feed struct {
	Name string
	URL  string
}

// Источники по умолчанию.
var defaultFeeds = []Feed{
	{Name: "Economic Times", URL: "https://economictimes.indiatimes.com/rssfeedstopstories.cms"},
	{Name: "Moneycontrol", URL: "https://www.moneycontrol.com/rss/latestnews.xml"},
	{Name: "Business Standard", URL: "https://www.business-standard.com/rss/latest.rss"},
	{Name: "Reuters Business", URL: "https://www.reutersagency.com/feed/?best-topics=business-financial&post_type=best"},
	{Name: "Bloomberg Quint", URL: "https://www.bloombergquint.com/feeds/markets.rss"},
}

type Service struct {
	feeds    []Feed
	client   *retryablehttp.Client
	ttl      time.Duration
	maxItems int
	logger   *slog.Logger

	mu        sync.RWMutex
	cached    []Item
	fetchedAt time.Time
}

// NewService создает сервис новостной ленты.
func NewService(cfg config.NewsConfig, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}

	feeds := defaultFeeds
	if len(cfg.Feeds) > 0 {
		feeds = make([]Feed, 0, len(cfg.Feeds))
		for _, feedURL := range cfg.Feeds {
			feeds = append(feeds, Feed{Name: feedName(feedURL), URL: feedURL})
		}
	}

	client := retryablehttp.NewClient()
	client.RetryMax = 2
	client.Logger = nil
	client.HTTPClient.Timeout = cfg.Timeout

	return &Service{
		feeds:    feeds,
		client:   client,
		ttl:      cfg.CacheTTL,
		maxItems: cfg.MaxItems,
		logger:   logger,
	}
}

// Headlines возвращает финансовые заголовки, используя кэш в пределах TTL.
// При сбое источников или слишком малом числе живых заголовков отдается
// статический запасной набор.
func (s *Service) Headlines(ctx context.Context) []Item {
	s.mu.RLock()
	if s.cached != nil && time.Since(s.fetchedAt) < s.ttl {
		cached := s.cached
		s.mu.RUnlock()
		return cached
	}
	s.mu.RUnlock()

	return s.Refresh(ctx)
}

// Refresh принудительно обновляет кэш заголовков.
func (s *Service) Refresh(ctx context.Context) []Item {
	items := s.fetchAll(ctx)
	if len(items) < minLiveItems {
		items = sampleHeadlines()
	}

	s.mu.Lock()
	s.cached = items
	s.fetchedAt = time.Now()
	s.mu.Unlock()

	return items
}

func (s *Service) fetchAll(ctx context.Context) []Item {
	items := make([]Item, 0)
	for _, feed := range s.feeds {
		feedItems, err := s.fetchFeed(ctx, feed)
		if err != nil {
			s.logger.Warn("news feed fetch failed",
				slog.String("feed", feed.Name),
				slog.String("error", err.Error()),
			)
			continue
		}
		items = append(items, feedItems...)
	}

	return sortAndDedupe(items, s.maxItems)
}

func (s *Service) fetchFeed(ctx context.Context, feed Feed) ([]Item, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, feed.URL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "finance-dashboard/1.0")

	response, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, &statusError{code: response.StatusCode}
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}

	return parseFeed(feed.Name, body)
}

// sortAndDedupe удаляет дубликаты заголовков, сортирует по дате публикации
// по убыванию и ограничивает число элементов.
func sortAndDedupe(items []Item, limit int) []Item {
	seen := make(map[string]struct{}, len(items))
	unique := make([]Item, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.Title]; ok {
			continue
		}
		seen[item.Title] = struct{}{}
		unique = append(unique, item)
	}

	sort.SliceStable(unique, func(i, j int) bool {
		return unique[i].Published.After(unique[j].Published)
	})

	if limit > 0 && len(unique) > limit {
		unique = unique[:limit]
	}

	return unique
}

func feedName(feedURL string) string {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(feedURL, "https://"), "http://")
	if idx := strings.IndexByte(trimmed, '/'); idx > 0 {
		trimmed = trimmed[:idx]
	}
	return strings.TrimPrefix(trimmed, "www.")
}

type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return http.StatusText(e.code)
}
