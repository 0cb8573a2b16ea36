package market

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"example.com/finance-dashboard/backend/internal/config"
)

type cachedQuote struct {
	quote   Quote
	fetched time.Time
}

// YahooProvider получает котировки из Yahoo Finance v8 chart API с TTL-кэшем.
type YahooProvider struct {
	baseURL string
	ttl     time.Duration
	client  *retryablehttp.Client

	mu    sync.RWMutex
	cache map[string]cachedQuote
}

// NewYahooProvider создает провайдер котировок Yahoo Finance.
func NewYahooProvider(cfg config.MarketConfig) *YahooProvider {
	client := retryablehttp.NewClient()
	client.RetryMax = 3
	client.Logger = nil
	client.HTTPClient.Timeout = cfg.Timeout

	return &YahooProvider{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		ttl:     cfg.CacheTTL,
		client:  client,
		cache:   make(map[string]cachedQuote),
	}
}

// Quote возвращает последнюю котировку по тикеру, используя кэш в пределах TTL.
func (p *YahooProvider) Quote(ctx context.Context, symbol string) (Quote, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return Quote{}, ErrQuoteNotFound
	}

	p.mu.RLock()
	cached, ok := p.cache[symbol]
	p.mu.RUnlock()
	if ok && time.Since(cached.fetched) < p.ttl {
		return cached.quote, nil
	}

	quote, err := p.fetch(ctx, symbol)
	if err != nil {
		return Quote{}, err
	}

	p.mu.Lock()
	p.cache[symbol] = cachedQuote{quote: quote, fetched: time.Now()}
	p.mu.Unlock()

	return quote, nil
}

func (p *YahooProvider) fetch(ctx context.Context, symbol string) (Quote, error) {
	endpoint := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&range=1d", p.baseURL, symbol)
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Quote{}, err
	}
	req.Header.Set("User-Agent", "finance-dashboard/1.0")

	response, err := p.client.Do(req)
	if err != nil {
		return Quote{}, err
	}
	defer response.Body.Close()

	if response.StatusCode == http.StatusNotFound {
		return Quote{}, ErrQuoteNotFound
	}
	if response.StatusCode != http.StatusOK {
		return Quote{}, fmt.Errorf("yahoo chart api status %d", response.StatusCode)
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return Quote{}, err
	}

	var raw struct {
		Chart struct {
			Result []struct {
				Meta struct {
					Symbol             string  `json:"symbol"`
					RegularMarketPrice float64 `json:"regularMarketPrice"`
					RegularMarketTime  int64   `json:"regularMarketTime"`
				} `json:"meta"`
			} `json:"result"`
			Error *struct {
				Description string `json:"description"`
			} `json:"error"`
		} `json:"chart"`
	}

	if err := json.Unmarshal(body, &raw); err != nil {
		return Quote{}, err
	}

	if raw.Chart.Error != nil {
		return Quote{}, fmt.Errorf("yahoo chart api: %s", raw.Chart.Error.Description)
	}
	if len(raw.Chart.Result) == 0 {
		return Quote{}, ErrQuoteNotFound
	}

	meta := raw.Chart.Result[0].Meta
	if meta.RegularMarketPrice <= 0 {
		return Quote{}, ErrQuoteNotFound
	}

	asOf := time.Now()
	if meta.RegularMarketTime > 0 {
		asOf = time.Unix(meta.RegularMarketTime, 0)
	}

	return Quote{Symbol: symbol, Price: meta.RegularMarketPrice, AsOf: asOf}, nil
}
