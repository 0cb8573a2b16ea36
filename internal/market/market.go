// Package market получает биржевые котировки для переоценки инвестиций.
package market

import (
	"context"
	"errors"
	"time"
)

var ErrQuoteNotFound = errors.New("quote not found")

type Quote struct {
	Symbol string    `json:"symbol"`
	Price  float64   `json:"price"`
	AsOf   time.Time `json:"as_of"`
}

// Provider возвращает последнюю котировку по тикеру.
type Provider interface {
	Quote(ctx context.Context, symbol string) (Quote, error)
}
