package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"example.com/finance-dashboard/backend/internal/auth"
	"example.com/finance-dashboard/backend/internal/finance"
	"example.com/finance-dashboard/backend/internal/market"
	"example.com/finance-dashboard/backend/internal/models"
	"example.com/finance-dashboard/backend/internal/notifications"
	"example.com/finance-dashboard/backend/internal/repository"
)

type InvestmentHandler struct {
	Investments *repository.InvestmentRepository
	Market      market.Provider
	Notifier    *notifications.Hub
}

// NewInvestmentHandler создает обработчик портфеля инвестиций.
func NewInvestmentHandler(investments *repository.InvestmentRepository, provider market.Provider, notifier *notifications.Hub) *InvestmentHandler {
	return &InvestmentHandler{Investments: investments, Market: provider, Notifier: notifier}
}

type InvestmentRequest struct {
	Type   string   `json:"type" validate:"required"`
	Name   string   `json:"name" validate:"required,max=200"`
	Amount float64  `json:"amount" validate:"gt=0"`
	Date   string   `json:"date" validate:"required"`
	Ticker *string  `json:"ticker" validate:"omitempty,max=20"`
	Units  *float64 `json:"units" validate:"omitempty,gt=0"`
	Notes  string   `json:"notes" validate:"omitempty,max=500"`
}

type UpdateValueRequest struct {
	CurrentValue float64 `json:"current_value" validate:"gte=0"`
}

type PortfolioSummaryResponse struct {
	TotalInvested  float64 `json:"total_invested"`
	CurrentValue   float64 `json:"current_value"`
	AbsoluteReturn float64 `json:"absolute_return"`
	ReturnPercent  float64 `json:"return_percent"`
}

type RefreshResponse struct {
	Investment models.Investment `json:"investment"`
	Quote      market.Quote      `json:"quote"`
}

// Create добавляет инвестицию в портфель.
func (h *InvestmentHandler) Create(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	var req InvestmentRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	investmentType := models.InvestmentType(strings.ToLower(strings.TrimSpace(req.Type)))
	if !models.ValidInvestmentType(investmentType) {
		return badRequest(c, "unknown investment type")
	}

	date, err := finance.ParseDate(strings.TrimSpace(req.Date))
	if err != nil {
		return badRequest(c, "invalid date format")
	}

	ticker := normalizeTicker(req.Ticker)
	if ticker != nil && !investmentType.SupportsTicker() {
		return badRequest(c, "ticker is only allowed for stocks and etf")
	}
	if ticker != nil && req.Units == nil {
		return badRequest(c, "units are required with a ticker")
	}

	investment := models.Investment{
		UserID: userID,
		Type:   investmentType,
		Name:   strings.TrimSpace(req.Name),
		Amount: req.Amount,
		Date:   date,
		Ticker: ticker,
		Units:  req.Units,
		Notes:  strings.TrimSpace(req.Notes),
	}

	created, err := h.Investments.Create(c.Request().Context(), investment)
	if err != nil {
		return serverError(c)
	}

	if h.Notifier != nil {
		h.Notifier.Publish(userID, notifications.Event{
			Type: notifications.EventInvestmentAdded,
			Data: map[string]any{"investment_id": created.ID.String(), "name": created.Name},
		})
	}

	return c.JSON(http.StatusCreated, created)
}

// List возвращает инвестиции пользователя.
func (h *InvestmentHandler) List(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	investments, err := h.Investments.List(c.Request().Context(), userID)
	if err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusOK, map[string][]models.Investment{"investments": investments})
}

// UpdateValue вручную обновляет текущую стоимость инвестиции.
func (h *InvestmentHandler) UpdateValue(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	investmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid investment id")
	}

	var req UpdateValueRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err = c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	investment, err := h.Investments.UpdateValue(c.Request().Context(), userID, investmentID, req.CurrentValue)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "investment not found")
		}
		if errors.Is(err, repository.ErrInvalid) {
			return badRequest(c, "current value must be non-negative")
		}
		return serverError(c)
	}

	publishInvestmentValued(h.Notifier, userID, investment.ID, investment.CurrentValue)
	return c.JSON(http.StatusOK, investment)
}

// Summary возвращает суммарные показатели портфеля.
func (h *InvestmentHandler) Summary(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	totals, err := h.Investments.Totals(c.Request().Context(), userID)
	if err != nil {
		return serverError(c)
	}

	summary := PortfolioSummaryResponse{
		TotalInvested:  totals.TotalInvested,
		CurrentValue:   totals.CurrentValue,
		AbsoluteReturn: totals.CurrentValue - totals.TotalInvested,
	}
	if totals.TotalInvested > 0 {
		summary.ReturnPercent = summary.AbsoluteReturn / totals.TotalInvested * 100
	}

	return c.JSON(http.StatusOK, summary)
}

// Refresh переоценивает инвестицию по рыночной котировке тикера.
func (h *InvestmentHandler) Refresh(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	investmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid investment id")
	}

	investment, err := h.Investments.GetByID(c.Request().Context(), userID, investmentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "investment not found")
		}
		return serverError(c)
	}

	if investment.Ticker == nil || investment.Units == nil {
		return badRequest(c, "investment has no ticker position")
	}

	quote, err := h.Market.Quote(c.Request().Context(), *investment.Ticker)
	if err != nil {
		if errors.Is(err, market.ErrQuoteNotFound) {
			return notFound(c, "quote not found for ticker")
		}
		return c.JSON(http.StatusBadGateway, map[string]string{"error": "market data unavailable"})
	}

	value := quote.Price * *investment.Units
	updated, err := h.Investments.UpdateValue(c.Request().Context(), userID, investmentID, value)
	if err != nil {
		return serverError(c)
	}

	publishInvestmentValued(h.Notifier, userID, updated.ID, updated.CurrentValue)
	return c.JSON(http.StatusOK, RefreshResponse{Investment: updated, Quote: quote})
}

func normalizeTicker(ticker *string) *string {
	if ticker == nil {
		return nil
	}

	trimmed := strings.ToUpper(strings.TrimSpace(*ticker))
	if trimmed == "" {
		return nil
	}

	return &trimmed
}
