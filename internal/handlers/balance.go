package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"example.com/finance-dashboard/backend/internal/auth"
	"example.com/finance-dashboard/backend/internal/finance"
	"example.com/finance-dashboard/backend/internal/models"
	"example.com/finance-dashboard/backend/internal/repository"
)

type BalanceHandler struct {
	Balance *repository.BalanceRepository
}

// NewBalanceHandler создает обработчик балансового отчета.
func NewBalanceHandler(balance *repository.BalanceRepository) *BalanceHandler {
	return &BalanceHandler{Balance: balance}
}

type BalanceEntryRequest struct {
	Side     string  `json:"side" validate:"required,oneof=asset liability"`
	Category string  `json:"category" validate:"required,max=100"`
	Amount   float64 `json:"amount" validate:"gte=0"`
}

type BalanceSheetResponse struct {
	Assets      map[string]float64 `json:"assets"`
	Liabilities map[string]float64 `json:"liabilities"`
	NetWorth    float64            `json:"net_worth"`
}

// Get возвращает активы, обязательства и чистую стоимость пользователя.
func (h *BalanceHandler) Get(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	entries, err := h.Balance.List(c.Request().Context(), userID)
	if err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusOK, toBalanceSheet(entries))
}

// Upsert добавляет или обновляет строку баланса и возвращает обновленный отчет.
func (h *BalanceHandler) Upsert(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	var req BalanceEntryRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	category := strings.TrimSpace(req.Category)
	side := models.BalanceSide(req.Side)

	if _, err := h.Balance.Upsert(c.Request().Context(), userID, side, category, req.Amount); err != nil {
		if errors.Is(err, repository.ErrInvalid) {
			return badRequest(c, "invalid balance entry")
		}
		return serverError(c)
	}

	entries, err := h.Balance.List(c.Request().Context(), userID)
	if err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusOK, toBalanceSheet(entries))
}

func toBalanceSheet(entries []models.BalanceEntry) BalanceSheetResponse {
	assets := make(map[string]float64)
	liabilities := make(map[string]float64)

	for _, entry := range entries {
		switch entry.Side {
		case models.BalanceSideAsset:
			assets[entry.Category] = entry.Amount
		case models.BalanceSideLiability:
			liabilities[entry.Category] = entry.Amount
		}
	}

	return BalanceSheetResponse{
		Assets:      assets,
		Liabilities: liabilities,
		NetWorth:    finance.NetWorth(assets, liabilities),
	}
}
