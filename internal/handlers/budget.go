package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"example.com/finance-dashboard/backend/internal/auth"
	"example.com/finance-dashboard/backend/internal/finance"
	"example.com/finance-dashboard/backend/internal/models"
	"example.com/finance-dashboard/backend/internal/notifications"
	"example.com/finance-dashboard/backend/internal/repository"
)

type BudgetHandler struct {
	Budget   *repository.BudgetRepository
	Notifier *notifications.Hub
}

// NewBudgetHandler создает обработчик бюджета.
func NewBudgetHandler(budget *repository.BudgetRepository, notifier *notifications.Hub) *BudgetHandler {
	return &BudgetHandler{Budget: budget, Notifier: notifier}
}

type BudgetRequest struct {
	Income   float64 `json:"income" validate:"gte=0"`
	Expenses float64 `json:"expenses" validate:"gte=0"`
}

type BudgetResponse struct {
	Income         float64   `json:"income"`
	Expenses       float64   `json:"expenses"`
	MonthlySavings float64   `json:"monthly_savings"`
	SavingsRate    float64   `json:"savings_rate"`
	TotalSavings   float64   `json:"total_savings"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Get возвращает бюджетный снимок пользователя с расчетными метриками.
func (h *BudgetHandler) Get(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	snapshot, err := h.Budget.Get(c.Request().Context(), userID)
	if err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusOK, toBudgetResponse(snapshot))
}

// Update записывает новые доход и расходы и возвращает пересчитанные метрики.
func (h *BudgetHandler) Update(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	var req BudgetRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	snapshot, err := h.Budget.Update(c.Request().Context(), userID, req.Income, req.Expenses)
	if err != nil {
		return serverError(c)
	}

	response := toBudgetResponse(snapshot)
	publishBudgetUpdate(h.Notifier, userID, snapshot.Income, snapshot.Expenses, response.MonthlySavings)
	return c.JSON(http.StatusOK, response)
}

func toBudgetResponse(snapshot models.BudgetSnapshot) BudgetResponse {
	result := finance.ComputeSavings(snapshot.Income, snapshot.Expenses)

	return BudgetResponse{
		Income:         snapshot.Income,
		Expenses:       snapshot.Expenses,
		MonthlySavings: result.Savings,
		SavingsRate:    result.Rate,
		TotalSavings:   snapshot.Savings,
		UpdatedAt:      snapshot.UpdatedAt,
	}
}
