package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"example.com/finance-dashboard/backend/internal/advisor"
	"example.com/finance-dashboard/backend/internal/auth"
	"example.com/finance-dashboard/backend/internal/finance"
	"example.com/finance-dashboard/backend/internal/repository"
)

type AdvisorHandler struct {
	Advisor *advisor.Service
	Budget  *repository.BudgetRepository
	Balance *repository.BalanceRepository
	Goals   *repository.GoalRepository
}

// NewAdvisorHandler создает обработчик финансового советника.
func NewAdvisorHandler(service *advisor.Service, budget *repository.BudgetRepository, balance *repository.BalanceRepository, goals *repository.GoalRepository) *AdvisorHandler {
	return &AdvisorHandler{
		Advisor: service,
		Budget:  budget,
		Balance: balance,
		Goals:   goals,
	}
}

type ChatRequest struct {
	Question string `json:"question" validate:"required,max=2000"`
}

// Chat отвечает на вопрос пользователя с учетом его финансового среза.
func (h *AdvisorHandler) Chat(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	snapshot, err := h.buildSnapshot(c.Request().Context(), userID)
	if err != nil {
		return serverError(c)
	}

	advice, err := h.Advisor.Advise(c.Request().Context(), req.Question, snapshot)
	if err != nil {
		return badRequest(c, "question is required")
	}

	return c.JSON(http.StatusOK, advice)
}

func (h *AdvisorHandler) buildSnapshot(ctx context.Context, userID uuid.UUID) (advisor.Snapshot, error) {
	budget, err := h.Budget.Get(ctx, userID)
	if err != nil {
		return advisor.Snapshot{}, err
	}

	entries, err := h.Balance.List(ctx, userID)
	if err != nil {
		return advisor.Snapshot{}, err
	}

	goals, err := h.Goals.List(ctx, userID)
	if err != nil {
		return advisor.Snapshot{}, err
	}

	savings := finance.ComputeSavings(budget.Income, budget.Expenses)
	sheet := toBalanceSheet(entries)

	briefs := make([]advisor.GoalBrief, 0, len(goals))
	for _, goal := range goals {
		briefs = append(briefs, advisor.GoalBrief{
			Name:     goal.Name,
			Target:   goal.Target,
			Saved:    goal.Saved,
			Deadline: goal.Deadline.Format(finance.DateLayout),
		})
	}

	return advisor.Snapshot{
		Income:      budget.Income,
		Expenses:    budget.Expenses,
		Savings:     savings.Savings,
		SavingsRate: savings.Rate,
		NetWorth:    sheet.NetWorth,
		Goals:       briefs,
	}, nil
}
