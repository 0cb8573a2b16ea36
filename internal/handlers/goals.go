package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"example.com/finance-dashboard/backend/internal/auth"
	"example.com/finance-dashboard/backend/internal/finance"
	"example.com/finance-dashboard/backend/internal/models"
	"example.com/finance-dashboard/backend/internal/notifications"
	"example.com/finance-dashboard/backend/internal/repository"
)

type GoalHandler struct {
	Goals    *repository.GoalRepository
	Notifier *notifications.Hub
}

// NewGoalHandler создает обработчик накопительных целей.
func NewGoalHandler(goals *repository.GoalRepository, notifier *notifications.Hub) *GoalHandler {
	return &GoalHandler{Goals: goals, Notifier: notifier}
}

type GoalRequest struct {
	Name     string  `json:"name" validate:"required,max=100"`
	Target   float64 `json:"target" validate:"gt=0"`
	Deadline string  `json:"deadline" validate:"required"`
}

type DepositRequest struct {
	Amount float64 `json:"amount" validate:"gt=0"`
}

type GoalResponse struct {
	ID       uuid.UUID        `json:"id"`
	Name     string           `json:"name"`
	Target   float64          `json:"target"`
	Saved    float64          `json:"saved"`
	Deadline string           `json:"deadline"`
	Progress float64          `json:"progress"`
	Forecast finance.Forecast `json:"forecast"`
}

// Create создает накопительную цель.
func (h *GoalHandler) Create(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	var req GoalRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return badRequest(c, "name is required")
	}

	deadline, err := finance.ParseDate(strings.TrimSpace(req.Deadline))
	if err != nil {
		return badRequest(c, "invalid deadline format")
	}
	if !deadline.After(time.Now()) {
		return badRequest(c, "deadline must be in the future")
	}

	goal, err := h.Goals.Create(c.Request().Context(), userID, name, req.Target, deadline)
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return conflict(c, "goal with this name already exists")
		}
		return serverError(c)
	}

	if h.Notifier != nil {
		h.Notifier.Publish(userID, notifications.Event{
			Type: notifications.EventGoalCreated,
			Data: map[string]any{"goal_id": goal.ID.String(), "name": goal.Name},
		})
	}

	return c.JSON(http.StatusCreated, toGoalResponse(goal, time.Now()))
}

// List возвращает цели пользователя с прогрессом и прогнозом.
func (h *GoalHandler) List(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	goals, err := h.Goals.List(c.Request().Context(), userID)
	if err != nil {
		return serverError(c)
	}

	now := time.Now()
	response := make([]GoalResponse, 0, len(goals))
	for _, goal := range goals {
		response = append(response, toGoalResponse(goal, now))
	}

	return c.JSON(http.StatusOK, map[string][]GoalResponse{"goals": response})
}

// Deposit пополняет цель и поднимает накопленные сбережения бюджета.
func (h *GoalHandler) Deposit(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	goalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid goal id")
	}

	var req DepositRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err = c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	goal, err := h.Goals.Deposit(c.Request().Context(), userID, goalID, req.Amount)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "goal not found")
		}
		if errors.Is(err, repository.ErrInvalid) {
			return badRequest(c, "deposit amount must be positive")
		}
		return serverError(c)
	}

	publishGoalDeposit(h.Notifier, userID, goal.ID, req.Amount, goal.Saved, goal.Target)
	return c.JSON(http.StatusOK, toGoalResponse(goal, time.Now()))
}

// Forecast возвращает прогноз достижения цели.
func (h *GoalHandler) Forecast(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	goalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid goal id")
	}

	goal, err := h.Goals.GetByID(c.Request().Context(), userID, goalID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "goal not found")
		}
		return serverError(c)
	}

	forecast, err := finance.ForecastGoal(goal.Target, goal.Saved, goal.Deadline, time.Now())
	if err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusOK, forecast)
}

func toGoalResponse(goal models.Goal, now time.Time) GoalResponse {
	progress := 0.0
	if goal.Target > 0 {
		progress = goal.Saved / goal.Target * 100
		if progress > 100 {
			progress = 100
		}
	}

	forecast, _ := finance.ForecastGoal(goal.Target, goal.Saved, goal.Deadline, now)

	return GoalResponse{
		ID:       goal.ID,
		Name:     goal.Name,
		Target:   goal.Target,
		Saved:    goal.Saved,
		Deadline: goal.Deadline.Format(finance.DateLayout),
		Progress: progress,
		Forecast: forecast,
	}
}
