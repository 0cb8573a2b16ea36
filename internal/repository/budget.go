package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/finance-dashboard/backend/internal/models"
)

// Стартовые значения бюджета для нового пользователя.
const (
	defaultIncome   = 100000.0
	defaultExpenses = 70000.0
	defaultSavings  = 30000.0
)

type BudgetRepository struct {
	db *pgxpool.Pool
}

// NewBudgetRepository создает репозиторий бюджетных снимков.
func NewBudgetRepository(db *pgxpool.Pool) *BudgetRepository {
	return &BudgetRepository{db: db}
}

// Get возвращает бюджетный снимок пользователя, при первом обращении
// заполняя его значениями по умолчанию.
func (r *BudgetRepository) Get(ctx context.Context, userID uuid.UUID) (models.BudgetSnapshot, error) {
	var snapshot models.BudgetSnapshot

	_, err := r.db.Exec(ctx,
		`INSERT INTO budget_snapshots (user_id, income, expenses, savings)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (user_id) DO NOTHING`,
		userID, defaultIncome, defaultExpenses, defaultSavings,
	)
	if err != nil {
		return snapshot, err
	}

	err = r.db.QueryRow(ctx,
		`SELECT user_id, income, expenses, savings, updated_at
		 FROM budget_snapshots
		 WHERE user_id = $1`,
		userID,
	).Scan(&snapshot.UserID, &snapshot.Income, &snapshot.Expenses, &snapshot.Savings, &snapshot.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return snapshot, ErrNotFound
		}
		return snapshot, err
	}

	return snapshot, nil
}

// Update записывает новые доход и расходы пользователя.
func (r *BudgetRepository) Update(ctx context.Context, userID uuid.UUID, income, expenses float64) (models.BudgetSnapshot, error) {
	var snapshot models.BudgetSnapshot

	err := r.db.QueryRow(ctx,
		`INSERT INTO budget_snapshots (user_id, income, expenses, savings)
		 VALUES ($1, $2, $3, 0)
		 ON CONFLICT (user_id) DO UPDATE
		 SET income = $2,
		     expenses = $3,
		     updated_at = NOW()
		 RETURNING user_id, income, expenses, savings, updated_at`,
		userID, income, expenses,
	).Scan(&snapshot.UserID, &snapshot.Income, &snapshot.Expenses, &snapshot.Savings, &snapshot.UpdatedAt)
	if err != nil {
		return snapshot, err
	}

	return snapshot, nil
}
