package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/finance-dashboard/backend/internal/models"
)

type GoalRepository struct {
	db *pgxpool.Pool
}

// NewGoalRepository создает репозиторий накопительных целей.
func NewGoalRepository(db *pgxpool.Pool) *GoalRepository {
	return &GoalRepository{db: db}
}

// Create добавляет цель. Имя цели уникально в рамках пользователя.
func (r *GoalRepository) Create(ctx context.Context, userID uuid.UUID, name string, target float64, deadline time.Time) (models.Goal, error) {
	var goal models.Goal

	err := r.db.QueryRow(ctx,
		`INSERT INTO goals (id, user_id, name, target, saved, deadline)
		 VALUES ($1, $2, $3, $4, 0, $5)
		 RETURNING id, user_id, name, target, saved, deadline, created_at`,
		uuid.New(), userID, name, target, deadline,
	).Scan(&goal.ID, &goal.UserID, &goal.Name, &goal.Target, &goal.Saved, &goal.Deadline, &goal.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return goal, ErrConflict
		}
		return goal, err
	}

	return goal, nil
}

// List возвращает цели пользователя в порядке создания.
func (r *GoalRepository) List(ctx context.Context, userID uuid.UUID) ([]models.Goal, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, name, target, saved, deadline, created_at
		 FROM goals
		 WHERE user_id = $1
		 ORDER BY created_at`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	goals := make([]models.Goal, 0)
	for rows.Next() {
		var goal models.Goal
		err := rows.Scan(&goal.ID, &goal.UserID, &goal.Name, &goal.Target, &goal.Saved, &goal.Deadline, &goal.CreatedAt)
		if err != nil {
			return nil, err
		}
		goals = append(goals, goal)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return goals, nil
}

// GetByID возвращает цель пользователя.
func (r *GoalRepository) GetByID(ctx context.Context, userID, goalID uuid.UUID) (models.Goal, error) {
	var goal models.Goal

	err := r.db.QueryRow(ctx,
		`SELECT id, user_id, name, target, saved, deadline, created_at
		 FROM goals
		 WHERE id = $1 AND user_id = $2`,
		goalID, userID,
	).Scan(&goal.ID, &goal.UserID, &goal.Name, &goal.Target, &goal.Saved, &goal.Deadline, &goal.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return goal, ErrNotFound
		}
		return goal, err
	}

	return goal, nil
}

// Deposit увеличивает накопленное по цели и общие сбережения пользователя.
// Сумма депозита строго положительна: накопления никогда не уменьшаются.
func (r *GoalRepository) Deposit(ctx context.Context, userID, goalID uuid.UUID, amount float64) (models.Goal, error) {
	var goal models.Goal

	if amount <= 0 {
		return goal, ErrInvalid
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return goal, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	err = tx.QueryRow(ctx,
		`SELECT id FROM goals
		 WHERE id = $1 AND user_id = $2
		 FOR UPDATE`,
		goalID, userID,
	).Scan(&goal.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return goal, ErrNotFound
		}
		return goal, err
	}

	err = tx.QueryRow(ctx,
		`UPDATE goals
		 SET saved = saved + $2
		 WHERE id = $1
		 RETURNING id, user_id, name, target, saved, deadline, created_at`,
		goalID, amount,
	).Scan(&goal.ID, &goal.UserID, &goal.Name, &goal.Target, &goal.Saved, &goal.Deadline, &goal.CreatedAt)
	if err != nil {
		return goal, err
	}

	_, err = tx.Exec(ctx,
		`UPDATE budget_snapshots
		 SET savings = savings + $2,
		     updated_at = NOW()
		 WHERE user_id = $1`,
		userID, amount,
	)
	if err != nil {
		return goal, err
	}

	if err := tx.Commit(ctx); err != nil {
		return goal, err
	}

	return goal, nil
}
