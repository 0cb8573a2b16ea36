package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/finance-dashboard/backend/internal/models"
)

type InvestmentRepository struct {
	db *pgxpool.Pool
}

type PortfolioTotals struct {
	TotalInvested float64
	CurrentValue  float64
}

// NewInvestmentRepository создает репозиторий инвестиций.
func NewInvestmentRepository(db *pgxpool.Pool) *InvestmentRepository {
	return &InvestmentRepository{db: db}
}

// Create добавляет инвестицию. Текущая стоимость при создании равна вложенной сумме.
func (r *InvestmentRepository) Create(ctx context.Context, investment models.Investment) (models.Investment, error) {
	var created models.Investment

	err := r.db.QueryRow(ctx,
		`INSERT INTO investments (id, user_id, type, name, amount, date, current_value, ticker, units, notes)
		 VALUES ($1, $2, $3, $4, $5, $6, $5, $7, $8, $9)
		 RETURNING id, user_id, type, name, amount, date, current_value, ticker, units, notes, created_at, updated_at`,
		uuid.New(), investment.UserID, investment.Type, investment.Name,
		investment.Amount, investment.Date, investment.Ticker, investment.Units, investment.Notes,
	).Scan(&created.ID, &created.UserID, &created.Type, &created.Name, &created.Amount,
		&created.Date, &created.CurrentValue, &created.Ticker, &created.Units, &created.Notes,
		&created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return created, err
	}

	return created, nil
}

// List возвращает инвестиции пользователя в порядке создания.
func (r *InvestmentRepository) List(ctx context.Context, userID uuid.UUID) ([]models.Investment, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, type, name, amount, date, current_value, ticker, units, notes, created_at, updated_at
		 FROM investments
		 WHERE user_id = $1
		 ORDER BY created_at`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	investments := make([]models.Investment, 0)
	for rows.Next() {
		var investment models.Investment
		err := rows.Scan(&investment.ID, &investment.UserID, &investment.Type, &investment.Name,
			&investment.Amount, &investment.Date, &investment.CurrentValue, &investment.Ticker,
			&investment.Units, &investment.Notes, &investment.CreatedAt, &investment.UpdatedAt)
		if err != nil {
			return nil, err
		}
		investments = append(investments, investment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return investments, nil
}

// GetByID возвращает инвестицию пользователя.
func (r *InvestmentRepository) GetByID(ctx context.Context, userID, investmentID uuid.UUID) (models.Investment, error) {
	var investment models.Investment

	err := r.db.QueryRow(ctx,
		`SELECT id, user_id, type, name, amount, date, current_value, ticker, units, notes, created_at, updated_at
		 FROM investments
		 WHERE id = $1 AND user_id = $2`,
		investmentID, userID,
	).Scan(&investment.ID, &investment.UserID, &investment.Type, &investment.Name,
		&investment.Amount, &investment.Date, &investment.CurrentValue, &investment.Ticker,
		&investment.Units, &investment.Notes, &investment.CreatedAt, &investment.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return investment, ErrNotFound
		}
		return investment, err
	}

	return investment, nil
}

// UpdateValue обновляет текущую стоимость инвестиции. Вложенная сумма неизменна.
func (r *InvestmentRepository) UpdateValue(ctx context.Context, userID, investmentID uuid.UUID, value float64) (models.Investment, error) {
	var investment models.Investment

	if value < 0 {
		return investment, ErrInvalid
	}

	err := r.db.QueryRow(ctx,
		`UPDATE investments
		 SET current_value = $3,
		     updated_at = NOW()
		 WHERE id = $1 AND user_id = $2
		 RETURNING id, user_id, type, name, amount, date, current_value, ticker, units, notes, created_at, updated_at`,
		investmentID, userID, value,
	).Scan(&investment.ID, &investment.UserID, &investment.Type, &investment.Name,
		&investment.Amount, &investment.Date, &investment.CurrentValue, &investment.Ticker,
		&investment.Units, &investment.Notes, &investment.CreatedAt, &investment.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return investment, ErrNotFound
		}
		return investment, err
	}

	return investment, nil
}

// Totals возвращает суммарные вложения и текущую стоимость портфеля.
func (r *InvestmentRepository) Totals(ctx context.Context, userID uuid.UUID) (PortfolioTotals, error) {
	var totals PortfolioTotals

	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0), COALESCE(SUM(current_value), 0)
		 FROM investments
		 WHERE user_id = $1`,
		userID,
	).Scan(&totals.TotalInvested, &totals.CurrentValue)
	if err != nil {
		return totals, err
	}

	return totals, nil
}
