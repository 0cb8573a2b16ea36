package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/finance-dashboard/backend/internal/models"
)

type BalanceRepository struct {
	db *pgxpool.Pool
}

// NewBalanceRepository создает репозиторий балансового отчета.
func NewBalanceRepository(db *pgxpool.Pool) *BalanceRepository {
	return &BalanceRepository{db: db}
}

// Upsert добавляет строку баланса или обновляет сумму существующей категории.
func (r *BalanceRepository) Upsert(ctx context.Context, userID uuid.UUID, side models.BalanceSide, category string, amount float64) (models.BalanceEntry, error) {
	var entry models.BalanceEntry

	if category == "" || amount < 0 {
		return entry, ErrInvalid
	}

	err := r.db.QueryRow(ctx,
		`INSERT INTO balance_entries (id, user_id, side, category, amount)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (user_id, side, category) DO UPDATE
		 SET amount = $5,
		     updated_at = NOW()
		 RETURNING id, user_id, side, category, amount, created_at, updated_at`,
		uuid.New(), userID, side, category, amount,
	).Scan(&entry.ID, &entry.UserID, &entry.Side, &entry.Category, &entry.Amount, &entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		return entry, err
	}

	return entry, nil
}

// List возвращает все строки баланса пользователя.
func (r *BalanceRepository) List(ctx context.Context, userID uuid.UUID) ([]models.BalanceEntry, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, side, category, amount, created_at, updated_at
		 FROM balance_entries
		 WHERE user_id = $1
		 ORDER BY side, category`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]models.BalanceEntry, 0)
	for rows.Next() {
		var entry models.BalanceEntry
		err := rows.Scan(&entry.ID, &entry.UserID, &entry.Side, &entry.Category, &entry.Amount, &entry.CreatedAt, &entry.UpdatedAt)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
