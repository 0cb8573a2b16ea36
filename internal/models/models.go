package models

import (
	"time"

	"github.com/google/uuid"
)

type InvestmentType string

type BalanceSide string

const (
	InvestmentTypeFixedDeposit InvestmentType = "fixed_deposit"
	InvestmentTypeMutualFund   InvestmentType = "mutual_fund"
	InvestmentTypeStocks       InvestmentType = "stocks"
	InvestmentTypeETF          InvestmentType = "etf"
	InvestmentTypePPF          InvestmentType = "ppf"
	InvestmentTypeNPS          InvestmentType = "nps"
	InvestmentTypeGold         InvestmentType = "gold"
	InvestmentTypeRealEstate   InvestmentType = "real_estate"
	InvestmentTypeOther        InvestmentType = "other"

	BalanceSideAsset     BalanceSide = "asset"
	BalanceSideLiability BalanceSide = "liability"
)

// ValidInvestmentType проверяет, что тип инвестиции входит в поддерживаемый набор.
func ValidInvestmentType(value InvestmentType) bool {
	switch value {
	case InvestmentTypeFixedDeposit, InvestmentTypeMutualFund, InvestmentTypeStocks,
		InvestmentTypeETF, InvestmentTypePPF, InvestmentTypeNPS,
		InvestmentTypeGold, InvestmentTypeRealEstate, InvestmentTypeOther:
		return true
	}
	return false
}

// SupportsTicker сообщает, допускает ли тип инвестиции биржевой тикер.
func (t InvestmentType) SupportsTicker() bool {
	return t == InvestmentTypeStocks || t == InvestmentTypeETF
}

type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         *string   `json:"name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type RefreshToken struct {
	ID         uuid.UUID  `json:"id"`
	UserID     uuid.UUID  `json:"user_id"`
	TokenHash  string     `json:"-"`
	ExpiresAt  time.Time  `json:"expires_at"`
	CreatedAt  time.Time  `json:"created_at"`
	RevokedAt  *time.Time `json:"revoked_at,omitempty"`
	ReplacedBy *uuid.UUID `json:"replaced_by,omitempty"`
}

// BudgetSnapshot хранит текущие доход, расходы и накопленные сбережения пользователя.
type BudgetSnapshot struct {
	UserID    uuid.UUID `json:"user_id"`
	Income    float64   `json:"income"`
	Expenses  float64   `json:"expenses"`
	Savings   float64   `json:"savings"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BalanceEntry — строка балансового отчета: актив или обязательство.
type BalanceEntry struct {
	ID        uuid.UUID   `json:"id"`
	UserID    uuid.UUID   `json:"user_id"`
	Side      BalanceSide `json:"side"`
	Category  string      `json:"category"`
	Amount    float64     `json:"amount"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// Goal — накопительная цель. Saved растет только депозитами и не уменьшается.
type Goal struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	Target    float64   `json:"target"`
	Saved     float64   `json:"saved"`
	Deadline  time.Time `json:"deadline"`
	CreatedAt time.Time `json:"created_at"`
}

// Investment — инвестиция пользователя. Amount неизменяем после создания,
// CurrentValue обновляется вручную или по рыночной котировке. Для биржевых
// типов Ticker и Units задают позицию: переоценка дает units * цена.
type Investment struct {
	ID           uuid.UUID      `json:"id"`
	UserID       uuid.UUID      `json:"user_id"`
	Type         InvestmentType `json:"type"`
	Name         string         `json:"name"`
	Amount       float64        `json:"amount"`
	Date         time.Time      `json:"date"`
	CurrentValue float64        `json:"current_value"`
	Ticker       *string        `json:"ticker,omitempty"`
	Units        *float64       `json:"units,omitempty"`
	Notes        string         `json:"notes,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}
