// Package finance содержит чистые финансовые калькуляторы: бюджетные метрики,
// чистую стоимость, прогноз накоплений и кредитно-инвестиционные расчеты.
// Все функции детерминированы и не имеют побочных эффектов.
package finance

import "math"

type SavingsResult struct {
	Savings float64 `json:"savings"`
	Rate    float64 `json:"savings_rate"`
}

// ComputeSavings возвращает сбережения и норму сбережений в процентах от дохода.
// Отрицательные сбережения (расходы выше дохода) — допустимое состояние, не ошибка.
// При нулевом или отрицательном доходе норма сбережений равна нулю.
func ComputeSavings(income, expenses float64) SavingsResult {
	savings := income - expenses

	rate := 0.0
	if income > 0 {
		rate = savings / income * 100
	}

	return SavingsResult{Savings: savings, Rate: rate}
}

// NetWorth возвращает сумму активов минус сумму обязательств.
// Пустые карты дают 0. Нечисловое значение (NaN или Inf) в любой из карт
// приводит к нулевому результату вместо ошибки: вызывающий слой показывает
// нулевую чистую стоимость, а не падает.
func NetWorth(assets, liabilities map[string]float64) float64 {
	totalAssets, ok := sumFinite(assets)
	if !ok {
		return 0
	}

	totalLiabilities, ok := sumFinite(liabilities)
	if !ok {
		return 0
	}

	return totalAssets - totalLiabilities
}

func sumFinite(values map[string]float64) (float64, bool) {
	var total float64
	for _, value := range values {
		if !isFinite(value) {
			return 0, false
		}
		total += value
	}

	return total, true
}

func isFinite(value float64) bool {
	return !math.IsNaN(value) && !math.IsInf(value, 0)
}
