package finance

import "time"

// DateLayout задает формат дат на границе API.
const DateLayout = "2006-01-02"

const daysPerMonth = 30

type Forecast struct {
	MonthsLeft            int     `json:"months_left"`
	RequiredMonthly       float64 `json:"required_monthly"`
	CompletionProbability float64 `json:"completion_probability"`
}

// ForecastGoal рассчитывает требуемый ежемесячный взнос и эвристическую оценку
// достижимости цели. Оценка — линейная экстраполяция текущего прогресса на
// оставшиеся месяцы с потолком 100, а не статистическая вероятность.
// Дедлайн в прошлом дает один оставшийся месяц, а не ошибку. Отрицательный
// RequiredMonthly означает, что цель уже достигнута или перевыполнена.
func ForecastGoal(target, saved float64, deadline, now time.Time) (Forecast, error) {
	if !isFinite(target) || target <= 0 {
		return Forecast{}, &ValidationError{Field: "target", Reason: "must be positive"}
	}
	if !isFinite(saved) || saved < 0 {
		return Forecast{}, &ValidationError{Field: "saved", Reason: "must be non-negative"}
	}

	days := deadline.Sub(now).Hours() / 24
	monthsLeft := int(days) / daysPerMonth
	if monthsLeft < 1 {
		monthsLeft = 1
	}

	progress := saved / target * 100
	probability := progress + (100-progress)/float64(monthsLeft)
	if probability > 100 {
		probability = 100
	}

	return Forecast{
		MonthsLeft:            monthsLeft,
		RequiredMonthly:       (target - saved) / float64(monthsLeft),
		CompletionProbability: probability,
	}, nil
}

// ForecastGoalISO разбирает дедлайн из строки YYYY-MM-DD и считает прогноз.
func ForecastGoalISO(target, saved float64, deadline string, now time.Time) (Forecast, error) {
	deadlineDate, err := ParseDate(deadline)
	if err != nil {
		return Forecast{}, err
	}

	return ForecastGoal(target, saved, deadlineDate, now)
}

// ParseDate разбирает дату в формате YYYY-MM-DD.
func ParseDate(value string) (time.Time, error) {
	parsed, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, &ParseError{Value: value, Err: err}
	}

	return parsed, nil
}
