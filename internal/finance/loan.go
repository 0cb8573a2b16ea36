package finance

import "math"

const monthsPerYear = 12

type EMIResult struct {
	EMI           float64 `json:"emi"`
	Months        int     `json:"months"`
	TotalInterest float64 `json:"total_interest"`
	TotalPayment  float64 `json:"total_payment"`
}

type AmortizationEntry struct {
	Month     int     `json:"month"`
	EMI       float64 `json:"emi"`
	Principal float64 `json:"principal_component"`
	Interest  float64 `json:"interest_component"`
	Balance   float64 `json:"remaining_balance"`
}

// SIPFutureValue возвращает будущую стоимость регулярных ежемесячных взносов
// по формуле аннуитета пренумерандо. Нулевая ставка дает просто сумму взносов.
func SIPFutureValue(monthly float64, years int, annualRatePct float64) (float64, error) {
	if !isFinite(monthly) || monthly <= 0 {
		return 0, &ValidationError{Field: "monthly", Reason: "must be positive"}
	}
	if err := validateTerm(years, annualRatePct); err != nil {
		return 0, err
	}

	months := years * monthsPerYear
	monthlyRate := annualRatePct / 100 / monthsPerYear

	if monthlyRate == 0 {
		return monthly * float64(months), nil
	}

	growth := math.Pow(1+monthlyRate, float64(months))
	return monthly * ((growth - 1) / monthlyRate) * (1 + monthlyRate), nil
}

// EMI возвращает аннуитетный платеж по кредиту вместе с общей переплатой.
// Нулевая ставка дает равными долями principal/months.
func EMI(principal, annualRatePct float64, tenureYears int) (EMIResult, error) {
	if !isFinite(principal) || principal <= 0 {
		return EMIResult{}, &ValidationError{Field: "principal", Reason: "must be positive"}
	}
	if err := validateTerm(tenureYears, annualRatePct); err != nil {
		return EMIResult{}, err
	}

	months := tenureYears * monthsPerYear
	monthlyRate := annualRatePct / 100 / monthsPerYear

	var emi float64
	if monthlyRate == 0 {
		emi = principal / float64(months)
	} else {
		growth := math.Pow(1+monthlyRate, float64(months))
		emi = principal * monthlyRate * growth / (growth - 1)
	}

	totalPayment := emi * float64(months)
	return EMIResult{
		EMI:           emi,
		Months:        months,
		TotalInterest: totalPayment - principal,
		TotalPayment:  totalPayment,
	}, nil
}

// AmortizationSchedule строит помесячный график погашения кредита: проценты
// начисляются на остаток, остальная часть платежа гасит тело долга. Остаток
// в последнем месяце прижимается к нулю. Длина графика равна числу месяцев.
func AmortizationSchedule(principal, annualRatePct float64, tenureYears int) ([]AmortizationEntry, error) {
	result, err := EMI(principal, annualRatePct, tenureYears)
	if err != nil {
		return nil, err
	}

	monthlyRate := annualRatePct / 100 / monthsPerYear
	balance := principal

	schedule := make([]AmortizationEntry, 0, result.Months)
	for month := 1; month <= result.Months; month++ {
		interest := balance * monthlyRate
		principalPart := result.EMI - interest

		balance -= principalPart
		if balance < 0 {
			balance = 0
		}

		schedule = append(schedule, AmortizationEntry{
			Month:     month,
			EMI:       result.EMI,
			Principal: principalPart,
			Interest:  interest,
			Balance:   balance,
		})
	}

	return schedule, nil
}

func validateTerm(years int, annualRatePct float64) error {
	if years <= 0 {
		return &ValidationError{Field: "years", Reason: "must be positive"}
	}
	if !isFinite(annualRatePct) || annualRatePct < 0 {
		return &ValidationError{Field: "rate", Reason: "must be non-negative"}
	}

	return nil
}
