package advisor

import "strings"

// FallbackAdvice возвращает детерминированный совет по теме вопроса.
// Используется, когда LLM недоступен или не настроен ключ API.
func FallbackAdvice(query string) string {
	normalized := strings.ToLower(query)

	switch {
	case strings.Contains(normalized, "invest"):
		return fallbackInvest
	case strings.Contains(normalized, "budget"):
		return fallbackBudget
	case strings.Contains(normalized, "tax"):
		return fallbackTax
	default:
		return fallbackGeneral
	}
}

const fallbackInvest = `**Investment Options**:

- **Equity Mutual Funds**: average returns 12-15% over 5+ years, best for long-term wealth creation.
- **Fixed Deposits**: current rates 6-7.5% for 1 year, best for risk-averse investors.
- **Direct Stocks**: potential 15%+ for quality stocks, best for experienced investors.
- **Gold ETFs**: ~12% over the last year, best for portfolio diversification.`

const fallbackBudget = `**Budgeting Strategies**:

1. **50/30/20 Rule** — 50% needs, 30% wants, 20% savings and debt repayment.
2. **Zero-Based Budgeting** — assign every unit of money a purpose, track expenses daily.
3. **Envelope System** — cash-based category envelopes that prevent overspending.
4. **Automated Savings** — set up SIPs and auto-transfers, pay yourself first.`

const fallbackTax = `**Tax Saving Options**:

**Section 80C (1.5L deduction)**: ELSS funds (3-year lock-in), PPF (15-year term), NPS (additional 50k under 80CCD), 5-year tax saver FDs.

**Health Insurance (Section 80D)**: self/family 25,000 deduction, senior parents additional 50,000.

**Home Loan Benefits**: principal repayment under 80C, interest deduction up to 2L under 24B.`

const fallbackGeneral = `**General Financial Advice**:

1. **Emergency Fund** — cover 6-12 months of expenses in liquid funds or FDs.
2. **Debt Management** — pay credit cards in full, target loans above 10% interest first.
3. **Investment Principles** — start early, invest regularly, diversify, rebalance annually.
4. **Retirement Planning** — target 25x annual expenses, use NPS for tax benefits.`
