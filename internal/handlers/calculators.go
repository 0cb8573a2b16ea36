package handlers

import (
	"bytes"
	"encoding/csv"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"example.com/finance-dashboard/backend/internal/finance"
)

type CalculatorHandler struct{}

// NewCalculatorHandler создает обработчик финансовых калькуляторов.
func NewCalculatorHandler() *CalculatorHandler {
	return &CalculatorHandler{}
}

type SIPRequest struct {
	Monthly    float64 `json:"monthly" validate:"gt=0"`
	Years      int     `json:"years" validate:"gt=0"`
	AnnualRate float64 `json:"annual_rate" validate:"gte=0"`
}

type SIPResponse struct {
	FutureValue   float64 `json:"future_value"`
	TotalInvested float64 `json:"total_invested"`
	TotalGain     float64 `json:"total_gain"`
}

type LoanRequest struct {
	Principal  float64 `json:"principal" validate:"gt=0"`
	AnnualRate float64 `json:"annual_rate" validate:"gte=0"`
	Years      int     `json:"years" validate:"gt=0"`
}

type AmortizationResponse struct {
	Summary  finance.EMIResult           `json:"summary"`
	Schedule []finance.AmortizationEntry `json:"schedule"`
}

// SIP считает будущую стоимость регулярных инвестиций.
func (h *CalculatorHandler) SIP(c echo.Context) error {
	var req SIPRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	futureValue, err := finance.SIPFutureValue(req.Monthly, req.Years, req.AnnualRate)
	if err != nil {
		return calculatorError(c, err)
	}

	invested := req.Monthly * float64(req.Years) * 12
	return c.JSON(http.StatusOK, SIPResponse{
		FutureValue:   futureValue,
		TotalInvested: invested,
		TotalGain:     futureValue - invested,
	})
}

// EMI считает ежемесячный платеж по кредиту.
func (h *CalculatorHandler) EMI(c echo.Context) error {
	var req LoanRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	result, err := finance.EMI(req.Principal, req.AnnualRate, req.Years)
	if err != nil {
		return calculatorError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

// Amortization возвращает помесячный график погашения кредита.
func (h *CalculatorHandler) Amortization(c echo.Context) error {
	var req LoanRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	summary, err := finance.EMI(req.Principal, req.AnnualRate, req.Years)
	if err != nil {
		return calculatorError(c, err)
	}

	schedule, err := finance.AmortizationSchedule(req.Principal, req.AnnualRate, req.Years)
	if err != nil {
		return calculatorError(c, err)
	}

	return c.JSON(http.StatusOK, AmortizationResponse{Summary: summary, Schedule: schedule})
}

// AmortizationCSV выгружает график погашения в CSV-файл.
// Параметры передаются в query: principal, annual_rate, years.
func (h *CalculatorHandler) AmortizationCSV(c echo.Context) error {
	principal, err := parseFloatParam(c.QueryParam("principal"))
	if err != nil {
		return badRequest(c, "invalid principal")
	}

	annualRate, err := parseFloatParam(c.QueryParam("annual_rate"))
	if err != nil {
		return badRequest(c, "invalid annual_rate")
	}

	years, err := strconv.Atoi(c.QueryParam("years"))
	if err != nil {
		return badRequest(c, "invalid years")
	}

	schedule, err := finance.AmortizationSchedule(principal, annualRate, years)
	if err != nil {
		return calculatorError(c, err)
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	header := []string{"month", "emi", "principal", "interest", "balance"}
	if err := writer.Write(header); err != nil {
		return serverError(c)
	}

	for _, entry := range schedule {
		record := []string{
			strconv.Itoa(entry.Month),
			formatFloat(entry.EMI),
			formatFloat(entry.Principal),
			formatFloat(entry.Interest),
			formatFloat(entry.Balance),
		}
		if err := writer.Write(record); err != nil {
			return serverError(c)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return serverError(c)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename=\"amortization.csv\"")
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func calculatorError(c echo.Context, err error) error {
	var validationErr *finance.ValidationError
	if errors.As(err, &validationErr) {
		return badRequest(c, validationErr.Error())
	}
	return serverError(c)
}

func parseFloatParam(value string) (float64, error) {
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, err
	}
	return parsed, nil
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', 2, 64)
}
