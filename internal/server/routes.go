package server

import (
	"github.com/labstack/echo/v4"

	"example.com/finance-dashboard/backend/internal/handlers"
)

func registerRoutes(
	e *echo.Echo,
	authHandler *handlers.AuthHandler,
	budgetHandler *handlers.BudgetHandler,
	balanceHandler *handlers.BalanceHandler,
	goalHandler *handlers.GoalHandler,
	investmentHandler *handlers.InvestmentHandler,
	calculatorHandler *handlers.CalculatorHandler,
	newsHandler *handlers.NewsHandler,
	advisorHandler *handlers.AdvisorHandler,
	notificationHandler *handlers.NotificationHandler,
	authMiddleware echo.MiddlewareFunc,
	authRateLimiter echo.MiddlewareFunc,
	aiRateLimiter echo.MiddlewareFunc,
) {
	e.GET("/health", handlers.Health)

	api := e.Group("/api/v1")
	authGroup := api.Group("/auth", authRateLimiter)

	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)
	authGroup.POST("/refresh", authHandler.Refresh)
	authGroup.POST("/logout", authHandler.Logout)
	authGroup.GET("/me", authHandler.Me, authMiddleware)

	budget := api.Group("/budget", authMiddleware)
	budget.GET("", budgetHandler.Get)
	budget.PUT("", budgetHandler.Update)

	balance := api.Group("/balance-sheet", authMiddleware)
	balance.GET("", balanceHandler.Get)
	balance.PUT("", balanceHandler.Upsert)

	goals := api.Group("/goals", authMiddleware)
	goals.GET("", goalHandler.List)
	goals.POST("", goalHandler.Create)
	goals.POST("/:id/deposit", goalHandler.Deposit)
	goals.GET("/:id/forecast", goalHandler.Forecast)

	investments := api.Group("/investments", authMiddleware)
	investments.GET("", investmentHandler.List)
	investments.POST("", investmentHandler.Create)
	investments.GET("/summary", investmentHandler.Summary)
	investments.PATCH("/:id/value", investmentHandler.UpdateValue)
	investments.POST("/:id/refresh", investmentHandler.Refresh)

	calculators := api.Group("/calculators", authMiddleware)
	calculators.POST("/sip", calculatorHandler.SIP)
	calculators.POST("/emi", calculatorHandler.EMI)
	calculators.POST("/amortization", calculatorHandler.Amortization)
	calculators.GET("/amortization/csv", calculatorHandler.AmortizationCSV)

	api.GET("/news", newsHandler.List)

	advisorGroup := api.Group("/advisor", authMiddleware, aiRateLimiter)
	advisorGroup.POST("/chat", advisorHandler.Chat)

	notifications := api.Group("/notifications", authMiddleware)
	notifications.GET("/stream", notificationHandler.Stream)
}
