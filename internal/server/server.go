package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"example.com/finance-dashboard/backend/internal/advisor"
	"example.com/finance-dashboard/backend/internal/auth"
	"example.com/finance-dashboard/backend/internal/config"
	"example.com/finance-dashboard/backend/internal/handlers"
	"example.com/finance-dashboard/backend/internal/market"
	"example.com/finance-dashboard/backend/internal/news"
	"example.com/finance-dashboard/backend/internal/notifications"
	"example.com/finance-dashboard/backend/internal/repository"
)

// New собирает HTTP-сервер Echo с роутами и зависимостями.
func New(cfg config.Config, logger *slog.Logger, db *pgxpool.Pool, newsService *news.Service) *echo.Echo {
	if logger == nil {
		logger = slog.Default()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewValidator()

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(requestLogger(logger))

	tokenManager := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL, cfg.Auth.RefreshTokenTTL)
	userRepo := repository.NewUserRepository(db)
	tokenRepo := repository.NewRefreshTokenRepository(db)
	budgetRepo := repository.NewBudgetRepository(db)
	balanceRepo := repository.NewBalanceRepository(db)
	goalRepo := repository.NewGoalRepository(db)
	investmentRepo := repository.NewInvestmentRepository(db)
	notificationHub := notifications.NewHub()

	var advisorClient advisor.Client
	if cfg.AI.APIKey != "" {
		switch strings.ToLower(cfg.AI.Provider) {
		case "gemini":
			advisorClient = advisor.NewGeminiClient(cfg.AI.APIKey, cfg.AI.BaseURL, cfg.AI.Model, cfg.AI.Timeout, cfg.AI.MaxOutputTokens)
		default:
			advisorClient = advisor.NewGroqClient(cfg.AI.APIKey, cfg.AI.BaseURL, cfg.AI.Model, cfg.AI.Timeout, cfg.AI.MaxOutputTokens)
		}
	}
	advisorService := advisor.NewService(advisorClient)
	marketProvider := market.NewYahooProvider(cfg.Market)

	authHandler := handlers.NewAuthHandler(userRepo, tokenRepo, tokenManager)
	budgetHandler := handlers.NewBudgetHandler(budgetRepo, notificationHub)
	balanceHandler := handlers.NewBalanceHandler(balanceRepo)
	goalHandler := handlers.NewGoalHandler(goalRepo, notificationHub)
	investmentHandler := handlers.NewInvestmentHandler(investmentRepo, marketProvider, notificationHub)
	calculatorHandler := handlers.NewCalculatorHandler()
	newsHandler := handlers.NewNewsHandler(newsService)
	advisorHandler := handlers.NewAdvisorHandler(advisorService, budgetRepo, balanceRepo, goalRepo)
	notificationHandler := handlers.NewNotificationHandler(notificationHub)

	registerRoutes(
		e,
		authHandler,
		budgetHandler,
		balanceHandler,
		goalHandler,
		investmentHandler,
		calculatorHandler,
		newsHandler,
		advisorHandler,
		notificationHandler,
		auth.JWTMiddleware(tokenManager),
		authRateLimiter(cfg.Auth),
		aiRateLimiter(cfg.AI),
	)

	return e
}

// NewHTTPServer создает net/http сервер с заданными таймаутами.
func NewHTTPServer(cfg config.ServerConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogMethod:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.String("remote_ip", v.RemoteIP),
				slog.Duration("latency", v.Latency),
			}

			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}

			msg := "request completed"
			if v.Status >= http.StatusInternalServerError {
				logger.LogAttrs(c.Request().Context(), slog.LevelError, msg, attrs...)
				return nil
			}

			logger.LogAttrs(c.Request().Context(), slog.LevelInfo, msg, attrs...)
			return nil
		},
	})
}

func authRateLimiter(cfg config.AuthConfig) echo.MiddlewareFunc {
	limit := rate.Limit(float64(cfg.RateLimitPerMinute) / 60.0)
	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      limit,
		Burst:     cfg.RateLimitBurst,
		ExpiresIn: time.Minute,
	})

	return middleware.RateLimiter(store)
}

func aiRateLimiter(cfg config.AIConfig) echo.MiddlewareFunc {
	limit := rate.Limit(float64(cfg.RateLimitPerMinute) / 60.0)
	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      limit,
		Burst:     cfg.RateLimitBurst,
		ExpiresIn: time.Minute,
	})

	return middleware.RateLimiter(store)
}
