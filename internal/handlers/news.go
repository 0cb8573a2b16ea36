package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"example.com/finance-dashboard/backend/internal/news"
)

type NewsHandler struct {
	News *news.Service
}

// NewNewsHandler создает обработчик новостной ленты.
func NewNewsHandler(service *news.Service) *NewsHandler {
	return &NewsHandler{News: service}
}

// List возвращает финансовые заголовки с оценкой тональности.
func (h *NewsHandler) List(c echo.Context) error {
	items := h.News.Headlines(c.Request().Context())
	return c.JSON(http.StatusOK, map[string][]news.Item{"news": items})
}
