package handler

import (
	"context"

	"stockprices/internal/stock"

	"github.com/gin-gonic/gin"
)

// StockQuerier answers one stock query.
type StockQuerier interface {
	Query(ctx context.Context, ticker, startingFrom string) (stock.Response, error)
}

type Handler struct {
	stocks StockQuerier
}

func New(stocks StockQuerier) *Handler {
	return &Handler{stocks: stocks}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.Health)
	r.GET("/stockPrice", h.GetStockPrice)
}
