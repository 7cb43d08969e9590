package handler

import (
	"errors"
	"net/http"
	"strings"

	"stockprices/internal/stock"

	"github.com/gin-gonic/gin"
)

// GetStockPrice serves GET /stockPrice?ticker=AAPL&startingFrom=2021-01-01.
// Errors keep the documented plain-text bodies: a missing series is a 404
// naming the query, anything else upstream is a bare 500.
func (h *Handler) GetStockPrice(c *gin.Context) {
	ticker := c.Query("ticker")
	startingFrom := c.Query("startingFrom")

	if strings.TrimSpace(ticker) == "" {
		c.String(http.StatusBadRequest, "missing ticker query param")
		return
	}

	resp, err := h.stocks.Query(c.Request.Context(), ticker, startingFrom)
	switch {
	case errors.Is(err, stock.ErrNoData):
		c.String(http.StatusNotFound, "No data received for ticker %s and startingFrom %s", ticker, startingFrom)
	case err != nil:
		c.String(http.StatusInternalServerError, "Internal Server Error")
	default:
		c.JSON(http.StatusOK, resp)
	}
}
