package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/boarding-house-manager/internal/dateutil"
)

// Dashboard handles GET /v1/dashboard and returns the headline stats,
// the monthly due-vs-collected series and the overdue alert count.  The
// optional ?month=YYYY-MM query selects the reporting month; it defaults
// to the current one.
func (h *LedgerHandler) Dashboard(c echo.Context) error {
	today := dateutil.Today()
	year, month := today.Year(), today.Month()
	if m := c.QueryParam("month"); m != "" {
		var err error
		year, month, err = dateutil.ParseMonth(m)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "month must be in YYYY-MM format"})
		}
	}

	stats, series, overdue := h.Ledger.Dashboard(c.Request().Context(), year, month)
	return c.JSON(http.StatusOK, map[string]any{
		"stats":          stats,
		"monthly":        series,
		"overdueTenants": overdue,
	})
}
