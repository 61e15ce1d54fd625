package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/boarding-house-manager/internal/ledger"
)

// maxImportBytes caps the import payload size.
const maxImportBytes = 4 << 20

// Import handles POST /v1/import?format=csv|json.  The request body is
// the raw file content.  Parsing is all-or-nothing: any malformed record
// rejects the whole batch with a descriptive error and no mutation.
func (h *LedgerHandler) Import(c echo.Context) error {
	format := c.QueryParam("format")
	if format != "csv" && format != "json" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "format must be csv or json"})
	}

	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxImportBytes))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "failed to read the file"})
	}

	var candidates []ledger.Candidate
	if format == "csv" {
		candidates, err = ledger.ParseCSV(string(body))
	} else {
		candidates, err = ledger.ParseJSON(body)
	}
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	added, skipped := h.Ledger.Import(c.Request().Context(), candidates)
	return c.JSON(http.StatusOK, map[string]int{"added": added, "skipped": skipped})
}

// Reset handles POST /v1/reset.  It is destructive, so the body must
// carry an explicit confirmation flag.
func (h *LedgerHandler) Reset(c echo.Context) error {
	var body struct {
		Confirm bool `json:"confirm"`
	}
	if err := c.Bind(&body); err != nil || !body.Confirm {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "reset requires confirm: true"})
	}

	h.Ledger.Reset(c.Request().Context())
	return c.NoContent(http.StatusNoContent)
}
