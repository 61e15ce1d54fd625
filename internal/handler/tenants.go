package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/boarding-house-manager/internal/ledger"
	"github.com/iliyamo/boarding-house-manager/internal/model"
)

// ListTenants handles GET /v1/tenants.  The optional ?q= query filters
// by a substring of the tenant name or room number.
func (h *LedgerHandler) ListTenants(c echo.Context) error {
	items := h.Ledger.Tenants(c.Request().Context(), c.QueryParam("q"))
	return c.JSON(http.StatusOK, map[string]any{"items": items})
}

// UpdateTenant handles PUT /v1/tenants/:id and replaces a tenant's
// editable fields.  Status and recorded payments are not editable here.
func (h *LedgerHandler) UpdateTenant(c echo.Context) error {
	var body struct {
		Name       string  `json:"name"`
		RoomNumber int     `json:"roomNumber"`
		RentAmount float64 `json:"rentAmount"`
		DueDate    string  `json:"dueDate"`
		Mobile     string  `json:"mobile"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	updated, err := h.Ledger.UpdateTenant(c.Request().Context(), c.Param("id"), model.Tenant{
		Name:       body.Name,
		RoomNumber: body.RoomNumber,
		RentAmount: body.RentAmount,
		DueDate:    body.DueDate,
		Mobile:     body.Mobile,
	})
	if err != nil {
		var verr *ledger.ValidationError
		switch {
		case errors.As(err, &verr):
			return c.JSON(http.StatusUnprocessableEntity, map[string]any{"errors": verr.Fields})
		case errors.Is(err, ledger.ErrTenantNotFound):
			return c.JSON(http.StatusNotFound, map[string]string{"error": "tenant not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not update tenant"})
	}
	return c.JSON(http.StatusOK, updated)
}

// UpdateTenantStatus handles PATCH /v1/tenants/:id/status.  Marking a
// tenant Paid records this month's payment; marking Unpaid removes it.
func (h *LedgerHandler) UpdateTenantStatus(c echo.Context) error {
	var body struct {
		Status model.PaymentStatus `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	updated, err := h.Ledger.SetStatus(c.Request().Context(), c.Param("id"), body.Status)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrInvalidStatus):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "status must be Paid, Unpaid or Overdue"})
		case errors.Is(err, ledger.ErrTenantNotFound):
			return c.JSON(http.StatusNotFound, map[string]string{"error": "tenant not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not update status"})
	}
	return c.JSON(http.StatusOK, updated)
}
