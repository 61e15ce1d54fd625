package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/boarding-house-manager/internal/ledger"
)

// ListRooms handles GET /v1/rooms.  The optional ?filter= query narrows
// the list to "available" or "occupied" rooms.
func (h *LedgerHandler) ListRooms(c echo.Context) error {
	items := h.Ledger.Rooms(c.QueryParam("filter"))
	return c.JSON(http.StatusOK, map[string]any{"items": items})
}

// CreateRoom handles POST /v1/rooms and adds a new available room.
func (h *LedgerHandler) CreateRoom(c echo.Context) error {
	var body struct {
		Number *int `json:"number"`
	}
	if err := c.Bind(&body); err != nil || body.Number == nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "number is required"})
	}

	room, err := h.Ledger.AddRoom(c.Request().Context(), *body.Number)
	if err != nil {
		if errors.Is(err, ledger.ErrDuplicateRoom) {
			return c.JSON(http.StatusConflict, map[string]string{"error": "room number already exists"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not create room"})
	}
	return c.JSON(http.StatusCreated, room)
}

// RoomDetail handles GET /v1/rooms/:number and returns the view-mode
// snapshot: the room and its linked tenant, if any.
func (h *LedgerHandler) RoomDetail(c echo.Context) error {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid room number"})
	}

	room, tenant, err := h.Ledger.RoomDetail(c.Request().Context(), number)
	if err != nil {
		if errors.Is(err, ledger.ErrRoomNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not load room"})
	}
	return c.JSON(http.StatusOK, map[string]any{"room": room, "tenant": tenant})
}

// SaveRoom handles PUT /v1/rooms/:number: the editor's save transition.
// The body carries the draft fields; absent fields fall back to the
// current values.  quickAdd marks the "add tenant to available room"
// shortcut, which always stages the room as occupied and is rejected
// with a conflict on a room that already has a tenant.
func (h *LedgerHandler) SaveRoom(c echo.Context) error {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid room number"})
	}

	var body struct {
		Number      *int  `json:"number"`
		IsAvailable *bool `json:"isAvailable"`
		QuickAdd    bool  `json:"quickAdd"`
		Tenant      *struct {
			Name       *string  `json:"name"`
			RentAmount *float64 `json:"rentAmount"`
			DueDate    *string  `json:"dueDate"`
		} `json:"tenant"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	room, tenant, err := h.Ledger.RoomDetail(c.Request().Context(), number)
	if err != nil {
		if errors.Is(err, ledger.ErrRoomNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not load room"})
	}

	var session *ledger.EditSession
	if body.QuickAdd {
		session = ledger.NewQuickAddSession(room)
	} else {
		session = ledger.NewEditSession(room, tenant)
	}
	if body.Number != nil {
		session.SetNumber(*body.Number)
	}
	if body.IsAvailable != nil {
		session.SetAvailable(*body.IsAvailable)
	}
	if body.Tenant != nil {
		if body.Tenant.Name != nil {
			session.SetName(*body.Tenant.Name)
		}
		if body.Tenant.RentAmount != nil {
			session.SetRentAmount(*body.Tenant.RentAmount)
		}
		if body.Tenant.DueDate != nil {
			session.SetDueDate(*body.Tenant.DueDate)
		}
	}

	savedRoom, savedTenant, err := h.Ledger.SaveEdit(c.Request().Context(), session)
	if err != nil {
		var verr *ledger.ValidationError
		switch {
		case errors.As(err, &verr):
			return c.JSON(http.StatusUnprocessableEntity, map[string]any{"errors": verr.Fields})
		case errors.Is(err, ledger.ErrDuplicateRoom):
			return c.JSON(http.StatusConflict, map[string]string{"error": "room number already exists"})
		case errors.Is(err, ledger.ErrRoomOccupied):
			return c.JSON(http.StatusConflict, map[string]string{"error": "room is already occupied"})
		case errors.Is(err, ledger.ErrRoomNotFound):
			return c.JSON(http.StatusNotFound, map[string]string{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not save room"})
	}
	return c.JSON(http.StatusOK, map[string]any{"room": savedRoom, "tenant": savedTenant})
}
