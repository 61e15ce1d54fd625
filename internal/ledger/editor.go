package ledger

import (
	"strings"

	"github.com/iliyamo/boarding-house-manager/internal/dateutil"
	"github.com/iliyamo/boarding-house-manager/internal/model"
)

// EditSession is the draft state for editing one room and its linked
// tenant.  Draft fields are optional; reading a field resolves with the
// precedence draft value, then the existing entity's value, then a
// computed default (today for a new tenant's due date).
//
// A session entered through the quick-add shortcut has no prior view
// state: cancelling it dismisses the dialog entirely instead of
// returning to the detail view.
type EditSession struct {
	room     model.Room
	tenant   *model.Tenant
	quickAdd bool
	today    dateutil.Date

	number      *int
	isAvailable *bool
	name        *string
	rentAmount  *float64
	dueDate     *string
}

// NewEditSession starts an edit over an existing room and its linked
// tenant (nil when the room is vacant).
func NewEditSession(room model.Room, tenant *model.Tenant) *EditSession {
	return &EditSession{room: room, tenant: tenant, today: dateutil.Today()}
}

// NewQuickAddSession starts the "add tenant" shortcut on an available
// room: the draft is pre-seeded as occupied with an empty tenant.
func NewQuickAddSession(room model.Room) *EditSession {
	s := &EditSession{room: room, quickAdd: true, today: dateutil.Today()}
	occupied := false
	emptyName := ""
	zeroRent := 0.0
	due := s.today.String()
	s.isAvailable = &occupied
	s.name = &emptyName
	s.rentAmount = &zeroRent
	s.dueDate = &due
	return s
}

// SetNumber stages a new room number.
func (s *EditSession) SetNumber(n int) { s.number = &n }

// SetAvailable stages the room's availability flag.
func (s *EditSession) SetAvailable(v bool) { s.isAvailable = &v }

// SetName stages the tenant's name.
func (s *EditSession) SetName(name string) { s.name = &name }

// SetRentAmount stages the tenant's rent amount.
func (s *EditSession) SetRentAmount(amount float64) { s.rentAmount = &amount }

// SetDueDate stages the tenant's due date.
func (s *EditSession) SetDueDate(d string) { s.dueDate = &d }

// Number resolves the effective room number.
func (s *EditSession) Number() int {
	if s.number != nil {
		return *s.number
	}
	return s.room.Number
}

// Available resolves the effective availability flag.
func (s *EditSession) Available() bool {
	if s.isAvailable != nil {
		return *s.isAvailable
	}
	return s.room.IsAvailable
}

// Name resolves the effective tenant name.
func (s *EditSession) Name() string {
	if s.name != nil {
		return *s.name
	}
	if s.tenant != nil {
		return s.tenant.Name
	}
	return ""
}

// RentAmount resolves the effective rent amount.
func (s *EditSession) RentAmount() float64 {
	if s.rentAmount != nil {
		return *s.rentAmount
	}
	if s.tenant != nil {
		return s.tenant.RentAmount
	}
	return 0
}

// DueDate resolves the effective due date, defaulting to today for a
// tenant that does not exist yet.
func (s *EditSession) DueDate() string {
	if s.dueDate != nil {
		return *s.dueDate
	}
	if s.tenant != nil {
		return s.tenant.DueDate
	}
	return s.today.String()
}

// QuickAdd reports whether the session was entered via the quick-add
// shortcut.
func (s *EditSession) QuickAdd() bool { return s.quickAdd }

// Cancel discards all draft values and reports whether the dialog should
// be dismissed entirely (quick-add) rather than returning to view mode.
func (s *EditSession) Cancel() bool {
	s.number = nil
	s.isAvailable = nil
	s.name = nil
	s.rentAmount = nil
	s.dueDate = nil
	return s.quickAdd
}

// validate applies the editor's save rules against the current tenant
// and room collections.  It returns ErrRoomOccupied when the quick-add
// shortcut targets a room that already has a tenant, a field-keyed
// ValidationError when occupying a room without a linked tenant and the
// draft tenant is incomplete, or ErrDuplicateRoom when the staged number
// collides with a different existing room.  No mutation happens on
// error.
func (s *EditSession) validate(rooms []model.Room) error {
	if s.quickAdd && !s.room.IsAvailable {
		return ErrRoomOccupied
	}
	if !s.Available() && s.tenant == nil {
		errs := map[string]string{}
		if strings.TrimSpace(s.Name()) == "" {
			errs["name"] = "tenant name is required"
		}
		if s.RentAmount() <= 0 {
			errs["rentAmount"] = "rent amount must be greater than 0"
		}
		if s.DueDate() == "" {
			errs["dueDate"] = "due date is required"
		}
		if len(errs) > 0 {
			return &ValidationError{Fields: errs}
		}
	}
	if s.Number() != s.room.Number {
		for _, r := range rooms {
			if r.Number == s.Number() {
				return ErrDuplicateRoom
			}
		}
	}
	return nil
}
