// Package ledger owns the tenant and room collections and every rule
// that mutates them: overdue derivation, dashboard aggregation, bulk
// import reconciliation and the room/tenant edit workflow.  State is
// replaced wholesale on every mutation and written back to the blob
// store fire-and-forget; the in-memory copy stays authoritative for the
// session if the store misbehaves.
package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/boarding-house-manager/internal/dateutil"
	"github.com/iliyamo/boarding-house-manager/internal/model"
	"github.com/iliyamo/boarding-house-manager/internal/queue"
	"github.com/iliyamo/boarding-house-manager/internal/store"
)

// Notifier receives an event after every successful mutation.  Delivery
// is best effort and must never block a mutation on failure.
type Notifier func(event queue.LedgerEvent)

// Ledger is the single owner of the domain state.
type Ledger struct {
	mu     sync.Mutex
	store  store.Store
	notify Notifier
	today  func() dateutil.Date

	tenants []model.Tenant
	rooms   []model.Room
}

// New returns a Ledger persisting through st.  notify may be nil.
func New(st store.Store, notify Notifier) *Ledger {
	return &Ledger{store: st, notify: notify, today: dateutil.Today}
}

// Load reads both collections from the store.  Absent or unreadable
// blobs seed empty collections; the overdue derivation runs immediately
// and any promotion is written back.
func (l *Ledger) Load(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.tenants = loadBlob[model.Tenant](ctx, l.store, store.KeyTenants)
	l.rooms = loadBlob[model.Room](ctx, l.store, store.KeyRooms)
	if l.deriveLocked() {
		l.persistLocked(ctx)
	}
}

func loadBlob[T any](ctx context.Context, st store.Store, key string) []T {
	b, err := st.Get(ctx, key)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	if err != nil {
		log.Printf("store: read %q failed, starting empty: %v", key, err)
		return nil
	}
	var out []T
	if err := json.Unmarshal(b, &out); err != nil {
		log.Printf("store: blob %q is corrupt, starting empty: %v", key, err)
		return nil
	}
	return out
}

// Tenants returns the derived tenant collection, optionally filtered by
// a case-insensitive substring of the name or the room number.
func (l *Ledger) Tenants(ctx context.Context, q string) []model.Tenant {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.settleLocked(ctx)

	q = strings.ToLower(strings.TrimSpace(q))
	out := make([]model.Tenant, 0, len(l.tenants))
	for _, t := range l.tenants {
		if q == "" ||
			strings.Contains(strings.ToLower(t.Name), q) ||
			strings.Contains(strconv.Itoa(t.RoomNumber), q) {
			out = append(out, t)
		}
	}
	return out
}

// Rooms returns the room collection.  filter is "available", "occupied"
// or anything else for all rooms.
func (l *Ledger) Rooms(filter string) []model.Room {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]model.Room, 0, len(l.rooms))
	for _, r := range l.rooms {
		switch filter {
		case "available":
			if !r.IsAvailable {
				continue
			}
		case "occupied":
			if r.IsAvailable {
				continue
			}
		}
		out = append(out, r)
	}
	return out
}

// RoomDetail returns one room and its linked tenant, nil when vacant.
func (l *Ledger) RoomDetail(ctx context.Context, number int) (model.Room, *model.Tenant, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.settleLocked(ctx)
	return l.roomDetailLocked(number)
}

func (l *Ledger) roomDetailLocked(number int) (model.Room, *model.Tenant, error) {
	for _, r := range l.rooms {
		if r.Number != number {
			continue
		}
		if r.TenantID == "" {
			return r, nil, nil
		}
		for _, t := range l.tenants {
			if t.ID == r.TenantID {
				cp := t
				return r, &cp, nil
			}
		}
		return r, nil, nil
	}
	return model.Room{}, nil, ErrRoomNotFound
}

// Dashboard returns the stats, monthly series and overdue count for the
// selected reporting month.
func (l *Ledger) Dashboard(ctx context.Context, year int, month time.Month) (model.DashboardStats, []model.MonthlyData, int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.settleLocked(ctx)

	stats := Snapshot(l.tenants, l.rooms, l.today(), year, month)
	return stats, MonthlySeries(l.tenants), OverdueCount(l.tenants)
}

// SetStatus changes a tenant's payment status.  Marking Paid records a
// payment for the current month unless one already exists; marking
// Unpaid removes the current month's payment so the aggregation fallback
// stays correct.  Any other valid status is written as-is.
func (l *Ledger) SetStatus(ctx context.Context, id string, status model.PaymentStatus) (model.Tenant, error) {
	if !status.Valid() {
		return model.Tenant{}, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	today := l.today()
	tenants := make([]model.Tenant, len(l.tenants))
	copy(tenants, l.tenants)

	var updated *model.Tenant
	for i := range tenants {
		if tenants[i].ID != id {
			continue
		}
		tenants[i] = applyStatus(tenants[i], status, today)
		updated = &tenants[i]
		break
	}
	if updated == nil {
		return model.Tenant{}, ErrTenantNotFound
	}
	result := *updated

	l.tenants = tenants
	l.deriveLocked()
	l.persistLocked(ctx)
	if status == model.StatusPaid {
		l.emit(queue.LedgerEvent{
			Kind:     queue.EventPaymentRecorded,
			Message:  fmt.Sprintf("payment of %.2f recorded for %s", result.RentAmount, result.Name),
			TenantID: result.ID,
		})
	}
	return result, nil
}

func applyStatus(t model.Tenant, status model.PaymentStatus, today dateutil.Date) model.Tenant {
	payments := make([]model.Payment, 0, len(t.Payments)+1)
	payments = append(payments, t.Payments...)

	switch status {
	case model.StatusPaid:
		if !hasPaymentInMonth(payments, today) {
			payments = append(payments, model.Payment{Date: today.String(), Amount: t.RentAmount})
		}
	case model.StatusUnpaid:
		kept := payments[:0]
		for _, p := range payments {
			if d, err := dateutil.Parse(p.Date); err == nil && d.SameMonth(today) {
				continue
			}
			kept = append(kept, p)
		}
		payments = kept
	}
	t.Status = status
	t.Payments = payments
	return t
}

func hasPaymentInMonth(payments []model.Payment, day dateutil.Date) bool {
	for _, p := range payments {
		if d, err := dateutil.Parse(p.Date); err == nil && d.SameMonth(day) {
			return true
		}
	}
	return false
}

// UpdateTenant replaces a tenant's editable fields.  Status, payments
// and id are untouched.
func (l *Ledger) UpdateTenant(ctx context.Context, id string, upd model.Tenant) (model.Tenant, error) {
	errs := map[string]string{}
	if strings.TrimSpace(upd.Name) == "" {
		errs["name"] = "tenant name is required"
	}
	if upd.RentAmount <= 0 {
		errs["rentAmount"] = "rent amount must be greater than 0"
	}
	if _, err := dateutil.Parse(upd.DueDate); err != nil {
		errs["dueDate"] = "due date must be a valid YYYY-MM-DD date"
	}
	if len(errs) > 0 {
		return model.Tenant{}, &ValidationError{Fields: errs}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	tenants := make([]model.Tenant, len(l.tenants))
	copy(tenants, l.tenants)

	var result *model.Tenant
	for i := range tenants {
		if tenants[i].ID != id {
			continue
		}
		tenants[i].Name = strings.TrimSpace(upd.Name)
		tenants[i].RoomNumber = upd.RoomNumber
		tenants[i].RentAmount = upd.RentAmount
		tenants[i].DueDate = upd.DueDate
		tenants[i].Mobile = upd.Mobile
		result = &tenants[i]
		break
	}
	if result == nil {
		return model.Tenant{}, ErrTenantNotFound
	}
	out := *result

	l.tenants = tenants
	l.deriveLocked()
	l.persistLocked(ctx)
	l.emit(queue.LedgerEvent{
		Kind:     queue.EventTenantUpdated,
		Message:  fmt.Sprintf("tenant %s updated", out.Name),
		TenantID: out.ID,
	})
	return out, nil
}

// AddRoom appends a new available room.
func (l *Ledger) AddRoom(ctx context.Context, number int) (model.Room, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, r := range l.rooms {
		if r.Number == number {
			return model.Room{}, fmt.Errorf("%w: %d", ErrDuplicateRoom, number)
		}
	}

	rooms := make([]model.Room, len(l.rooms), len(l.rooms)+1)
	copy(rooms, l.rooms)
	room := model.Room{Number: number, IsAvailable: true}
	rooms = append(rooms, room)
	sort.Slice(rooms, func(i, j int) bool { return rooms[i].Number < rooms[j].Number })

	l.rooms = rooms
	l.persistLocked(ctx)
	l.emit(queue.LedgerEvent{
		Kind:       queue.EventRoomAdded,
		Message:    fmt.Sprintf("room %d added", number),
		RoomNumber: number,
	})
	return room, nil
}

// SaveEdit commits an edit session: validation first (no mutation on
// failure), then the room update, then the linked tenant update or
// creation, keeping both sides of the room/tenant link consistent
// before anything else can read the state.
//
// Marking an occupied room available clears only the room's tenant
// link; the tenant record keeps its old room number on purpose.
func (l *Ledger) SaveEdit(ctx context.Context, s *EditSession) (model.Room, *model.Tenant, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	originalNumber := s.room.Number
	roomIdx := -1
	for i, r := range l.rooms {
		if r.Number == originalNumber {
			roomIdx = i
			break
		}
	}
	if roomIdx == -1 {
		return model.Room{}, nil, ErrRoomNotFound
	}
	if err := s.validate(l.rooms); err != nil {
		return model.Room{}, nil, err
	}

	number := s.Number()
	available := s.Available()

	rooms := make([]model.Room, len(l.rooms))
	copy(rooms, l.rooms)
	rooms[roomIdx].Number = number
	rooms[roomIdx].IsAvailable = available
	if available {
		rooms[roomIdx].TenantID = ""
	}

	tenants := make([]model.Tenant, len(l.tenants))
	copy(tenants, l.tenants)

	var savedTenant *model.Tenant
	if !available {
		if s.tenant != nil {
			for i := range tenants {
				if tenants[i].ID != s.tenant.ID {
					continue
				}
				tenants[i].Name = strings.TrimSpace(s.Name())
				tenants[i].RentAmount = s.RentAmount()
				tenants[i].DueDate = s.DueDate()
				tenants[i].RoomNumber = number
				cp := tenants[i]
				savedTenant = &cp
				break
			}
		} else {
			t := model.Tenant{
				ID:         uuid.NewString(),
				Name:       strings.TrimSpace(s.Name()),
				RoomNumber: number,
				RentAmount: s.RentAmount(),
				DueDate:    s.DueDate(),
				Status:     model.StatusUnpaid,
				Payments:   []model.Payment{},
			}
			tenants = append(tenants, t)
			rooms[roomIdx].TenantID = t.ID
			cp := t
			savedTenant = &cp
		}
	}

	sort.Slice(rooms, func(i, j int) bool { return rooms[i].Number < rooms[j].Number })

	l.tenants = tenants
	l.rooms = rooms
	l.deriveLocked()
	l.persistLocked(ctx)
	l.emit(queue.LedgerEvent{
		Kind:       queue.EventRoomUpdated,
		Message:    fmt.Sprintf("room %d updated", number),
		RoomNumber: number,
	})

	savedRoom, _, err := l.roomDetailLocked(number)
	if err != nil {
		return model.Room{}, nil, err
	}
	return savedRoom, savedTenant, nil
}

// Import reconciles parsed candidates against the current collections
// and writes both back in a single combined update when anything was
// added.
func (l *Ledger) Import(ctx context.Context, candidates []Candidate) (added, skipped int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	res := Reconcile(l.tenants, l.rooms, candidates)
	if res.Added > 0 {
		l.tenants = res.Tenants
		l.rooms = res.Rooms
		l.deriveLocked()
		l.persistLocked(ctx)
	}
	l.emit(queue.LedgerEvent{
		Kind:    queue.EventImportCompleted,
		Message: fmt.Sprintf("%d tenant(s) imported, %d skipped", res.Added, res.Skipped),
		Added:   res.Added,
		Skipped: res.Skipped,
	})
	return res.Added, res.Skipped
}

// Reset clears both collections in memory and in the store.
func (l *Ledger) Reset(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.tenants = nil
	l.rooms = nil
	for _, key := range []string{store.KeyTenants, store.KeyRooms} {
		if err := l.store.Clear(ctx, key); err != nil {
			log.Printf("store: clear %q failed: %v", key, err)
		}
	}
	l.emit(queue.LedgerEvent{Kind: queue.EventDataReset, Message: "all data cleared"})
}

// settleLocked re-derives overdue statuses before a read and persists
// any promotion.  Due dates can pass while the process is running, so
// reads cannot rely on the last mutation's derivation alone.
func (l *Ledger) settleLocked(ctx context.Context) {
	if l.deriveLocked() {
		l.persistLocked(ctx)
	}
}

func (l *Ledger) deriveLocked() bool {
	tenants, changed := MarkOverdue(l.tenants, l.today())
	l.tenants = tenants
	return changed
}

// persistLocked writes both collections.  Failures are logged and
// swallowed: the in-memory state stays authoritative for the session.
func (l *Ledger) persistLocked(ctx context.Context) {
	blobs := []struct {
		key  string
		data any
	}{
		{store.KeyTenants, l.tenants},
		{store.KeyRooms, l.rooms},
	}
	for _, b := range blobs {
		payload, err := json.Marshal(b.data)
		if err != nil {
			log.Printf("store: marshal %q failed: %v", b.key, err)
			continue
		}
		if err := l.store.Set(ctx, b.key, payload); err != nil {
			log.Printf("store: write %q failed: %v", b.key, err)
		}
	}
}

func (l *Ledger) emit(ev queue.LedgerEvent) {
	if l.notify == nil {
		return
	}
	ev.OccurredAt = time.Now().UTC().Format(time.RFC3339)
	l.notify(ev)
}
