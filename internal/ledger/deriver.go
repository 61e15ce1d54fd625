package ledger

import (
	"github.com/iliyamo/boarding-house-manager/internal/dateutil"
	"github.com/iliyamo/boarding-house-manager/internal/model"
)

// MarkOverdue promotes every Unpaid tenant whose due date falls strictly
// before today to Overdue.  The comparison is date-only; a due date that
// fails to parse never promotes.  Paid and Overdue tenants are never
// touched, which makes the function idempotent.
//
// When no tenant needs promotion the input slice is returned unchanged,
// so callers can use the reported flag to skip spurious writes.
func MarkOverdue(tenants []model.Tenant, today dateutil.Date) ([]model.Tenant, bool) {
	needsUpdate := false
	for _, t := range tenants {
		if overdueNow(t, today) {
			needsUpdate = true
			break
		}
	}
	if !needsUpdate {
		return tenants, false
	}

	out := make([]model.Tenant, len(tenants))
	copy(out, tenants)
	for i := range out {
		if overdueNow(out[i], today) {
			out[i].Status = model.StatusOverdue
		}
	}
	return out, true
}

func overdueNow(t model.Tenant, today dateutil.Date) bool {
	if t.Status != model.StatusUnpaid {
		return false
	}
	due, err := dateutil.Parse(t.DueDate)
	if err != nil {
		return false
	}
	return due.Before(today)
}
