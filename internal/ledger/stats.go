package ledger

import (
	"sort"
	"time"

	"github.com/iliyamo/boarding-house-manager/internal/dateutil"
	"github.com/iliyamo/boarding-house-manager/internal/model"
)

// Snapshot computes the dashboard figures for the given day and
// reporting month.
//
// The monthly collection sums recorded payments dated in the selected
// month.  For legacy tenants that are Paid with a due date in the month
// but no recorded payment there, the rent amount is counted once as a
// fallback; a tenant with both a matching payment and a matching due
// date contributes only the payment.
func Snapshot(tenants []model.Tenant, rooms []model.Room, today dateutil.Date, year int, month time.Month) model.DashboardStats {
	stats := model.DashboardStats{TotalRooms: len(rooms)}
	for _, r := range rooms {
		if r.IsAvailable {
			stats.AvailableRooms++
		}
	}

	for _, t := range tenants {
		due, dueErr := dateutil.Parse(t.DueDate)

		if t.Status == model.StatusUnpaid && dueErr == nil && due.Equal(today) {
			stats.RentDueToday++
		}

		paidThisMonth := false
		for _, p := range t.Payments {
			d, err := dateutil.Parse(p.Date)
			if err != nil {
				continue
			}
			if d.InMonth(year, month) {
				stats.TotalCollection += p.Amount
				paidThisMonth = true
			}
		}
		if !paidThisMonth && t.Status == model.StatusPaid && dueErr == nil && due.InMonth(year, month) {
			stats.TotalCollection += t.RentAmount
		}
	}
	return stats
}

// MonthlySeries buckets tenants by the year and month of their due date
// and accumulates due and collected rent per bucket.  Tenants whose due
// date cannot be parsed are excluded.  Buckets are sorted by calendar
// date, not by label.
func MonthlySeries(tenants []model.Tenant) []model.MonthlyData {
	type bucket struct {
		key  int // year*12 + month, for chronological ordering
		data model.MonthlyData
	}
	buckets := make(map[int]*bucket)

	for _, t := range tenants {
		due, err := dateutil.Parse(t.DueDate)
		if err != nil {
			continue
		}
		key := due.Year()*12 + int(due.Month()) - 1
		b, ok := buckets[key]
		if !ok {
			b = &bucket{key: key, data: model.MonthlyData{Name: dateutil.MonthLabel(due.Year(), due.Month())}}
			buckets[key] = b
		}
		b.data.Due += t.RentAmount
		if t.Status == model.StatusPaid {
			b.data.Collected += t.RentAmount
		}
	}

	ordered := make([]*bucket, 0, len(buckets))
	for _, b := range buckets {
		ordered = append(ordered, b)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].key < ordered[j].key })

	series := make([]model.MonthlyData, 0, len(ordered))
	for _, b := range ordered {
		series = append(series, b.data)
	}
	return series
}

// OverdueCount returns the number of tenants currently marked Overdue.
func OverdueCount(tenants []model.Tenant) int {
	n := 0
	for _, t := range tenants {
		if t.Status == model.StatusOverdue {
			n++
		}
	}
	return n
}
