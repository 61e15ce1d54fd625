package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/iliyamo/boarding-house-manager/internal/dateutil"
	"github.com/iliyamo/boarding-house-manager/internal/model"
)

func TestSnapshotRoomCounts(t *testing.T) {
	rooms := []model.Room{
		{Number: 1, IsAvailable: true},
		{Number: 2, IsAvailable: false, TenantID: "t1"},
		{Number: 3, IsAvailable: true},
	}

	stats := Snapshot(nil, rooms, dateutil.MustParse("2024-02-01"), 2024, time.February)
	require.Equal(t, 2, stats.AvailableRooms)
	require.Equal(t, 3, stats.TotalRooms)
}

func TestSnapshotRentDueToday(t *testing.T) {
	tenants := []model.Tenant{
		{ID: "t1", DueDate: "2024-02-01", Status: model.StatusUnpaid},
		{ID: "t2", DueDate: "2024-02-01", Status: model.StatusPaid},   // paid, not due
		{ID: "t3", DueDate: "2024-02-02", Status: model.StatusUnpaid}, // not today
		{ID: "t4", DueDate: "garbage", Status: model.StatusUnpaid},
	}

	stats := Snapshot(tenants, nil, dateutil.MustParse("2024-02-01"), 2024, time.February)
	require.Equal(t, 1, stats.RentDueToday)
}

func TestSnapshotCollectionFromPayments(t *testing.T) {
	tenants := []model.Tenant{
		{ID: "t1", RentAmount: 500, DueDate: "2024-02-05", Status: model.StatusUnpaid,
			Payments: []model.Payment{
				{Date: "2024-01-10", Amount: 500},
				{Date: "2024-02-10", Amount: 480},
			}},
	}

	stats := Snapshot(tenants, nil, dateutil.MustParse("2024-02-15"), 2024, time.February)
	require.Equal(t, 480.0, stats.TotalCollection)
}

func TestSnapshotLegacyFallback(t *testing.T) {
	// Paid tenant with a due date in the month but no recorded payments:
	// the rent amount counts once.
	tenants := []model.Tenant{
		{ID: "t1", RentAmount: 600, DueDate: "2024-02-05", Status: model.StatusPaid},
	}

	stats := Snapshot(tenants, nil, dateutil.MustParse("2024-02-15"), 2024, time.February)
	require.Equal(t, 600.0, stats.TotalCollection)
}

func TestSnapshotNoDoubleCounting(t *testing.T) {
	// Both a recorded payment and a Paid status with due date in the same
	// month: only the payment contributes.
	tenants := []model.Tenant{
		{ID: "t1", RentAmount: 600, DueDate: "2024-02-05", Status: model.StatusPaid,
			Payments: []model.Payment{{Date: "2024-02-01", Amount: 600}}},
	}

	stats := Snapshot(tenants, nil, dateutil.MustParse("2024-02-15"), 2024, time.February)
	require.Equal(t, 600.0, stats.TotalCollection)
}

func TestSnapshotFallbackSkipsOtherMonths(t *testing.T) {
	tenants := []model.Tenant{
		// Paid but due in January: no contribution to February.
		{ID: "t1", RentAmount: 600, DueDate: "2024-01-05", Status: model.StatusPaid},
		// Payment recorded in January only.
		{ID: "t2", RentAmount: 400, DueDate: "2024-02-05", Status: model.StatusUnpaid,
			Payments: []model.Payment{{Date: "2024-01-20", Amount: 400}}},
	}

	stats := Snapshot(tenants, nil, dateutil.MustParse("2024-02-15"), 2024, time.February)
	require.Equal(t, 0.0, stats.TotalCollection)
}

func TestSnapshotToleratesBadDueDate(t *testing.T) {
	tenants := []model.Tenant{
		{ID: "t1", RentAmount: 500, DueDate: "not-a-date", Status: model.StatusPaid},
	}

	require.NotPanics(t, func() {
		stats := Snapshot(tenants, nil, dateutil.MustParse("2024-02-15"), 2024, time.February)
		require.Equal(t, 0.0, stats.TotalCollection)
	})
}

func TestMonthlySeriesBucketsAndLabels(t *testing.T) {
	tenants := []model.Tenant{
		{ID: "t1", RentAmount: 500, DueDate: "2024-01-05", Status: model.StatusPaid},
		{ID: "t2", RentAmount: 300, DueDate: "2024-01-20", Status: model.StatusUnpaid},
		{ID: "t3", RentAmount: 700, DueDate: "2023-12-01", Status: model.StatusOverdue},
	}

	series := MonthlySeries(tenants)
	require.Len(t, series, 2)

	// Chronological order by calendar date, not by label text.
	require.Equal(t, "Dec '23", series[0].Name)
	require.Equal(t, 700.0, series[0].Due)
	require.Equal(t, 0.0, series[0].Collected)

	require.Equal(t, "Jan '24", series[1].Name)
	require.Equal(t, 800.0, series[1].Due)
	require.Equal(t, 500.0, series[1].Collected)
}

func TestMonthlySeriesExcludesBadDates(t *testing.T) {
	tenants := []model.Tenant{
		{ID: "t1", RentAmount: 500, DueDate: "whenever", Status: model.StatusPaid},
	}
	require.Empty(t, MonthlySeries(tenants))
}

func TestOverdueCount(t *testing.T) {
	tenants := []model.Tenant{
		{ID: "t1", Status: model.StatusOverdue},
		{ID: "t2", Status: model.StatusPaid},
		{ID: "t3", Status: model.StatusOverdue},
	}
	require.Equal(t, 2, OverdueCount(tenants))
}
