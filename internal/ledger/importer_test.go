package ledger

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iliyamo/boarding-house-manager/internal/model"
)

func TestParseCSVHappyPath(t *testing.T) {
	csv := "name,roomNumber,rentAmount,dueDate\nJane Doe,5,500,2024-01-15\n"

	got, err := ParseCSV(csv)
	require.NoError(t, err)
	require.Equal(t, []Candidate{
		{Name: "Jane Doe", RoomNumber: 5, RentAmount: 500, DueDate: "2024-01-15"},
	}, got)
}

func TestParseCSVTrimsAndSkipsBlankLines(t *testing.T) {
	csv := " name , roomNumber , rentAmount , dueDate \n\n  John , 7 , 450.50 , 2024-02-01  \n\n"

	got, err := ParseCSV(csv)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "John", got[0].Name)
	require.Equal(t, 450.50, got[0].RentAmount)
}

func TestParseCSVConvertsSlashDates(t *testing.T) {
	csv := "name,roomNumber,rentAmount,dueDate\nJane,5,500,15/01/2024\n"

	got, err := ParseCSV(csv)
	require.NoError(t, err)
	require.Equal(t, "2024-01-15", got[0].DueDate)
}

func TestParseCSVRejectsBadHeader(t *testing.T) {
	_, err := ParseCSV("name,room,rent,due\nJane,5,500,2024-01-15\n")
	require.ErrorContains(t, err, "invalid CSV headers")

	_, err = ParseCSV("")
	require.ErrorContains(t, err, "invalid CSV headers")
}

func TestParseCSVRejectsWrongColumnCount(t *testing.T) {
	_, err := ParseCSV("name,roomNumber,rentAmount,dueDate\nJane,5,500\n")
	require.ErrorContains(t, err, "row 2")
}

func TestParseCSVRejectsMissingValues(t *testing.T) {
	_, err := ParseCSV("name,roomNumber,rentAmount,dueDate\nJane,5,,2024-01-15\n")
	require.ErrorContains(t, err, "missing data on row 2")
}

func TestParseCSVRejectsBadNumbers(t *testing.T) {
	_, err := ParseCSV("name,roomNumber,rentAmount,dueDate\nJane,five,500,2024-01-15\n")
	require.ErrorContains(t, err, "invalid number format on row 2")
}

func TestParseCSVAbortsWholeBatchOnBadDate(t *testing.T) {
	csv := "name,roomNumber,rentAmount,dueDate\n" +
		"Good Row,5,500,2024-01-15\n" +
		"Bad Row,6,600,01-02-2024\n"

	got, err := ParseCSV(csv)
	require.ErrorContains(t, err, `"01-02-2024"`)
	require.Nil(t, got)
}

func TestParseJSONHappyPath(t *testing.T) {
	data := []byte(`[{"name":"Jane Smith","roomNumber":102,"rentAmount":600.50,"dueDate":"2024-10-01"}]`)

	got, err := ParseJSON(data)
	require.NoError(t, err)
	require.Equal(t, []Candidate{
		{Name: "Jane Smith", RoomNumber: 102, RentAmount: 600.50, DueDate: "2024-10-01"},
	}, got)
}

func TestParseJSONRejectsNonArray(t *testing.T) {
	_, err := ParseJSON([]byte(`{"name":"Jane"}`))
	require.ErrorContains(t, err, "top-level array")
}

func TestParseJSONRejectsInvalidContent(t *testing.T) {
	_, err := ParseJSON([]byte(`not json`))
	require.ErrorContains(t, err, "invalid JSON")
}

func TestParseJSONRejectsTypeMismatch(t *testing.T) {
	_, err := ParseJSON([]byte(`[{"name":"Jane","roomNumber":"5","rentAmount":500,"dueDate":"2024-01-15"}]`))
	require.ErrorContains(t, err, "index 0")
}

func TestParseJSONRejectsFractionalRoomNumber(t *testing.T) {
	_, err := ParseJSON([]byte(`[{"name":"Jane","roomNumber":5.5,"rentAmount":500,"dueDate":"2024-01-15"}]`))
	require.ErrorContains(t, err, "must be an integer")
}

func TestReconcileCreatesRoomAndTenant(t *testing.T) {
	res := Reconcile(nil, nil, []Candidate{
		{Name: "Jane Doe", RoomNumber: 5, RentAmount: 500, DueDate: "2024-01-15"},
	})

	require.Equal(t, 1, res.Added)
	require.Equal(t, 0, res.Skipped)
	require.Len(t, res.Tenants, 1)
	require.Len(t, res.Rooms, 1)

	tenant := res.Tenants[0]
	room := res.Rooms[0]
	require.NotEmpty(t, tenant.ID)
	require.Equal(t, "Jane Doe", tenant.Name)
	require.Equal(t, model.StatusUnpaid, tenant.Status)
	require.Equal(t, 5, room.Number)
	require.False(t, room.IsAvailable)
	require.Equal(t, tenant.ID, room.TenantID)
}

func TestReconcileOccupiesAvailableRoom(t *testing.T) {
	rooms := []model.Room{{Number: 5, IsAvailable: true}}

	res := Reconcile(nil, rooms, []Candidate{
		{Name: "Jane", RoomNumber: 5, RentAmount: 500, DueDate: "2024-01-15"},
	})

	require.Equal(t, 1, res.Added)
	require.False(t, res.Rooms[0].IsAvailable)
	require.Equal(t, res.Tenants[0].ID, res.Rooms[0].TenantID)
	// The caller's slice stays untouched.
	require.True(t, rooms[0].IsAvailable)
}

func TestReconcileSkipsOccupiedRoom(t *testing.T) {
	tenants := []model.Tenant{{ID: "t1", Name: "Existing", RoomNumber: 5}}
	rooms := []model.Room{{Number: 5, IsAvailable: false, TenantID: "t1"}}

	res := Reconcile(tenants, rooms, []Candidate{
		{Name: "Jane", RoomNumber: 5, RentAmount: 500, DueDate: "2024-01-15"},
	})

	require.Equal(t, 0, res.Added)
	require.Equal(t, 1, res.Skipped)
	require.Len(t, res.Tenants, 1)
	require.Equal(t, "t1", res.Rooms[0].TenantID)
}

func TestReconcileCountsAndSortsRooms(t *testing.T) {
	rooms := []model.Room{{Number: 9, IsAvailable: false, TenantID: "t1"}}

	res := Reconcile(nil, rooms, []Candidate{
		{Name: "A", RoomNumber: 12, RentAmount: 100, DueDate: "2024-01-15"},
		{Name: "B", RoomNumber: 9, RentAmount: 100, DueDate: "2024-01-15"}, // occupied: skipped
		{Name: "C", RoomNumber: 3, RentAmount: 100, DueDate: "2024-01-15"},
	})

	require.Equal(t, 2, res.Added)
	require.Equal(t, 1, res.Skipped)
	require.Equal(t, 3, res.Added+res.Skipped)

	numbers := make([]int, 0, len(res.Rooms))
	for _, r := range res.Rooms {
		numbers = append(numbers, r.Number)
	}
	require.Equal(t, []int{3, 9, 12}, numbers)

	// Every added tenant is linked to exactly one occupied room.
	for _, tn := range res.Tenants {
		matches := 0
		for _, r := range res.Rooms {
			if r.Number == tn.RoomNumber {
				matches++
				require.False(t, r.IsAvailable)
			}
		}
		require.Equal(t, 1, matches, "tenant %s", tn.Name)
	}
}

func TestReconcileGeneratesUniqueIDs(t *testing.T) {
	res := Reconcile(nil, nil, []Candidate{
		{Name: "A", RoomNumber: 1, RentAmount: 100, DueDate: "2024-01-15"},
		{Name: "B", RoomNumber: 2, RentAmount: 100, DueDate: "2024-01-15"},
	})

	require.Len(t, res.Tenants, 2)
	require.NotEqual(t, res.Tenants[0].ID, res.Tenants[1].ID)
}
