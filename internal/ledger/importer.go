package ledger

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/iliyamo/boarding-house-manager/internal/dateutil"
	"github.com/iliyamo/boarding-house-manager/internal/model"
)

// csvHeader is the exact header row required for delimited imports.
const csvHeader = "name,roomNumber,rentAmount,dueDate"

// Candidate is one parsed tenant record from an import file, before
// reconciliation against the existing rooms.
type Candidate struct {
	Name       string
	RoomNumber int
	RentAmount float64
	DueDate    string // normalized to YYYY-MM-DD
}

// ParseCSV parses a delimited-text import.  The first non-blank row
// must be exactly the header name,roomNumber,rentAmount,dueDate and
// every following row must carry the same four comma-separated fields.
// Any malformed row aborts the whole import with an error naming the
// 1-based file row; no candidates are returned on failure.
func ParseCSV(text string) ([]Candidate, error) {
	var rows []string
	for _, row := range strings.Split(text, "\n") {
		if strings.TrimSpace(row) != "" {
			rows = append(rows, row)
		}
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("invalid CSV headers: expected %s", csvHeader)
	}

	headers := strings.Split(rows[0], ",")
	for i := range headers {
		headers[i] = strings.TrimSpace(headers[i])
	}
	if strings.Join(headers, ",") != csvHeader {
		return nil, fmt.Errorf("invalid CSV headers: expected %s", csvHeader)
	}

	candidates := make([]Candidate, 0, len(rows)-1)
	for i, row := range rows[1:] {
		rowNum := i + 2 // 1-based, counting the header row
		values := strings.Split(row, ",")
		if len(values) != len(headers) {
			return nil, fmt.Errorf("row %d has an incorrect number of columns", rowNum)
		}
		name := strings.TrimSpace(values[0])
		roomStr := strings.TrimSpace(values[1])
		rentStr := strings.TrimSpace(values[2])
		dueStr := strings.TrimSpace(values[3])
		if name == "" || roomStr == "" || rentStr == "" || dueStr == "" {
			return nil, fmt.Errorf("invalid or missing data on row %d", rowNum)
		}

		roomNumber, roomErr := strconv.Atoi(roomStr)
		rentAmount, rentErr := strconv.ParseFloat(rentStr, 64)
		if roomErr != nil || rentErr != nil {
			return nil, fmt.Errorf("invalid number format on row %d: check room number and rent amount", rowNum)
		}

		dueDate, err := normalizeDate(dueStr)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, Candidate{
			Name:       name,
			RoomNumber: roomNumber,
			RentAmount: rentAmount,
			DueDate:    dueDate,
		})
	}
	return candidates, nil
}

// ParseJSON parses a structured import: a top-level array of objects
// with string name/dueDate and numeric roomNumber/rentAmount.  A type
// mismatch aborts the whole import with an error naming the failing
// index.
func ParseJSON(data []byte) ([]Candidate, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid JSON: could not parse the content")
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("structured import must be a top-level array of tenant objects")
	}

	candidates := make([]Candidate, 0, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("element at index %d is not an object", i)
		}
		name, nameOK := obj["name"].(string)
		roomNum, roomOK := obj["roomNumber"].(float64)
		rentAmount, rentOK := obj["rentAmount"].(float64)
		dueStr, dueOK := obj["dueDate"].(string)
		if !nameOK || !roomOK || !rentOK || !dueOK {
			return nil, fmt.Errorf("wrong field types at index %d: name and dueDate must be strings, roomNumber and rentAmount numbers", i)
		}
		if strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("empty name at index %d", i)
		}
		if roomNum != math.Trunc(roomNum) {
			return nil, fmt.Errorf("roomNumber at index %d must be an integer", i)
		}

		dueDate, err := normalizeDate(dueStr)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, Candidate{
			Name:       strings.TrimSpace(name),
			RoomNumber: int(roomNum),
			RentAmount: rentAmount,
			DueDate:    dueDate,
		})
	}
	return candidates, nil
}

// normalizeDate accepts YYYY-MM-DD (passed through) or DD/MM/YYYY
// (converted) and verifies the result is a real calendar day.
func normalizeDate(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	candidate := s
	if parts := strings.Split(s, "/"); len(parts) == 3 &&
		len(parts[0]) == 2 && len(parts[1]) == 2 && len(parts[2]) == 4 {
		candidate = parts[2] + "-" + parts[1] + "-" + parts[0]
	}
	if _, err := dateutil.Parse(candidate); err != nil {
		return "", fmt.Errorf("invalid date format %q: use YYYY-MM-DD or DD/MM/YYYY", raw)
	}
	return candidate, nil
}

// ImportResult carries the collections produced by Reconcile together
// with the disposition counts.
type ImportResult struct {
	Tenants []model.Tenant
	Rooms   []model.Room
	Added   int
	Skipped int
}

// Reconcile merges parsed candidates into the existing collections.
// Each candidate is dispositioned independently: an unknown room number
// creates an occupied room and an Unpaid tenant, an available room is
// occupied with a new Unpaid tenant, and an occupied room skips the
// candidate silently.  The returned rooms are sorted by number; the
// input slices are never mutated.
func Reconcile(tenants []model.Tenant, rooms []model.Room, candidates []Candidate) ImportResult {
	newTenants := make([]model.Tenant, len(tenants))
	copy(newTenants, tenants)
	newRooms := make([]model.Room, len(rooms))
	copy(newRooms, rooms)

	added := 0
	for _, cand := range candidates {
		idx := -1
		for i, r := range newRooms {
			if r.Number == cand.RoomNumber {
				idx = i
				break
			}
		}
		switch {
		case idx == -1:
			t := newTenant(cand)
			newTenants = append(newTenants, t)
			newRooms = append(newRooms, model.Room{
				Number:      cand.RoomNumber,
				IsAvailable: false,
				TenantID:    t.ID,
			})
			added++
		case newRooms[idx].IsAvailable:
			t := newTenant(cand)
			newTenants = append(newTenants, t)
			newRooms[idx].IsAvailable = false
			newRooms[idx].TenantID = t.ID
			added++
		default:
			// Room occupied: skip the candidate without error.
		}
	}

	sort.Slice(newRooms, func(i, j int) bool { return newRooms[i].Number < newRooms[j].Number })
	return ImportResult{
		Tenants: newTenants,
		Rooms:   newRooms,
		Added:   added,
		Skipped: len(candidates) - added,
	}
}

func newTenant(c Candidate) model.Tenant {
	return model.Tenant{
		ID:         uuid.NewString(),
		Name:       c.Name,
		RoomNumber: c.RoomNumber,
		RentAmount: c.RentAmount,
		DueDate:    c.DueDate,
		Status:     model.StatusUnpaid,
	}
}
