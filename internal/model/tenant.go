package model

// PaymentStatus is the rent payment state of a tenant.  Unpaid tenants
// are promoted to Overdue by the status deriver once their due date has
// passed; Paid and Overdue are only ever changed by an explicit action.
type PaymentStatus string

const (
	StatusPaid    PaymentStatus = "Paid"    // rent received for the current cycle
	StatusUnpaid  PaymentStatus = "Unpaid"  // rent outstanding, due date not yet passed
	StatusOverdue PaymentStatus = "Overdue" // rent outstanding past the due date
)

// Valid reports whether s is one of the three known statuses.
func (s PaymentStatus) Valid() bool {
	switch s {
	case StatusPaid, StatusUnpaid, StatusOverdue:
		return true
	}
	return false
}

// Payment is a single recorded rent payment.  Entries are appended in
// the order they are recorded, at most one per calendar month.
type Payment struct {
	Date   string  `json:"date"`   // ISO day, YYYY-MM-DD
	Amount float64 `json:"amount"` // amount received
}

// Tenant describes a person renting a room.  JSON tags match the field
// names used by the persisted blobs so existing data round-trips.
//
// Fields:
//  ID         – unique identifier, assigned at creation, immutable.
//  Name       – tenant's full name, never empty.
//  RoomNumber – number of the room the tenant rents.
//  RentAmount – monthly rent, positive.
//  DueDate    – next rent due date, ISO YYYY-MM-DD.
//  Status     – current payment status.
//  Mobile     – optional contact number.
//  Payments   – optional recorded payments, one per paid month.
type Tenant struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	RoomNumber int           `json:"roomNumber"`
	RentAmount float64       `json:"rentAmount"`
	DueDate    string        `json:"dueDate"`
	Status     PaymentStatus `json:"status"`
	Mobile     string        `json:"mobile,omitempty"`
	Payments   []Payment     `json:"payments,omitempty"`
}
