// Package queue defines the notification events published whenever the
// ledger changes, and the consumer that turns them into log lines for
// the notification layer.
package queue

// Event kinds carried by LedgerEvent.
const (
	EventPaymentRecorded = "payment.recorded"
	EventTenantUpdated   = "tenant.updated"
	EventRoomAdded       = "room.added"
	EventRoomUpdated     = "room.updated"
	EventImportCompleted = "import.completed"
	EventDataReset       = "data.reset"
)

// LedgerEvent is published after a successful mutation.  It carries
// enough context for a notification consumer to render a message without
// reading the store.
type LedgerEvent struct {
	Kind       string `json:"kind"`
	Message    string `json:"message"`
	TenantID   string `json:"tenant_id,omitempty"`
	RoomNumber int    `json:"room_number,omitempty"`
	Added      int    `json:"added,omitempty"`
	Skipped    int    `json:"skipped,omitempty"`
	OccurredAt string `json:"occurred_at"`
}
