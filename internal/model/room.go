package model

// Room is a numbered unit that is either available or occupied by at
// most one tenant.  An occupied room carries the id of its tenant; an
// available room must not.
//
// Fields:
//  Number      – unique room number.
//  IsAvailable – true when no tenant occupies the room.
//  TenantID    – id of the occupying tenant, empty when available.
type Room struct {
	Number      int    `json:"number"`
	IsAvailable bool   `json:"isAvailable"`
	TenantID    string `json:"tenantId,omitempty"`
}
