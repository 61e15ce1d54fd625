package ledger

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors returned by ledger operations.
var (
	ErrTenantNotFound = errors.New("tenant not found")
	ErrRoomNotFound   = errors.New("room not found")
	ErrDuplicateRoom  = errors.New("room number already exists")
	ErrRoomOccupied   = errors.New("room is already occupied")
	ErrInvalidStatus  = errors.New("invalid payment status")
)

// ValidationError reports per-field problems with an edit.  The form
// stays open for correction, so messages are keyed by field name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
