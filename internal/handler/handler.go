// Package handler contains the HTTP handlers exposing the ledger to the
// browser client.
package handler

import (
	"github.com/iliyamo/boarding-house-manager/internal/ledger"
)

// LedgerHandler bundles the domain endpoints around the single ledger
// instance.
type LedgerHandler struct {
	Ledger *ledger.Ledger
}

// NewLedgerHandler constructs a LedgerHandler.
func NewLedgerHandler(l *ledger.Ledger) *LedgerHandler {
	return &LedgerHandler{Ledger: l}
}
