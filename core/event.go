package core

import (
	"context"
	"math/big"
	"time"
)

// EventType ledger event type
type EventType string

const (
	// EventSupplied supplied
	EventSupplied EventType = "Supplied"
	// EventWithdrawn withdrawn
	EventWithdrawn EventType = "Withdrawn"
	// EventBorrowed borrowed
	EventBorrowed EventType = "Borrowed"
	// EventRepaid repaid; Amount carries the clamped repay amount
	EventRepaid EventType = "Repaid"
)

// Event a committed ledger operation notification
type Event struct {
	Type      EventType `json:"type"`
	UserID    string    `json:"user_id"`
	AssetID   string    `json:"asset_id"`
	Amount    *big.Int  `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

// EventSink receives ledger events. Delivery is fire-and-forget; the
// ledger never consumes a result.
type EventSink interface {
	Notify(ctx context.Context, event *Event)
}
