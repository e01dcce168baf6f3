package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementType classifies a journal entry.
type MovementType string

const (
	// MovementReceipt records stock entering the room (positive quantity).
	MovementReceipt MovementType = "RECEIPT"
	// MovementIssue records stock leaving the room (negative quantity).
	MovementIssue MovementType = "ISSUE"
	// MovementAdjustment records a stocktake correction (signed quantity).
	MovementAdjustment MovementType = "ADJUSTMENT"
)

// Item is one stock record, keyed by SKU within its owning Manager.
// Quantity is never negative; a record that reaches zero is deleted,
// so an Item held by the manager always has Quantity > 0.
type Item struct {
	SKU          string          `json:"sku"`
	Name         string          `json:"name,omitempty"`
	Quantity     int64           `json:"quantity"`
	UnitCost     decimal.Decimal `json:"unit_cost"`               // weighted average receipt cost
	ReorderLevel int64           `json:"reorder_level,omitempty"` // 0 means no threshold
}

// Value returns Quantity × UnitCost.
func (it *Item) Value() decimal.Decimal {
	return decimal.NewFromInt(it.Quantity).Mul(it.UnitCost)
}

// Movement is one immutable journal entry. Quantity carries the signed
// delta: positive for receipts, negative for issues and downward
// adjustments. Seq is assigned by the owning Journal and is gapless
// within one manager instance.
type Movement struct {
	ID         string          `json:"id"`
	Seq        int64           `json:"seq"`
	Type       MovementType    `json:"type"`
	SKU        string          `json:"sku"`
	Quantity   int64           `json:"quantity"`
	UnitCost   decimal.Decimal `json:"unit_cost"` // receipt cost; zero for issues and adjustments
	Notes      string          `json:"notes,omitempty"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// StockLevel is a read view of one item.
type StockLevel struct {
	SKU          string
	Name         string
	OnHand       int64
	UnitCost     decimal.Decimal
	Value        decimal.Decimal // = OnHand × UnitCost
	ReorderLevel int64
	Low          bool // ReorderLevel > 0 and OnHand ≤ ReorderLevel
}

// Valuation is the aggregate read view across all items.
type Valuation struct {
	ItemCount  int
	TotalUnits int64
	TotalValue decimal.Decimal
}
