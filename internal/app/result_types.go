package app

import "stockroom/internal/core"

// StockResult is returned by GetStockLevels and GetLowStock.
type StockResult struct {
	Levels []core.StockLevel
}

// ItemResult is returned by GetItem.
type ItemResult struct {
	Item *core.Item
}

// MutationResult is returned by the stock mutations.
type MutationResult struct {
	Item     *core.Item // nil when the record was removed
	Removed  bool
	Movement core.Movement // the journal entry the mutation appended
}

// MovementListResult is returned by GetMovements.
type MovementListResult struct {
	Movements []core.Movement
	SKU       string // non-empty when filtered
}

// ValuationResult is returned by GetValuation.
type ValuationResult struct {
	Valuation core.Valuation
}
