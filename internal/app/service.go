package app

import "context"

// ApplicationService is the single interface all terminal adapters (REPL, CLI)
// call. It decouples presentation from the inventory core. Implementations
// must contain no fmt.Println, no ANSI codes, and no display logic of any kind.
type ApplicationService interface {
	// GetStockLevels returns the current level of every record, sorted by SKU.
	GetStockLevels(ctx context.Context) (*StockResult, error)

	// GetLowStock returns the records at or below their reorder threshold.
	GetLowStock(ctx context.Context) (*StockResult, error)

	// GetItem returns a single stock record by SKU.
	GetItem(ctx context.Context, sku string) (*ItemResult, error)

	// ReceiveStock records a goods receipt: creates a record or increments an
	// existing one, recalculating the weighted average unit cost.
	ReceiveStock(ctx context.Context, req ReceiveStockRequest) (*MutationResult, error)

	// IssueStock records a goods issue. The record is deleted when it reaches
	// exactly zero.
	IssueStock(ctx context.Context, req IssueStockRequest) (*MutationResult, error)

	// AdjustStock applies a signed stocktake correction to an existing record.
	AdjustStock(ctx context.Context, req AdjustStockRequest) (*MutationResult, error)

	// GetMovements returns the movement journal in append order, optionally
	// filtered by SKU (empty means all).
	GetMovements(ctx context.Context, sku string) (*MovementListResult, error)

	// GetValuation returns aggregate totals over the whole inventory.
	GetValuation(ctx context.Context) (*ValuationResult, error)

	// LoadSnapshot replaces the in-memory state with the snapshot at path.
	// The read is all-or-nothing: on failure prior state is untouched.
	LoadSnapshot(ctx context.Context, path string) error

	// SaveSnapshot writes the full current state to path atomically.
	SaveSnapshot(ctx context.Context, path string) error

	// SnapshotSchema returns the JSON Schema of the snapshot document.
	SnapshotSchema(ctx context.Context) ([]byte, error)

	// IsDirty reports whether mutations occurred since the last successful
	// save or load.
	IsDirty(ctx context.Context) bool
}
