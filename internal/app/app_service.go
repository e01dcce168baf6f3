package app

import (
	"context"
	"strings"

	"stockroom/internal/core"
	"stockroom/internal/snapshot"
)

type appService struct {
	manager *core.Manager
}

// NewAppService constructs an appService that satisfies ApplicationService.
func NewAppService(manager *core.Manager) ApplicationService {
	return &appService{manager: manager}
}

// lastMovement returns the journal entry the mutation that just succeeded
// appended. Only valid immediately after a successful mutation.
func (s *appService) lastMovement() core.Movement {
	mvs := s.manager.Movements()
	return mvs[len(mvs)-1]
}

// GetStockLevels returns the current level of every record, sorted by SKU.
func (s *appService) GetStockLevels(ctx context.Context) (*StockResult, error) {
	return &StockResult{Levels: s.manager.StockLevels()}, nil
}

// GetLowStock returns the records at or below their reorder threshold.
func (s *appService) GetLowStock(ctx context.Context) (*StockResult, error) {
	return &StockResult{Levels: s.manager.LowStock()}, nil
}

// GetItem returns a single stock record by SKU.
func (s *appService) GetItem(ctx context.Context, sku string) (*ItemResult, error) {
	it, err := s.manager.Item(sku)
	if err != nil {
		return nil, err
	}
	return &ItemResult{Item: it}, nil
}

// ReceiveStock records a goods receipt.
func (s *appService) ReceiveStock(ctx context.Context, req ReceiveStockRequest) (*MutationResult, error) {
	it, err := s.manager.Receive(core.ReceiptInput{
		SKU:          req.SKU,
		Name:         req.Name,
		Quantity:     req.Quantity,
		UnitCost:     req.UnitCost,
		ReorderLevel: req.ReorderLevel,
		Notes:        req.Notes,
	})
	if err != nil {
		return nil, err
	}
	return &MutationResult{Item: it, Movement: s.lastMovement()}, nil
}

// IssueStock records a goods issue.
func (s *appService) IssueStock(ctx context.Context, req IssueStockRequest) (*MutationResult, error) {
	it, removed, err := s.manager.Issue(core.IssueInput{
		SKU:      req.SKU,
		Quantity: req.Quantity,
		Notes:    req.Notes,
	})
	if err != nil {
		return nil, err
	}
	return &MutationResult{Item: it, Removed: removed, Movement: s.lastMovement()}, nil
}

// AdjustStock applies a signed stocktake correction.
func (s *appService) AdjustStock(ctx context.Context, req AdjustStockRequest) (*MutationResult, error) {
	it, removed, err := s.manager.Adjust(core.AdjustmentInput{
		SKU:    req.SKU,
		Delta:  req.Delta,
		Reason: req.Reason,
	})
	if err != nil {
		return nil, err
	}
	return &MutationResult{Item: it, Removed: removed, Movement: s.lastMovement()}, nil
}

// GetMovements returns the movement journal, optionally filtered by SKU.
func (s *appService) GetMovements(ctx context.Context, sku string) (*MovementListResult, error) {
	sku = strings.ToUpper(strings.TrimSpace(sku))
	if sku == "" {
		return &MovementListResult{Movements: s.manager.Movements()}, nil
	}
	return &MovementListResult{Movements: s.manager.MovementsFor(sku), SKU: sku}, nil
}

// GetValuation returns aggregate totals over the whole inventory.
func (s *appService) GetValuation(ctx context.Context) (*ValuationResult, error) {
	return &ValuationResult{Valuation: s.manager.Valuation()}, nil
}

// LoadSnapshot replaces the in-memory state with the snapshot at path.
func (s *appService) LoadSnapshot(ctx context.Context, path string) error {
	return s.manager.Load(path)
}

// SaveSnapshot writes the full current state to path atomically.
func (s *appService) SaveSnapshot(ctx context.Context, path string) error {
	return s.manager.Save(path)
}

// SnapshotSchema returns the JSON Schema of the snapshot document.
func (s *appService) SnapshotSchema(ctx context.Context) ([]byte, error) {
	return snapshot.Schema()
}

// IsDirty reports whether mutations occurred since the last save or load.
func (s *appService) IsDirty(ctx context.Context) bool {
	return s.manager.Dirty()
}
