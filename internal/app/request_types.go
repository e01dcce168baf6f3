package app

// ReceiveStockRequest is the input for recording a goods receipt.
type ReceiveStockRequest struct {
	SKU          string
	Name         string // optional display name
	Quantity     int64
	UnitCost     string // decimal string; empty means 0
	ReorderLevel int64  // 0 means no threshold
	Notes        string
}

// IssueStockRequest is the input for recording a goods issue.
type IssueStockRequest struct {
	SKU      string
	Quantity int64
	Notes    string
}

// AdjustStockRequest is the input for a signed stocktake correction.
type AdjustStockRequest struct {
	SKU    string
	Delta  int64
	Reason string
}
