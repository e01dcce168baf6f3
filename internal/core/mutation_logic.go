package core

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ReceiptInput describes a goods receipt: a quantity of one SKU arriving at a
// unit cost. UnitCost travels as a string and is parsed during validation.
type ReceiptInput struct {
	SKU          string
	Name         string
	Quantity     int64
	UnitCost     string
	ReorderLevel int64
	Notes        string
}

// IssueInput describes a goods issue: a quantity of one SKU leaving stock.
type IssueInput struct {
	SKU      string
	Quantity int64
	Notes    string
}

// AdjustmentInput describes a stocktake correction: a signed delta applied to
// an existing record, with the reason recorded in the movement log.
type AdjustmentInput struct {
	SKU    string
	Delta  int64
	Reason string
}

// Normalize cleans up user input dealing with common formatting issues.
func (r *ReceiptInput) Normalize() {
	r.SKU = strings.ToUpper(strings.TrimSpace(r.SKU))
	r.Name = strings.TrimSpace(r.Name)
	r.Notes = strings.TrimSpace(r.Notes)

	if strings.TrimSpace(r.UnitCost) == "" {
		r.UnitCost = "0"
	}
}

// Validate enforces the receipt rules. Every failure wraps one of the
// inventory error kinds so callers can branch with errors.Is.
func (r *ReceiptInput) Validate() error {
	if r.SKU == "" {
		return fmt.Errorf("%w: sku is required", ErrInvalidSKU)
	}
	if len(strings.Fields(r.SKU)) != 1 {
		return fmt.Errorf("%w: sku %q must be a single token", ErrInvalidSKU, r.SKU)
	}

	if r.Quantity <= 0 {
		return fmt.Errorf("%w: receipt quantity must be positive, got %d", ErrInvalidQuantity, r.Quantity)
	}

	cost, err := decimal.NewFromString(r.UnitCost)
	if err != nil {
		return fmt.Errorf("%w: unit cost %q: %v", ErrInvalidUnitCost, r.UnitCost, err)
	}
	if cost.IsNegative() {
		return fmt.Errorf("%w: unit cost cannot be negative, got %s", ErrInvalidUnitCost, r.UnitCost)
	}

	if r.ReorderLevel < 0 {
		return fmt.Errorf("%w: reorder level cannot be negative, got %d", ErrInvalidQuantity, r.ReorderLevel)
	}

	return nil
}

// Normalize cleans up user input dealing with common formatting issues.
func (i *IssueInput) Normalize() {
	i.SKU = strings.ToUpper(strings.TrimSpace(i.SKU))
	i.Notes = strings.TrimSpace(i.Notes)
}

// Validate enforces the issue rules.
func (i *IssueInput) Validate() error {
	if i.SKU == "" {
		return fmt.Errorf("%w: sku is required", ErrInvalidSKU)
	}
	if len(strings.Fields(i.SKU)) != 1 {
		return fmt.Errorf("%w: sku %q must be a single token", ErrInvalidSKU, i.SKU)
	}

	if i.Quantity <= 0 {
		return fmt.Errorf("%w: issue quantity must be positive, got %d", ErrInvalidQuantity, i.Quantity)
	}

	return nil
}

// Normalize cleans up user input dealing with common formatting issues.
func (a *AdjustmentInput) Normalize() {
	a.SKU = strings.ToUpper(strings.TrimSpace(a.SKU))
	a.Reason = strings.TrimSpace(a.Reason)
}

// Validate enforces the adjustment rules. A zero delta is rejected: an
// adjustment that changes nothing would still append a movement, and the
// log records only real changes.
func (a *AdjustmentInput) Validate() error {
	if a.SKU == "" {
		return fmt.Errorf("%w: sku is required", ErrInvalidSKU)
	}
	if len(strings.Fields(a.SKU)) != 1 {
		return fmt.Errorf("%w: sku %q must be a single token", ErrInvalidSKU, a.SKU)
	}

	if a.Delta == 0 {
		return fmt.Errorf("%w: adjustment delta must be non-zero", ErrInvalidQuantity)
	}

	return nil
}
