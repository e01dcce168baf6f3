package core_test

import (
	"errors"
	"testing"

	"stockroom/internal/core"
)

func TestReceiptInput_NormalizationAndValidation(t *testing.T) {
	tests := []struct {
		name     string
		input    core.ReceiptInput
		wantKind error // nil means valid
		wantSKU  string
	}{
		{
			name:    "Happy path",
			input:   core.ReceiptInput{SKU: "WIDGET-1", Quantity: 5, UnitCost: "2.50"},
			wantSKU: "WIDGET-1",
		},
		{
			name:    "Lowercase sku with whitespace",
			input:   core.ReceiptInput{SKU: "  apple ", Quantity: 1, UnitCost: "1"},
			wantSKU: "APPLE",
		},
		{
			name:    "Blank unit cost defaults to zero",
			input:   core.ReceiptInput{SKU: "A", Quantity: 1, UnitCost: ""},
			wantSKU: "A",
		},
		{
			name:     "Empty sku",
			input:    core.ReceiptInput{SKU: "", Quantity: 1, UnitCost: "1"},
			wantKind: core.ErrInvalidSKU,
		},
		{
			name:     "Whitespace-only sku",
			input:    core.ReceiptInput{SKU: "   ", Quantity: 1, UnitCost: "1"},
			wantKind: core.ErrInvalidSKU,
		},
		{
			name:     "Multi-token sku",
			input:    core.ReceiptInput{SKU: "wid get", Quantity: 1, UnitCost: "1"},
			wantKind: core.ErrInvalidSKU,
		},
		{
			name:     "Zero quantity",
			input:    core.ReceiptInput{SKU: "A", Quantity: 0, UnitCost: "1"},
			wantKind: core.ErrInvalidQuantity,
		},
		{
			name:     "Negative quantity",
			input:    core.ReceiptInput{SKU: "A", Quantity: -3, UnitCost: "1"},
			wantKind: core.ErrInvalidQuantity,
		},
		{
			name:     "Malformed unit cost",
			input:    core.ReceiptInput{SKU: "A", Quantity: 1, UnitCost: "1.2.3"},
			wantKind: core.ErrInvalidUnitCost,
		},
		{
			name:     "Negative unit cost",
			input:    core.ReceiptInput{SKU: "A", Quantity: 1, UnitCost: "-0.01"},
			wantKind: core.ErrInvalidUnitCost,
		},
		{
			name:     "Negative reorder level",
			input:    core.ReceiptInput{SKU: "A", Quantity: 1, UnitCost: "1", ReorderLevel: -2},
			wantKind: core.ErrInvalidQuantity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := tt.input
			in.Normalize()
			err := in.Validate()

			if tt.wantKind == nil {
				if err != nil {
					t.Errorf("unexpected error: %v, input: %+v", err, in)
				}
				if in.SKU != tt.wantSKU {
					t.Errorf("Expected sku %q after normalization, got %q", tt.wantSKU, in.SKU)
				}
				return
			}
			if !errors.Is(err, tt.wantKind) {
				t.Errorf("Expected error kind %v, got %v", tt.wantKind, err)
			}
			if !errors.Is(err, core.ErrInventory) {
				t.Errorf("Expected %v to wrap ErrInventory", err)
			}
		})
	}
}

func TestIssueInput_NormalizationAndValidation(t *testing.T) {
	tests := []struct {
		name     string
		input    core.IssueInput
		wantKind error
	}{
		{name: "Happy path", input: core.IssueInput{SKU: "widget", Quantity: 3}},
		{name: "Empty sku", input: core.IssueInput{SKU: " ", Quantity: 3}, wantKind: core.ErrInvalidSKU},
		{name: "Zero quantity", input: core.IssueInput{SKU: "A", Quantity: 0}, wantKind: core.ErrInvalidQuantity},
		{name: "Negative quantity", input: core.IssueInput{SKU: "A", Quantity: -1}, wantKind: core.ErrInvalidQuantity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := tt.input
			in.Normalize()
			err := in.Validate()

			if tt.wantKind == nil && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if tt.wantKind != nil && !errors.Is(err, tt.wantKind) {
				t.Errorf("Expected error kind %v, got %v", tt.wantKind, err)
			}
		})
	}
}

func TestAdjustmentInput_NormalizationAndValidation(t *testing.T) {
	tests := []struct {
		name     string
		input    core.AdjustmentInput
		wantKind error
	}{
		{name: "Positive delta", input: core.AdjustmentInput{SKU: "widget", Delta: 5}},
		{name: "Negative delta", input: core.AdjustmentInput{SKU: "widget", Delta: -5, Reason: "breakage"}},
		{name: "Zero delta", input: core.AdjustmentInput{SKU: "A", Delta: 0}, wantKind: core.ErrInvalidQuantity},
		{name: "Empty sku", input: core.AdjustmentInput{SKU: "", Delta: 1}, wantKind: core.ErrInvalidSKU},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := tt.input
			in.Normalize()
			err := in.Validate()

			if tt.wantKind == nil && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if tt.wantKind != nil && !errors.Is(err, tt.wantKind) {
				t.Errorf("Expected error kind %v, got %v", tt.wantKind, err)
			}
		})
	}
}
