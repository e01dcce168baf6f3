package core

import (
	"errors"
	"fmt"
)

// Error kinds returned by Manager operations. Callers branch with errors.Is;
// every kind wraps ErrInventory so a single check matches any stock failure.
// A failed operation never changes manager state.
var (
	ErrInventory = errors.New("inventory")

	ErrInvalidSKU        = fmt.Errorf("%w: invalid sku", ErrInventory)
	ErrInvalidQuantity   = fmt.Errorf("%w: invalid quantity", ErrInventory)
	ErrInvalidUnitCost   = fmt.Errorf("%w: invalid unit cost", ErrInventory)
	ErrItemNotFound      = fmt.Errorf("%w: item not found", ErrInventory)
	ErrInsufficientStock = fmt.Errorf("%w: insufficient stock", ErrInventory)
	ErrBadSnapshot       = fmt.Errorf("%w: bad snapshot", ErrInventory)
)
