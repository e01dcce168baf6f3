package core

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"stockroom/internal/snapshot"
)

// Manager holds the authoritative in-memory stock state: a mapping from SKU
// to item record plus the movement journal for this instance. All state is
// constructed fresh in NewManager and mutated only through the validated
// operations below; a failed operation leaves the mapping and the journal
// exactly as they were. Not safe for concurrent use (single-writer,
// single-process usage).
type Manager struct {
	items   map[string]*Item
	journal *Journal

	// Journal length at the last successful Save or Load. Mutations past
	// this mark make the manager dirty.
	saved int
}

// NewManager returns an empty manager with its own freshly created journal.
func NewManager() *Manager {
	return &Manager{
		items:   make(map[string]*Item),
		journal: NewJournal(),
	}
}

// ── Mutations ─────────────────────────────────────────────────────────────────

// Receive records a goods receipt: creates the record or increments an
// existing one, recalculating the unit cost as the weighted average of all
// receipts. Name and reorder level on an existing record change only when
// the input provides them.
func (m *Manager) Receive(in ReceiptInput) (*Item, error) {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	// Validate guarantees the cost parses.
	cost, _ := decimal.NewFromString(in.UnitCost)

	it, ok := m.items[in.SKU]
	if !ok {
		it = &Item{
			SKU:          in.SKU,
			Name:         in.Name,
			Quantity:     in.Quantity,
			UnitCost:     cost,
			ReorderLevel: in.ReorderLevel,
		}
		m.items[in.SKU] = it
	} else {
		// Weighted average cost: new_cost = (old_qty * old_cost + qty * cost) / (old_qty + qty)
		oldQty := decimal.NewFromInt(it.Quantity)
		qty := decimal.NewFromInt(in.Quantity)
		newQty := oldQty.Add(qty)
		it.UnitCost = oldQty.Mul(it.UnitCost).Add(qty.Mul(cost)).Div(newQty)
		it.Quantity += in.Quantity
		if in.Name != "" {
			it.Name = in.Name
		}
		if in.ReorderLevel > 0 {
			it.ReorderLevel = in.ReorderLevel
		}
	}

	notes := in.Notes
	if notes == "" {
		notes = fmt.Sprintf("Goods receipt: %s × %d units @ %s", in.SKU, in.Quantity, cost.String())
	}
	m.journal.Append(Movement{
		ID:         uuid.NewString(),
		Type:       MovementReceipt,
		SKU:        in.SKU,
		Quantity:   in.Quantity,
		UnitCost:   cost,
		Notes:      notes,
		OccurredAt: time.Now(),
	})

	out := *it
	return &out, nil
}

// Issue records a goods issue: decrements the record and deletes it when it
// reaches exactly zero. The returned bool reports whether the record was
// removed; the item pointer is nil in that case.
func (m *Manager) Issue(in IssueInput) (*Item, bool, error) {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, false, err
	}

	it, ok := m.items[in.SKU]
	if !ok {
		return nil, false, fmt.Errorf("%w: %s", ErrItemNotFound, in.SKU)
	}
	if in.Quantity > it.Quantity {
		return nil, false, fmt.Errorf("%w: %s has %d on hand, requested %d",
			ErrInsufficientStock, in.SKU, it.Quantity, in.Quantity)
	}

	it.Quantity -= in.Quantity
	removed := it.Quantity == 0
	if removed {
		delete(m.items, in.SKU)
	}

	notes := in.Notes
	if notes == "" {
		notes = fmt.Sprintf("Goods issue: %s × %d units", in.SKU, in.Quantity)
	}
	m.journal.Append(Movement{
		ID:         uuid.NewString(),
		Type:       MovementIssue,
		SKU:        in.SKU,
		Quantity:   -in.Quantity,
		Notes:      notes,
		OccurredAt: time.Now(),
	})

	if removed {
		return nil, true, nil
	}
	out := *it
	return &out, false, nil
}

// Adjust records a stocktake correction: applies a signed delta to an
// existing record. The resulting quantity must stay non-negative; a result
// of exactly zero deletes the record. Unit cost is unchanged because an
// adjustment corrects a count, not a purchase.
func (m *Manager) Adjust(in AdjustmentInput) (*Item, bool, error) {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, false, err
	}

	it, ok := m.items[in.SKU]
	if !ok {
		return nil, false, fmt.Errorf("%w: %s", ErrItemNotFound, in.SKU)
	}
	newQty := it.Quantity + in.Delta
	if newQty < 0 {
		return nil, false, fmt.Errorf("%w: %s has %d on hand, adjustment %+d",
			ErrInsufficientStock, in.SKU, it.Quantity, in.Delta)
	}

	it.Quantity = newQty
	removed := newQty == 0
	if removed {
		delete(m.items, in.SKU)
	}

	notes := in.Reason
	if notes == "" {
		notes = fmt.Sprintf("Stock adjustment: %s %+d units", in.SKU, in.Delta)
	}
	m.journal.Append(Movement{
		ID:         uuid.NewString(),
		Type:       MovementAdjustment,
		SKU:        in.SKU,
		Quantity:   in.Delta,
		Notes:      notes,
		OccurredAt: time.Now(),
	})

	if removed {
		return nil, true, nil
	}
	out := *it
	return &out, false, nil
}

// ── Queries ───────────────────────────────────────────────────────────────────

// Item returns a copy of one record. Callers never alias manager state.
func (m *Manager) Item(sku string) (*Item, error) {
	key := strings.ToUpper(strings.TrimSpace(sku))
	it, ok := m.items[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrItemNotFound, key)
	}
	out := *it
	return &out, nil
}

// StockLevels returns a read view of every record, sorted by SKU.
func (m *Manager) StockLevels() []StockLevel {
	levels := make([]StockLevel, 0, len(m.items))
	for _, it := range m.items {
		levels = append(levels, StockLevel{
			SKU:          it.SKU,
			Name:         it.Name,
			OnHand:       it.Quantity,
			UnitCost:     it.UnitCost,
			Value:        it.Value(),
			ReorderLevel: it.ReorderLevel,
			Low:          it.ReorderLevel > 0 && it.Quantity <= it.ReorderLevel,
		})
	}
	sort.Slice(levels, func(i, j int) bool { return levels[i].SKU < levels[j].SKU })
	return levels
}

// LowStock returns the levels at or below their reorder threshold, sorted by
// SKU. Records with no threshold (reorder level 0) are never low.
func (m *Manager) LowStock() []StockLevel {
	var low []StockLevel
	for _, lvl := range m.StockLevels() {
		if lvl.Low {
			low = append(low, lvl)
		}
	}
	return low
}

// Valuation returns the aggregate totals over all records.
func (m *Manager) Valuation() Valuation {
	v := Valuation{TotalValue: decimal.Zero}
	for _, it := range m.items {
		v.ItemCount++
		v.TotalUnits += it.Quantity
		v.TotalValue = v.TotalValue.Add(it.Value())
	}
	return v
}

// Movements returns a copy of the full movement journal in append order.
func (m *Manager) Movements() []Movement {
	return m.journal.Entries()
}

// MovementsFor returns a copy of the journal entries for one SKU.
func (m *Manager) MovementsFor(sku string) []Movement {
	return m.journal.EntriesFor(strings.ToUpper(strings.TrimSpace(sku)))
}

// ── Persistence ───────────────────────────────────────────────────────────────

// Load replaces the in-memory state with the snapshot at path. The read is
// all-or-nothing: every record is validated into a fresh mapping before the
// swap, so any failure (missing file, malformed document, bad record) leaves
// the prior state untouched. Failures wrap ErrBadSnapshot and keep the
// underlying cause in the chain, so errors.Is(err, fs.ErrNotExist) still
// reports a missing file.
func (m *Manager) Load(path string) error {
	snap, err := snapshot.Read(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBadSnapshot, err)
	}

	items := make(map[string]*Item, len(snap.Items))
	for _, rec := range snap.Items {
		sku := strings.ToUpper(strings.TrimSpace(rec.SKU))
		if sku == "" || len(strings.Fields(sku)) != 1 {
			return fmt.Errorf("%w: bad sku %q", ErrBadSnapshot, rec.SKU)
		}
		if _, dup := items[sku]; dup {
			return fmt.Errorf("%w: duplicate sku %s", ErrBadSnapshot, sku)
		}
		if rec.Quantity <= 0 {
			return fmt.Errorf("%w: %s: quantity must be positive, got %d", ErrBadSnapshot, sku, rec.Quantity)
		}
		cost, err := decimal.NewFromString(rec.UnitCost)
		if err != nil {
			return fmt.Errorf("%w: %s: unit cost %q: %v", ErrBadSnapshot, sku, rec.UnitCost, err)
		}
		if cost.IsNegative() {
			return fmt.Errorf("%w: %s: unit cost cannot be negative, got %s", ErrBadSnapshot, sku, rec.UnitCost)
		}
		if rec.ReorderLevel < 0 {
			return fmt.Errorf("%w: %s: reorder level cannot be negative, got %d", ErrBadSnapshot, sku, rec.ReorderLevel)
		}
		items[sku] = &Item{
			SKU:          sku,
			Name:         rec.Name,
			Quantity:     rec.Quantity,
			UnitCost:     cost,
			ReorderLevel: rec.ReorderLevel,
		}
	}

	m.items = items
	m.saved = m.journal.Len()
	return nil
}

// Save writes the full current state to path atomically: the codec writes a
// temp file in the same directory and renames it over path, so on any failure
// the prior file content remains. IO failures wrap ErrBadSnapshot.
func (m *Manager) Save(path string) error {
	skus := make([]string, 0, len(m.items))
	for sku := range m.items {
		skus = append(skus, sku)
	}
	sort.Strings(skus)

	snap := &snapshot.Snapshot{
		Version: snapshot.FormatVersion,
		SavedAt: time.Now().UTC().Format(time.RFC3339),
		Items:   make([]snapshot.Record, 0, len(skus)),
	}
	for _, sku := range skus {
		it := m.items[sku]
		snap.Items = append(snap.Items, snapshot.Record{
			SKU:          it.SKU,
			Name:         it.Name,
			Quantity:     it.Quantity,
			UnitCost:     it.UnitCost.String(),
			ReorderLevel: it.ReorderLevel,
		})
	}

	if err := snapshot.Write(path, snap); err != nil {
		return fmt.Errorf("%w: %w", ErrBadSnapshot, err)
	}
	m.saved = m.journal.Len()
	return nil
}

// Dirty reports whether mutations occurred since the last successful Save or
// Load.
func (m *Manager) Dirty() bool {
	return m.journal.Len() != m.saved
}
