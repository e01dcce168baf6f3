package core_test

import (
	"testing"

	"stockroom/internal/core"
)

func TestJournal_AppendAssignsGaplessSeq(t *testing.T) {
	j := core.NewJournal()

	for i := 1; i <= 4; i++ {
		mv := j.Append(core.Movement{Type: core.MovementReceipt, SKU: "A", Quantity: 1})
		if mv.Seq != int64(i) {
			t.Errorf("Expected seq %d, got %d", i, mv.Seq)
		}
	}
	if j.Len() != 4 {
		t.Errorf("Expected 4 entries, got %d", j.Len())
	}
}

func TestJournal_EntriesForFilters(t *testing.T) {
	j := core.NewJournal()
	j.Append(core.Movement{Type: core.MovementReceipt, SKU: "A", Quantity: 2})
	j.Append(core.Movement{Type: core.MovementReceipt, SKU: "B", Quantity: 3})
	j.Append(core.Movement{Type: core.MovementIssue, SKU: "A", Quantity: -1})

	got := j.EntriesFor("A")
	if len(got) != 2 {
		t.Fatalf("Expected 2 entries for A, got %d", len(got))
	}
	if got[0].Seq != 1 || got[1].Seq != 3 {
		t.Errorf("Expected entries 1 and 3 for A, got %d and %d", got[0].Seq, got[1].Seq)
	}
	if len(j.EntriesFor("C")) != 0 {
		t.Errorf("Expected no entries for C")
	}
}

func TestJournal_EntriesAreDetached(t *testing.T) {
	j := core.NewJournal()
	j.Append(core.Movement{Type: core.MovementReceipt, SKU: "A", Quantity: 2})

	out := j.Entries()
	out[0].SKU = "TAMPERED"

	if j.Entries()[0].SKU != "A" {
		t.Errorf("Expected journal unaffected by caller mutation, got %s", j.Entries()[0].SKU)
	}
}
