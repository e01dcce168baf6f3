package core

// Journal is the append-only movement log owned by a single Manager.
// Entries are never mutated or removed, and a journal is never shared:
// NewManager constructs a fresh one, so mutations on one manager can
// never surface in another's log.
type Journal struct {
	entries []Movement
}

// NewJournal returns an empty journal.
func NewJournal() *Journal {
	return &Journal{}
}

// Append assigns the next gapless sequence number (1-based), stores the
// movement and returns it. The caller fills every other field; Seq is
// owned by the journal.
func (j *Journal) Append(mv Movement) Movement {
	mv.Seq = int64(len(j.entries)) + 1
	j.entries = append(j.entries, mv)
	return mv
}

// Len returns the number of entries.
func (j *Journal) Len() int {
	return len(j.entries)
}

// Entries returns a copy of all entries in append order. Mutating the
// returned slice does not affect the journal.
func (j *Journal) Entries() []Movement {
	out := make([]Movement, len(j.entries))
	copy(out, j.entries)
	return out
}

// EntriesFor returns a copy of the entries recorded for one SKU, in
// append order.
func (j *Journal) EntriesFor(sku string) []Movement {
	var out []Movement
	for _, mv := range j.entries {
		if mv.SKU == sku {
			out = append(out, mv)
		}
	}
	return out
}
