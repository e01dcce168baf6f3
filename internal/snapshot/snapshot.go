// Package snapshot implements the on-disk inventory format: a versioned JSON
// document, written atomically and read all-or-nothing. It knows nothing
// about the in-memory domain types; callers convert to and from Record.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/invopop/jsonschema"
)

// FormatVersion is the document version this codec reads and writes.
const FormatVersion = 1

// Record is one stock line on the wire. Unit cost travels as a string so the
// round trip is exact regardless of magnitude or scale.
type Record struct {
	SKU          string `json:"sku" jsonschema_description:"Unique stock keeping unit, uppercase single token"`
	Name         string `json:"name,omitempty" jsonschema_description:"Optional display name"`
	Quantity     int64  `json:"quantity" jsonschema_description:"Units on hand, always positive"`
	UnitCost     string `json:"unit_cost" jsonschema_description:"Weighted average unit cost as a decimal string"`
	ReorderLevel int64  `json:"reorder_level,omitempty" jsonschema_description:"Restock threshold; 0 means no threshold"`
}

// Snapshot is the full on-disk document.
type Snapshot struct {
	Version int      `json:"version" jsonschema_description:"Snapshot format version, currently 1"`
	SavedAt string   `json:"saved_at" jsonschema_description:"RFC 3339 timestamp of the save"`
	Items   []Record `json:"items" jsonschema_description:"Every stock record at save time"`
}

// Read opens and decodes the snapshot at path. Unknown format versions are
// rejected. The file handle is held only for the duration of the call; a
// missing file surfaces as fs.ErrNotExist in the error chain.
func Read(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot: %w", err)
	}
	if snap.Version != FormatVersion {
		return nil, fmt.Errorf("unsupported snapshot version %d, want %d", snap.Version, FormatVersion)
	}
	return &snap, nil
}

// Write encodes the snapshot and writes it to path atomically: the document
// lands in a temp file in the same directory first, then a rename swaps it
// in, so a failure partway never leaves a truncated file at path.
func Write(path string, snap *Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	data = append(data, '\n')

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath) // Clean up
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}

// Schema returns the JSON Schema of the snapshot document, indented.
func Schema() ([]byte, error) {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v Snapshot
	schema := reflector.Reflect(v)

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode schema: %w", err)
	}
	return data, nil
}
