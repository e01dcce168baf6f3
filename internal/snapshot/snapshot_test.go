package snapshot_test

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"stockroom/internal/snapshot"
)

func TestSnapshot_WriteReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.json")

	in := &snapshot.Snapshot{
		Version: snapshot.FormatVersion,
		SavedAt: "2026-01-02T15:04:05Z",
		Items: []snapshot.Record{
			{SKU: "ANVIL", Name: "Anvil", Quantity: 10, UnitCost: "120", ReorderLevel: 2},
			{SKU: "BOLT", Quantity: 2, UnitCost: "0.50"},
		},
	}
	if err := snapshot.Write(path, in); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	out, err := snapshot.Read(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if out.Version != in.Version || out.SavedAt != in.SavedAt {
		t.Errorf("Expected header %d/%s, got %d/%s", in.Version, in.SavedAt, out.Version, out.SavedAt)
	}
	if len(out.Items) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(out.Items))
	}
	for i := range in.Items {
		if out.Items[i] != in.Items[i] {
			t.Errorf("Record %d: expected %+v, got %+v", i, in.Items[i], out.Items[i])
		}
	}

	// A successful write leaves no temp file behind.
	if _, err := os.Stat(path + ".tmp"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected temp file to be gone, stat returned %v", err)
	}
}

func TestSnapshot_WriteCleansUpOnRenameFailure(t *testing.T) {
	dir := t.TempDir()
	// A directory at the target path makes the rename fail.
	path := filepath.Join(dir, "blocked")
	if err := os.Mkdir(path, 0755); err != nil {
		t.Fatalf("Mkdir failed: %v", err)
	}

	err := snapshot.Write(path, &snapshot.Snapshot{Version: snapshot.FormatVersion})
	if err == nil {
		t.Fatalf("Expected write to fail when the target is a directory")
	}
	if _, err := os.Stat(path + ".tmp"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected temp file cleaned up after failed rename, stat returned %v", err)
	}
}

func TestSnapshot_ReadMissingFile(t *testing.T) {
	_, err := snapshot.Read(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected fs.ErrNotExist, got %v", err)
	}
}

func TestSnapshot_ReadRejectsUnknownVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.json")
	content := `{"version": 2, "saved_at": "2026-01-02T15:04:05Z", "items": []}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if _, err := snapshot.Read(path); err == nil {
		t.Errorf("Expected an error for version 2")
	}
}

func TestSnapshot_Schema(t *testing.T) {
	data, err := snapshot.Schema()
	if err != nil {
		t.Fatalf("Schema failed: %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("Schema is not valid JSON: %v", err)
	}
	props, ok := doc["properties"].(map[string]any)
	if !ok {
		t.Fatalf("Expected inlined properties at the top level, got %v", doc)
	}
	for _, field := range []string{"version", "saved_at", "items"} {
		if _, ok := props[field]; !ok {
			t.Errorf("Expected schema property %q", field)
		}
	}
	if doc["additionalProperties"] != false {
		t.Errorf("Expected additionalProperties=false, got %v", doc["additionalProperties"])
	}
}
