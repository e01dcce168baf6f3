// verify-snapshot is a read-only checker for an inventory snapshot file.
// It parses the document, reports its content checksum, and scans every
// record against the invariants the loader enforces. The first violation
// exits non-zero.
//
// Usage: go run ./cmd/verify-snapshot [path]
package main

import (
	"crypto/sha256"
	"encoding/hex"
	"log"
	"os"
	"strings"
	"time"

	"stockroom/internal/snapshot"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

func main() {
	_ = godotenv.Load()

	path := os.Getenv("STOCKROOM_FILE")
	if path == "" {
		path = "inventory.json"
	}
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	log.Printf("[READ] %s (sha256 %s)", path, checksumFile(path))

	snap := parseSnapshot(path)

	totalUnits, totalValue := checkRecords(snap)

	log.Printf("[DONE] %d records, %d units, total value %s. All invariants hold.",
		len(snap.Items), totalUnits, totalValue.StringFixed(2))
}

func checksumFile(path string) string {
	bytes, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("[READ] failed to read %s: %v", path, err)
	}

	hash := sha256.Sum256(bytes)
	return hex.EncodeToString(hash[:])
}

func parseSnapshot(path string) *snapshot.Snapshot {
	snap, err := snapshot.Read(path)
	if err != nil {
		log.Fatalf("[PARSE] failed: %v", err)
	}

	if _, err := time.Parse(time.RFC3339, snap.SavedAt); err != nil {
		log.Fatalf("[PARSE] saved_at %q is not RFC 3339: %v", snap.SavedAt, err)
	}

	log.Printf("[PARSE] version %d, saved at %s, %d records", snap.Version, snap.SavedAt, len(snap.Items))
	return snap
}

func checkRecords(snap *snapshot.Snapshot) (int64, decimal.Decimal) {
	seen := make(map[string]bool)
	var totalUnits int64
	totalValue := decimal.Zero

	for i, rec := range snap.Items {
		sku := strings.ToUpper(strings.TrimSpace(rec.SKU))
		if sku == "" || len(strings.Fields(sku)) != 1 {
			log.Fatalf("[CHECK] record %d: bad sku %q", i, rec.SKU)
		}
		if seen[sku] {
			log.Fatalf("[CHECK] duplicate sku %s", sku)
		}
		seen[sku] = true

		if rec.Quantity <= 0 {
			log.Fatalf("[CHECK] %s: quantity must be positive, got %d", sku, rec.Quantity)
		}

		cost, err := decimal.NewFromString(rec.UnitCost)
		if err != nil {
			log.Fatalf("[CHECK] %s: unit cost %q: %v", sku, rec.UnitCost, err)
		}
		if cost.IsNegative() {
			log.Fatalf("[CHECK] %s: unit cost cannot be negative, got %s", sku, rec.UnitCost)
		}

		if rec.ReorderLevel < 0 {
			log.Fatalf("[CHECK] %s: reorder level cannot be negative, got %d", sku, rec.ReorderLevel)
		}

		totalUnits += rec.Quantity
		totalValue = totalValue.Add(decimal.NewFromInt(rec.Quantity).Mul(cost))
	}

	log.Printf("[CHECK] %d records OK", len(snap.Items))
	return totalUnits, totalValue
}
