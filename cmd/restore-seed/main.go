// restore-seed is a one-shot tool that writes the demo inventory snapshot.
// Run it to get a known starting state for manual testing.
//
// Usage: go run ./cmd/restore-seed
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"stockroom/internal/core"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	path := os.Getenv("STOCKROOM_FILE")
	if path == "" {
		path = "inventory.json"
	}

	m := core.NewManager()

	log.Println("Receiving seed stock...")
	if _, err := m.Receive(core.ReceiptInput{SKU: "APPLE", Name: "Apple", Quantity: 10, UnitCost: "0.40", ReorderLevel: 4}); err != nil {
		log.Fatalf("Failed to receive APPLE: %v", err)
	}
	if _, _, err := m.Issue(core.IssueInput{SKU: "APPLE", Quantity: 3, Notes: "demo issue"}); err != nil {
		log.Fatalf("Failed to issue APPLE: %v", err)
	}
	if _, err := m.Receive(core.ReceiptInput{SKU: "BANANA", Name: "Banana", Quantity: 5, UnitCost: "0.25", ReorderLevel: 2}); err != nil {
		log.Fatalf("Failed to receive BANANA: %v", err)
	}

	log.Printf("Writing snapshot to %s...", path)
	if err := m.Save(path); err != nil {
		log.Fatalf("Failed to save snapshot: %v", err)
	}

	fmt.Printf("%-10s %8s %10s\n", "SKU", "ON HAND", "UNIT COST")
	fmt.Println(strings.Repeat("-", 32))
	for _, lvl := range m.StockLevels() {
		fmt.Printf("%-10s %8d %10s\n", lvl.SKU, lvl.OnHand, lvl.UnitCost.StringFixed(2))
	}

	log.Println("Seed snapshot written successfully.")
}
