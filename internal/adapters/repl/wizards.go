package repl

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"

	"stockroom/internal/app"
)

// handleRestock runs an interactive bulk receipt session: collect lines
// first, then apply them all with a shared note.
func handleRestock(ctx context.Context, reader *bufio.Reader, svc app.ApplicationService) {
	fmt.Println("Bulk goods receipt.")
	fmt.Println("Enter receipt lines. Type 'done' when finished, 'cancel' to abort.")
	fmt.Println("Format per line: <sku> <quantity> [unit-cost]")
	fmt.Println("  Example: WIDGET 10")
	fmt.Println("  Example: WIDGET 5 2.50")

	var lines []app.ReceiveStockRequest
	lineNum := 1
	for {
		fmt.Printf("  Line %d: ", lineNum)
		raw, readErr := reader.ReadString('\n')
		raw = strings.TrimSpace(raw)
		if strings.ToLower(raw) == "cancel" {
			fmt.Println("Restock cancelled.")
			return
		}
		if strings.ToLower(raw) == "done" || (raw == "" && readErr != nil) {
			break
		}
		if raw == "" {
			continue
		}

		parts := strings.Fields(raw)
		if len(parts) < 2 {
			fmt.Println("  Invalid format. Use: <sku> <quantity> [unit-cost]")
			continue
		}

		qty, err := strconv.ParseInt(parts[1], 10, 64)
		if err != nil || qty <= 0 {
			fmt.Println("  Invalid quantity.")
			continue
		}

		req := app.ReceiveStockRequest{SKU: parts[0], Quantity: qty}
		if len(parts) >= 3 {
			req.UnitCost = parts[2]
		}
		lines = append(lines, req)
		lineNum++
	}

	if len(lines) == 0 {
		fmt.Println("No lines entered. Nothing received.")
		return
	}

	fmt.Print("Notes (optional): ")
	notes, _ := reader.ReadString('\n')
	notes = strings.TrimSpace(notes)

	for _, req := range lines {
		req.Notes = notes
		result, err := svc.ReceiveStock(ctx, req)
		if err != nil {
			fmt.Printf("  %s: %v\n", strings.ToUpper(req.SKU), err)
			continue
		}
		fmt.Printf("  Received %d × %s (%d on hand).\n", req.Quantity, result.Item.SKU, result.Item.Quantity)
	}
}
