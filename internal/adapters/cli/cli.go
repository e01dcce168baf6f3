package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"strconv"
	"strings"

	"stockroom/internal/app"
	"stockroom/internal/core"
)

// Run executes a one-shot CLI command and exits on failure.
// args is os.Args[1:], so the first element is the subcommand name.
// Mutating subcommands follow load, operate, save: the updated state is
// written back to snapshotPath before the confirmation prints.
func Run(ctx context.Context, svc app.ApplicationService, snapshotPath string, args []string) {
	// The schema is static; it needs no inventory state.
	if args[0] == "schema" {
		data, err := svc.SnapshotSchema(ctx)
		if err != nil {
			log.Fatalf("Failed to generate schema: %v", err)
		}
		fmt.Println(string(data))
		return
	}

	// Start from the last saved state. A missing snapshot just means a
	// fresh inventory.
	if err := svc.LoadSnapshot(ctx, snapshotPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Printf("No snapshot at %s, starting with an empty inventory", snapshotPath)
		} else {
			log.Fatalf("Failed to load snapshot: %v", err)
		}
	}

	switch args[0] {
	case "stock", "levels":
		result, err := svc.GetStockLevels(ctx)
		if err != nil {
			log.Fatalf("Failed to get stock levels: %v", err)
		}
		printStockLevels("STOCK LEVELS", result)

	case "low":
		result, err := svc.GetLowStock(ctx)
		if err != nil {
			log.Fatalf("Failed to get low stock: %v", err)
		}
		if len(result.Levels) == 0 {
			fmt.Println("All records are above their reorder thresholds.")
			return
		}
		printStockLevels("LOW STOCK", result)

	case "item", "i":
		if len(args) < 2 {
			log.Fatal("Usage: app item <sku>")
		}
		result, err := svc.GetItem(ctx, args[1])
		if err != nil {
			log.Fatalf("Lookup failed: %v", err)
		}
		printItem(result.Item)

	case "receive", "rec":
		if len(args) < 3 {
			log.Fatal("Usage: app receive <sku> <qty> [unit-cost] [name]")
		}
		req := app.ReceiveStockRequest{SKU: args[1], Quantity: parseCount(args[2])}
		if len(args) >= 4 {
			req.UnitCost = args[3]
		}
		if len(args) >= 5 {
			req.Name = strings.Join(args[4:], " ")
		}
		result, err := svc.ReceiveStock(ctx, req)
		if err != nil {
			log.Fatalf("Receive failed: %v", err)
		}
		save(ctx, svc, snapshotPath)
		fmt.Printf("Received %d × %s @ %s (%d on hand).\n",
			req.Quantity, result.Item.SKU, result.Item.UnitCost.StringFixed(2), result.Item.Quantity)

	case "issue":
		if len(args) < 3 {
			log.Fatal("Usage: app issue <sku> <qty>")
		}
		result, err := svc.IssueStock(ctx, app.IssueStockRequest{SKU: args[1], Quantity: parseCount(args[2])})
		if err != nil {
			log.Fatalf("Issue failed: %v", err)
		}
		save(ctx, svc, snapshotPath)
		if result.Removed {
			fmt.Printf("Issued %s × %s. Record removed at zero.\n", args[2], result.Movement.SKU)
		} else {
			fmt.Printf("Issued %s × %s (%d on hand).\n", args[2], result.Item.SKU, result.Item.Quantity)
		}

	case "adjust":
		if len(args) < 3 {
			log.Fatal("Usage: app adjust <sku> <delta> [reason]")
		}
		delta, err := strconv.ParseInt(args[2], 10, 64)
		if err != nil {
			log.Fatalf("Invalid delta: %s", args[2])
		}
		result, err := svc.AdjustStock(ctx, app.AdjustStockRequest{
			SKU:    args[1],
			Delta:  delta,
			Reason: strings.Join(args[3:], " "),
		})
		if err != nil {
			log.Fatalf("Adjust failed: %v", err)
		}
		save(ctx, svc, snapshotPath)
		if result.Removed {
			fmt.Printf("Adjusted %s to zero. Record removed.\n", result.Movement.SKU)
		} else {
			fmt.Printf("Adjusted %s by %+d (%d on hand).\n", result.Item.SKU, delta, result.Item.Quantity)
		}

	case "log", "movements":
		sku := ""
		if len(args) >= 2 {
			sku = args[1]
		}
		result, err := svc.GetMovements(ctx, sku)
		if err != nil {
			log.Fatalf("Failed to get movements: %v", err)
		}
		printMovements(result)

	case "value", "valuation":
		result, err := svc.GetValuation(ctx)
		if err != nil {
			log.Fatalf("Failed to get valuation: %v", err)
		}
		printValuation(result)

	default:
		log.Fatalf("Unknown command: %s\nAvailable: stock, low, item, receive, issue, adjust, log, value, schema", args[0])
	}
}

// parseCount parses a whole-number quantity argument. Range rules are the
// core's job; only unparseable input dies here.
func parseCount(raw string) int64 {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		log.Fatalf("Invalid quantity: %s", raw)
	}
	return n
}

func save(ctx context.Context, svc app.ApplicationService, path string) {
	if err := svc.SaveSnapshot(ctx, path); err != nil {
		log.Fatalf("Failed to save snapshot: %v", err)
	}
}

func printStockLevels(title string, result *app.StockResult) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 78))
	fmt.Printf("  %s\n", title)
	fmt.Println(strings.Repeat("=", 78))
	if len(result.Levels) == 0 {
		fmt.Println("  No stock records found.")
		fmt.Println(strings.Repeat("=", 78))
		return
	}
	fmt.Printf("  %-12s %-26s %8s %10s %12s  %s\n", "SKU", "NAME", "ON HAND", "UNIT COST", "VALUE", "LOW")
	fmt.Println(strings.Repeat("-", 78))
	for _, lvl := range result.Levels {
		low := ""
		if lvl.Low {
			low = "LOW"
		}
		fmt.Printf("  %-12s %-26s %8d %10s %12s  %s\n",
			lvl.SKU, lvl.Name, lvl.OnHand, lvl.UnitCost.StringFixed(2), lvl.Value.StringFixed(2), low)
	}
	fmt.Println(strings.Repeat("=", 78))
}

func printItem(it *core.Item) {
	fmt.Println()
	fmt.Println(strings.Repeat("-", 50))
	fmt.Printf("  SKU:           %s\n", it.SKU)
	if it.Name != "" {
		fmt.Printf("  Name:          %s\n", it.Name)
	}
	fmt.Printf("  On hand:       %d\n", it.Quantity)
	fmt.Printf("  Unit cost:     %s\n", it.UnitCost.StringFixed(2))
	fmt.Printf("  Value:         %s\n", it.Value().StringFixed(2))
	if it.ReorderLevel > 0 {
		fmt.Printf("  Reorder level: %d\n", it.ReorderLevel)
	}
	fmt.Println(strings.Repeat("-", 50))
}

func printMovements(result *app.MovementListResult) {
	title := "MOVEMENT LOG"
	if result.SKU != "" {
		title = "MOVEMENT LOG: " + result.SKU
	}
	fmt.Println()
	fmt.Println(strings.Repeat("=", 86))
	fmt.Printf("  %s\n", title)
	fmt.Println(strings.Repeat("=", 86))
	if len(result.Movements) == 0 {
		fmt.Println("  No movements recorded.")
		fmt.Println(strings.Repeat("=", 86))
		return
	}
	fmt.Printf("  %-4s %-20s %-11s %-12s %8s  %s\n", "SEQ", "TIME", "TYPE", "SKU", "QTY", "NOTES")
	fmt.Println(strings.Repeat("-", 86))
	for _, mv := range result.Movements {
		fmt.Printf("  %-4d %-20s %-11s %-12s %+8d  %s\n",
			mv.Seq, mv.OccurredAt.Format("2006-01-02 15:04:05"), mv.Type, mv.SKU, mv.Quantity, mv.Notes)
	}
	fmt.Println(strings.Repeat("=", 86))
}

func printValuation(result *app.ValuationResult) {
	v := result.Valuation
	fmt.Println()
	fmt.Println(strings.Repeat("-", 42))
	fmt.Printf("  %-22s %15d\n", "Distinct items", v.ItemCount)
	fmt.Printf("  %-22s %15d\n", "Total units", v.TotalUnits)
	fmt.Printf("  %-22s %15s\n", "Total value", v.TotalValue.StringFixed(2))
	fmt.Println(strings.Repeat("-", 42))
}
