package repl

import (
	"fmt"
	"strings"

	"stockroom/internal/app"
	"stockroom/internal/core"
)

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

func printHelp() {
	fmt.Println()
	fmt.Println("STOCKROOM COMMANDS")
	fmt.Println(strings.Repeat("=", 62))
	fmt.Println()
	fmt.Println("  STOCK")
	fmt.Println("  /stock                               Stock levels for every record")
	fmt.Println("  /low                                 Records at or below reorder level")
	fmt.Println("  /item <sku>                          One record in detail")
	fmt.Println("  /value                               Inventory valuation totals")
	fmt.Println()
	fmt.Println("  MOVEMENTS")
	fmt.Println("  /receive <sku> <qty> [cost] [name]   Goods receipt (weighted avg cost)")
	fmt.Println("  /issue   <sku> <qty>                 Goods issue (removes record at zero)")
	fmt.Println("  /adjust  <sku> <delta> [reason]      Stocktake correction")
	fmt.Println("  /restock                             Bulk receipt (interactive)")
	fmt.Println("  /log [sku]                           Movement journal")
	fmt.Println()
	fmt.Println("  SNAPSHOT")
	fmt.Println("  /save [path]                         Write snapshot (atomic)")
	fmt.Println("  /load [path]                         Replace state from snapshot")
	fmt.Println("  /schema                              JSON Schema of the snapshot document")
	fmt.Println()
	fmt.Println("  SESSION")
	fmt.Println("  /help                                Show this help")
	fmt.Println("  /exit                                Exit (auto-saves when dirty)")
	fmt.Println(strings.Repeat("=", 62))
}
