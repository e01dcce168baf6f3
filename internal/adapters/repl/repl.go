package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"strconv"
	"strings"

	"stockroom/internal/app"
)

// Run starts the interactive REPL loop. It reads commands from reader and
// dispatches slash commands deterministically. On the way out (via /exit or
// end of input) a dirty inventory is saved back to snapshotPath, so a
// forgotten /save cannot lose mutations.
func Run(ctx context.Context, svc app.ApplicationService, reader *bufio.Reader, snapshotPath string) {
	// Start from the last saved state. A missing snapshot just means a
	// fresh inventory.
	if err := svc.LoadSnapshot(ctx, snapshotPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Printf("No snapshot at %s, starting with an empty inventory", snapshotPath)
		} else {
			log.Fatalf("Failed to load snapshot: %v", err)
		}
	}

	fmt.Println("Stockroom")
	fmt.Printf("Snapshot: %s\n", snapshotPath)
	fmt.Println("Type /help for commands.")
	fmt.Println(strings.Repeat("-", 70))

	errExit := fmt.Errorf("exit")

	dispatchSlash := func(input string) error {
		tokens := strings.Fields(strings.TrimPrefix(input, "/"))
		if len(tokens) == 0 {
			return nil
		}
		cmd := strings.ToLower(tokens[0])
		args := tokens[1:]

		switch cmd {
		case "stock", "levels":
			result, err := svc.GetStockLevels(ctx)
			if err != nil {
				return err
			}
			printStockLevels("STOCK LEVELS", result)

		case "low":
			result, err := svc.GetLowStock(ctx)
			if err != nil {
				return err
			}
			if len(result.Levels) == 0 {
				fmt.Println("All records are above their reorder thresholds.")
				return nil
			}
			printStockLevels("LOW STOCK", result)

		case "item":
			if len(args) < 1 {
				fmt.Println("Usage: /item <sku>")
				return nil
			}
			result, err := svc.GetItem(ctx, args[0])
			if err != nil {
				return err
			}
			printItem(result.Item)

		case "receive":
			if len(args) < 2 {
				fmt.Println("Usage: /receive <sku> <qty> [unit-cost] [name]")
				fmt.Println("  Creates the record or increments it, averaging the unit cost.")
				return nil
			}
			qty, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				fmt.Printf("Invalid quantity: %s\n", args[1])
				return nil
			}
			req := app.ReceiveStockRequest{SKU: args[0], Quantity: qty}
			if len(args) >= 3 {
				req.UnitCost = args[2]
			}
			if len(args) >= 4 {
				req.Name = strings.Join(args[3:], " ")
			}
			result, err := svc.ReceiveStock(ctx, req)
			if err != nil {
				return err
			}
			fmt.Printf("Received %d × %s @ %s (%d on hand).\n",
				qty, result.Item.SKU, result.Item.UnitCost.StringFixed(2), result.Item.Quantity)

		case "issue":
			if len(args) < 2 {
				fmt.Println("Usage: /issue <sku> <qty>")
				return nil
			}
			qty, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				fmt.Printf("Invalid quantity: %s\n", args[1])
				return nil
			}
			result, err := svc.IssueStock(ctx, app.IssueStockRequest{SKU: args[0], Quantity: qty})
			if err != nil {
				return err
			}
			if result.Removed {
				fmt.Printf("Issued %d × %s. Record removed at zero.\n", qty, result.Movement.SKU)
			} else {
				fmt.Printf("Issued %d × %s (%d on hand).\n", qty, result.Item.SKU, result.Item.Quantity)
			}

		case "adjust":
			if len(args) < 2 {
				fmt.Println("Usage: /adjust <sku> <delta> [reason]")
				fmt.Println("  Example: /adjust WIDGET -2 breakage")
				return nil
			}
			delta, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				fmt.Printf("Invalid delta: %s\n", args[1])
				return nil
			}
			result, err := svc.AdjustStock(ctx, app.AdjustStockRequest{
				SKU:    args[0],
				Delta:  delta,
				Reason: strings.Join(args[2:], " "),
			})
			if err != nil {
				return err
			}
			if result.Removed {
				fmt.Printf("Adjusted %s to zero. Record removed.\n", result.Movement.SKU)
			} else {
				fmt.Printf("Adjusted %s by %+d (%d on hand).\n", result.Item.SKU, delta, result.Item.Quantity)
			}

		case "log", "movements":
			sku := ""
			if len(args) > 0 {
				sku = args[0]
			}
			result, err := svc.GetMovements(ctx, sku)
			if err != nil {
				return err
			}
			printMovements(result)

		case "value", "valuation":
			result, err := svc.GetValuation(ctx)
			if err != nil {
				return err
			}
			printValuation(result)

		case "restock":
			handleRestock(ctx, reader, svc)

		case "save":
			path := snapshotPath
			if len(args) > 0 {
				path = args[0]
			}
			if err := svc.SaveSnapshot(ctx, path); err != nil {
				return err
			}
			fmt.Printf("Snapshot saved to %s.\n", path)

		case "load":
			path := snapshotPath
			if len(args) > 0 {
				path = args[0]
			}
			if err := svc.LoadSnapshot(ctx, path); err != nil {
				return err
			}
			fmt.Printf("Snapshot loaded from %s.\n", path)

		case "schema":
			data, err := svc.SnapshotSchema(ctx)
			if err != nil {
				return err
			}
			fmt.Println(string(data))

		case "help", "h":
			printHelp()

		case "exit", "quit", "e", "q":
			return errExit

		default:
			fmt.Printf("Unknown command: /%s  (type /help for all commands)\n", cmd)
		}
		return nil
	}

	for {
		fmt.Print("\n> ")
		raw, readErr := reader.ReadString('\n')
		input := strings.TrimSpace(raw)

		if input != "" {
			if strings.HasPrefix(input, "/") {
				err := dispatchSlash(input)
				if err == errExit {
					break
				}
				if err != nil {
					fmt.Printf("Error: %v\n", err)
				}
			} else {
				fmt.Println("Commands start with a slash. Try /receive, /issue or /help.")
			}
		}

		if readErr != nil {
			// End of input behaves like /exit.
			fmt.Println()
			break
		}
	}

	if svc.IsDirty(ctx) {
		if err := svc.SaveSnapshot(ctx, snapshotPath); err != nil {
			log.Fatalf("Failed to save snapshot on exit: %v", err)
		}
		fmt.Printf("Saved %s.\n", snapshotPath)
	}
	fmt.Println("Goodbye!")
}
