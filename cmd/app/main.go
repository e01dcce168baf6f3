package main

import (
	"bufio"
	"context"
	"os"

	"stockroom/internal/adapters/cli"
	"stockroom/internal/adapters/repl"
	"stockroom/internal/app"
	"stockroom/internal/core"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()

	path := os.Getenv("STOCKROOM_FILE")
	if path == "" {
		path = "inventory.json"
	}

	manager := core.NewManager()
	svc := app.NewAppService(manager)

	if len(os.Args) > 1 {
		cli.Run(ctx, svc, path, os.Args[1:])
		return
	}
	repl.Run(ctx, svc, bufio.NewReader(os.Stdin), path)
}
