package main

import (
	"context"
	"log"
	"os"

	"tableflip.dev/rampeditor/pkg/commands"
	"tableflip.dev/rampeditor/pkg/logging"
)

func main() {
	ctx := logging.NewContext(context.Background(), logging.New(os.Stderr))
	if err := commands.New().ExecuteContext(ctx); err != nil {
		log.Fatalf("error during command execution: %v", err)
	}
}
