package main

import (
	"context"
	"log"
	"os"

	"tableflip.dev/rampeditor/pkg/commands"
	"tableflip.dev/rampeditor/pkg/logging"
)

func main() {
	logger := logging.New(os.Stderr)
	root := commands.New()
	root.SetContext(logging.NewContext(context.Background(), logger))
	if err := root.Execute(); err != nil {
		log.Fatalf("error during command execution: %v", err)
	}
}
