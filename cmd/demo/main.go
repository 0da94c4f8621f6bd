package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	democmd "github.com/louisbranch/possibility.space/internal/cmd/demo"
)

// main prints the worked fuzzy probability scenarios.
func main() {
	log.SetPrefix("[DEMO] ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := democmd.Run(ctx, os.Stdout); err != nil {
		log.Fatalf("failed to run demo: %v", err)
	}
}
