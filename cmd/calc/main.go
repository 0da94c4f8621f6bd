package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	calccmd "github.com/louisbranch/possibility.space/internal/cmd/calc"
)

// main starts the calculator MCP server on stdio or HTTP.
func main() {
	cfg, err := calccmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[CALC] ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := calccmd.Run(ctx, cfg); err != nil {
		log.Fatalf("failed to serve calc: %v", err)
	}
}
