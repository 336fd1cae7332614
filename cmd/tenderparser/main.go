// Package main provides the tenderparser CLI.
//
// Usage:
//
//	tenderparser --output tenders.csv
//	tenderparser --max 500 --output tenders.db
//	tenderparser --output es://localhost:9200/tenders
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := Execute(ctx)
	stop()
	os.Exit(code)
}
