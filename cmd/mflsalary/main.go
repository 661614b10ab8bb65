// Package main provides the entry point for the mflsalary CLI tool.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/nateprich/mfl-salary-top30/cmd/mflsalary/cmd"
)

// Version information populated by the build system.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	os.Exit(cmd.Execute(ctx, version, commit, date))
}
