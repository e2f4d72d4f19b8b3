package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/lixi-remit/lixi-landing/config"
	"github.com/lixi-remit/lixi-landing/internal/log"
)

func main() {
	logger := log.NewLoggerWithJSONOutput()

	config.InitializeEnvFile(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, logger, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(ctx context.Context, logger *log.Logger, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stderr)
		return 1
	}

	var err error
	switch args[0] {
	case "migrate":
		err = runMigrate(ctx, logger, args[1:], stdout)
	case "export-waitlist":
		err = runExportWaitlist(ctx, logger, args[1:], stdout, stderr)
	case "create-user":
		err = runCreateUser(ctx, args[1:], stdin, stdout)
	case "help", "-h", "--help":
		printUsage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "unknown command: %s\n\n", args[0])
		printUsage(stderr)
		return 1
	}

	if err != nil {
		logger.Error("Command failed", "command", args[0], "error", err.Error())
		fmt.Fprintf(stderr, "%s: %v\n", args[0], err)
		return 1
	}
	return 0
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: cli <command> [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  migrate [status]                        Apply SQL migrations to Postgres, or print the schema version")
	fmt.Fprintln(w, "  export-waitlist [-o file.csv] [--upload] Write waitlist entries as CSV (stdout by default); --upload also stores it in MinIO")
	fmt.Fprintln(w, "  create-user <username>                  Create a scaffold user; the password is read from stdin")
	fmt.Fprintln(w, "  help                                    Show this message")
}
