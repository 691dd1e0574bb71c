// Command todo is a command line front end for a remote todo API.
//
// Usage:
//
//	todo list
//	todo get <id> [<id>...]
//	todo create --user-id <id> --title <text> [--completed] [--id <id>]
//	todo delete <id>
//
// Settings come from a .env file in the working directory and TODO_*
// environment variables; see internal/config.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/adamwoolhether/todoapi/internal/config"
	"github.com/adamwoolhether/todoapi/todo"
)

// errUsage marks errors caused by bad arguments.
var errUsage = errors.New("usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "todo: %v\n", err)
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.Level()}))

	c, err := todo.New(cfg.BaseEndpoint, cfg.ClientOptions(log)...)
	if err != nil {
		return fmt.Errorf("init client: %w", err)
	}

	log.Debug("todo client ready", "base_endpoint", c.BaseEndpoint())

	return dispatch(ctx, c, args, stdout)
}
