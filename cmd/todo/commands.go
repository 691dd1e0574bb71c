package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/adamwoolhether/todoapi/result"
	"github.com/adamwoolhether/todoapi/todo"
)

// maxConcurrentGets bounds the in-flight requests of a multi-id get.
const maxConcurrentGets = 4

func dispatch(ctx context.Context, c *todo.Client, args []string, stdout io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: todo <list|get|create|delete> [args]", errUsage)
	}

	cmd, rest := args[0], args[1:]

	switch cmd {
	case "list":
		return list(ctx, c, stdout)
	case "get":
		return get(ctx, c, rest, stdout)
	case "create":
		return create(ctx, c, rest, stdout)
	case "delete":
		return remove(ctx, c, rest, stdout)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

func list(ctx context.Context, c *todo.Client, stdout io.Writer) error {
	res, err := c.ListAll(ctx)
	if err != nil {
		return err
	}

	items, err := unwrap(res)
	if err != nil {
		return fmt.Errorf("list: %w", err)
	}

	return writeJSON(stdout, items)
}

func get(ctx context.Context, c *todo.Client, ids []string, stdout io.Writer) error {
	if len(ids) == 0 {
		return fmt.Errorf("%w: todo get <id> [<id>...]", errUsage)
	}

	items := make([]todo.Item, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentGets)

	for i, id := range ids {
		g.Go(func() error {
			res, err := c.GetByID(ctx, id)
			if err != nil {
				return err
			}

			item, err := unwrap(res)
			if err != nil {
				return fmt.Errorf("get %s: %w", id, err)
			}
			items[i] = item

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	for _, item := range items {
		if err := writeJSON(stdout, item); err != nil {
			return err
		}
	}

	return nil
}

func create(ctx context.Context, c *todo.Client, args []string, stdout io.Writer) error {
	fs := pflag.NewFlagSet("create", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var item todo.Item
	fs.StringVar(&item.ID, "id", "", "item id, usually assigned by the server")
	fs.StringVar(&item.UserID, "user-id", "", "owning user id")
	fs.StringVar(&item.Title, "title", "", "item title")
	fs.BoolVar(&item.IsFinished, "completed", false, "mark the item as finished")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: create: %w", errUsage, err)
	}

	if item.UserID == "" || item.Title == "" {
		return fmt.Errorf("%w: create requires --user-id and --title", errUsage)
	}

	res, err := c.Create(ctx, item)
	if err != nil {
		return err
	}

	created, err := unwrap(res)
	if err != nil {
		return fmt.Errorf("create: %w", err)
	}

	return writeJSON(stdout, created)
}

func remove(ctx context.Context, c *todo.Client, args []string, stdout io.Writer) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: todo delete <id>", errUsage)
	}

	res, err := c.DeleteByID(ctx, args[0])
	if err != nil {
		return err
	}

	if _, err := unwrap(res); err != nil {
		return fmt.Errorf("delete %s: %w", args[0], err)
	}

	_, err = fmt.Fprintf(stdout, "deleted %s\n", args[0])
	return err
}

// unwrap turns a result into Go's value, error pair for the CLI.
func unwrap[T any](res result.Result[todo.Error, T]) (T, error) {
	if e, failed := res.Err(); failed {
		var zero T
		return zero, e
	}

	v, _ := res.Value()
	return v, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
