package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-drift/infinitelist/cmd/infinitelist/internal/config"
	"github.com/go-drift/infinitelist/pkg/feed"
)

func init() {
	RegisterCommand(&Command{
		Name:  "seed",
		Short: "Insert items into the SQLite source",
		Long: `Insert generated items into the SQLite source.

The database is created when missing. Items are titled "<prefix> N" where
N continues from the current row count.

Flags:
  --prefix TEXT   Title prefix (default: item)`,
		Usage: "infinitelist seed [count] [--prefix TEXT] [--db PATH]",
		Run:   runSeed,
	})
}

func runSeed(args []string) error {
	prefix := "item"
	var filtered []string
	for i := 0; i < len(args); i++ {
		if args[i] == "--prefix" {
			if i+1 >= len(args) {
				return fmt.Errorf("--prefix requires a value")
			}
			prefix = args[i+1]
			i++
			continue
		}
		filtered = append(filtered, args[i])
	}

	sourceOverride := "--source=" + config.SourceSQLite
	cfg, logger, rest, err := resolve(append(filtered, sourceOverride))
	if err != nil {
		return err
	}

	n := cfg.Total
	if len(rest) > 1 {
		return fmt.Errorf("unexpected argument %q\n\nUsage: infinitelist seed [count]", rest[1])
	}
	if len(rest) == 1 {
		if n, err = strconv.Atoi(rest[0]); err != nil || n <= 0 {
			return fmt.Errorf("count must be a positive integer (got %q)", rest[0])
		}
	}

	ctx := context.Background()
	db, err := feed.OpenSQLite(ctx, cfg.SourcePath)
	if err != nil {
		return err
	}
	defer db.Close()

	inserted, err := db.Seed(ctx, n, prefix)
	if err != nil {
		return err
	}
	total, err := db.Count(ctx)
	if err != nil {
		return err
	}
	logger.Info("seeded", "path", cfg.SourcePath, "inserted", inserted, "total", total)
	fmt.Fprintf(stdout, "Inserted %d items into %s (%d total)\n", inserted, cfg.SourcePath, total)
	return nil
}
