package cmd

import (
	"fmt"

	"github.com/go-drift/infinitelist/cmd/infinitelist/internal/config"
)

func init() {
	RegisterCommand(&Command{
		Name:  "mode",
		Short: "Show the selected render mode",
		Long: `Show the render mode the current configuration selects.

Without pull-to-refresh the list is a plain virtualized list. With it, the
list is wrapped in a refreshable scroll container whose stack is lazy when
the host toolkit supports lazy stacks and eager otherwise.

The lazy stack capability comes from host.lazy_stack when set, and is
otherwise derived from host.toolkit_version and host.lazy_stack_since.`,
		Usage: "infinitelist mode [flags]",
		Run:   runMode,
	})
}

func runMode(args []string) error {
	cfg, _, rest, err := resolve(args)
	if err != nil {
		return err
	}
	if len(rest) > 0 {
		return fmt.Errorf("unexpected argument %q\n\nUsage: infinitelist mode [flags]", rest[0])
	}
	printMode(cfg)
	return nil
}

func printMode(cfg *config.Resolved) {
	mode := cfg.Mode()
	fmt.Fprintf(stdout, "mode:        %s\n", mode)
	fmt.Fprintf(stdout, "refresh:     %t\n", cfg.Refresh)
	fmt.Fprintf(stdout, "lazy stack:  %t (%s)\n", cfg.Capabilities.LazyStack, capabilitySource(cfg))
	fmt.Fprintf(stdout, "virtualized: %t\n", mode.Virtualized())
	if mode.Refreshable() {
		spacing := cfg.Spacing
		if spacing == 0 {
			spacing = lineExtent
		}
		fmt.Fprintf(stdout, "spacing:     %g\n", spacing)
	}
	fmt.Fprintf(stdout, "source:      %s\n", describeSource(cfg))
}

func capabilitySource(cfg *config.Resolved) string {
	switch {
	case cfg.LazyStackExplicit:
		return "host.lazy_stack"
	case cfg.ToolkitVersion == "":
		return "toolkit version unknown, assuming current"
	case cfg.Capabilities.LazyStack:
		return fmt.Sprintf("toolkit %s >= %s", cfg.ToolkitVersion, cfg.LazyStackSince)
	default:
		return fmt.Sprintf("toolkit %s < %s", cfg.ToolkitVersion, cfg.LazyStackSince)
	}
}

func describeSource(cfg *config.Resolved) string {
	switch cfg.SourceKind {
	case config.SourceSQLite:
		return fmt.Sprintf("sqlite %s", cfg.SourcePath)
	default:
		return fmt.Sprintf("memory, %d items", cfg.Total)
	}
}
