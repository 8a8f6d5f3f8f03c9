package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-drift/infinitelist/cmd/infinitelist/internal/config"
)

// parseFlags extracts the configuration flags shared by every command and
// returns the remaining arguments. Flags take their value either as the
// next argument or after '='.
func parseFlags(args []string) (config.Overrides, []string, error) {
	var ov config.Overrides
	var rest []string
	no := false

	for i := 0; i < len(args); i++ {
		arg := args[i]
		name, value, hasValue := strings.Cut(arg, "=")
		if !strings.HasPrefix(name, "--") {
			rest = append(rest, arg)
			continue
		}

		switch name {
		case "--refresh", "--lazy-stack":
			b := true
			if hasValue {
				var err error
				if b, err = strconv.ParseBool(value); err != nil {
					return ov, nil, fmt.Errorf("invalid %s %q: %w", name, value, err)
				}
			}
			if name == "--refresh" {
				ov.Refresh = &b
			} else {
				ov.LazyStack = &b
			}
			continue
		case "--no-refresh":
			ov.Refresh = &no
			continue
		case "--no-lazy-stack":
			ov.LazyStack = &no
			continue
		}

		if !hasValue {
			if i+1 >= len(args) {
				return ov, nil, fmt.Errorf("%s requires a value", name)
			}
			value = args[i+1]
			i++
		}

		var err error
		switch name {
		case "--config":
			ov.ConfigFile = value
		case "--toolkit-version":
			ov.ToolkitVersion = value
		case "--spacing":
			ov.Spacing, err = strconv.ParseFloat(value, 64)
		case "--page-size":
			ov.PageSize, err = strconv.Atoi(value)
		case "--source":
			ov.SourceKind = value
		case "--db":
			ov.SourcePath = value
		case "--total":
			ov.Total, err = strconv.Atoi(value)
		case "--latency":
			ov.Latency, err = time.ParseDuration(value)
		case "--log-level":
			ov.LogLevel = value
		case "--log-format":
			ov.LogFormat = value
		default:
			return ov, nil, fmt.Errorf("unknown flag %s", name)
		}
		if err != nil {
			return ov, nil, fmt.Errorf("invalid %s %q: %w", name, value, err)
		}
	}
	return ov, rest, nil
}

// extractInt removes "--name N" from args and returns N, or def when the
// flag is absent.
func extractInt(args []string, name string, def int) (int, []string, error) {
	out := make([]string, 0, len(args))
	value := def
	for i := 0; i < len(args); i++ {
		flagName, raw, hasValue := strings.Cut(args[i], "=")
		if flagName != name {
			out = append(out, args[i])
			continue
		}
		if !hasValue {
			if i+1 >= len(args) {
				return 0, nil, fmt.Errorf("%s requires a value", name)
			}
			raw = args[i+1]
			i++
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return 0, nil, fmt.Errorf("invalid %s %q: %w", name, raw, err)
		}
		value = n
	}
	return value, out, nil
}
