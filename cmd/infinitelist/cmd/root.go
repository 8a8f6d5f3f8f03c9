// Package cmd implements the infinitelist CLI commands.
//
// The root command dispatches to subcommands (browse, mode, seed,
// snapshot). Every subcommand accepts the configuration flags described by
// printFlags.
package cmd

import (
	"fmt"
	"io"
	"os"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name  string
	Short string
	Long  string
	Usage string
	Run   func(args []string) error
}

var rootCmd = struct {
	Long        string
	Usage       string
	SubCommands []*Command
}{
	Long: `infinitelist drives a paginating list against a memory or SQLite source.

It shows which render mode a configuration selects, browses the list in the
terminal with infinite scrolling and pull-to-refresh, and writes frame
snapshots as PNG images.

Use "infinitelist <command> --help" for more information about a command.`,
	Usage: "infinitelist <command> [flags]",
}

// Commands registered with the CLI.
var commands = make(map[string]*Command)

// stdout receives command output.
var stdout io.Writer = os.Stdout

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	rootCmd.SubCommands = append(rootCmd.SubCommands, cmd)
}

// Execute runs the CLI with the process arguments.
func Execute() error {
	return run(os.Args[1:])
}

func run(args []string) error {
	if len(args) == 0 {
		printHelp()
		return nil
	}

	switch args[0] {
	case "-h", "--help", "help":
		printHelp()
		return nil
	case "-v", "--version", "version":
		fmt.Fprintf(stdout, "infinitelist version %s (built %s)\n", Version, BuildTime)
		return nil
	}

	cmdName := args[0]
	cmd, ok := commands[cmdName]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", cmdName)
		printHelp()
		return fmt.Errorf("unknown command: %s", cmdName)
	}

	cmdArgs := args[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" || arg == "help" {
			printCommandHelp(cmd)
			return nil
		}
	}

	return cmd.Run(cmdArgs)
}

func printHelp() {
	fmt.Fprintln(stdout, rootCmd.Long)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Usage:")
	fmt.Fprintf(stdout, "  %s\n", rootCmd.Usage)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Commands:")
	for _, sub := range rootCmd.SubCommands {
		fmt.Fprintf(stdout, "  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Fprintln(stdout)
	printFlags()
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Examples:")
	fmt.Fprintln(stdout, "  infinitelist mode --toolkit-version 13     Show the mode an older toolkit gets")
	fmt.Fprintln(stdout, "  infinitelist seed 500 --db items.db        Fill a SQLite source")
	fmt.Fprintln(stdout, "  infinitelist browse --source sqlite        Scroll through the SQLite source")
}

func printFlags() {
	fmt.Fprintln(stdout, "Flags:")
	fmt.Fprintln(stdout, "  -h, --help               Show help for a command")
	fmt.Fprintln(stdout, "  -v, --version            Show version information")
	fmt.Fprintln(stdout, "  --config FILE            Configuration file (default: ./infinitelist.yaml)")
	fmt.Fprintln(stdout, "  --refresh, --no-refresh  Enable or disable pull-to-refresh")
	fmt.Fprintln(stdout, "  --lazy-stack, --no-lazy-stack")
	fmt.Fprintln(stdout, "                           Force the lazy stack capability")
	fmt.Fprintln(stdout, "  --toolkit-version V      Derive the lazy stack capability from V")
	fmt.Fprintln(stdout, "  --spacing N              Stack spacing")
	fmt.Fprintln(stdout, "  --page-size N            Items fetched per page")
	fmt.Fprintln(stdout, "  --source KIND            memory or sqlite")
	fmt.Fprintln(stdout, "  --db PATH                SQLite database path")
	fmt.Fprintln(stdout, "  --total N                Items in the generated memory source")
	fmt.Fprintln(stdout, "  --latency D              Delay every fetch (e.g. 300ms)")
	fmt.Fprintln(stdout, "  --log-level L            debug, info, warn or error")
	fmt.Fprintln(stdout, "  --log-format F           text or json")
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Environment:")
	fmt.Fprintln(stdout, "  INFINITELIST_*           Overrides for every setting (also read from .env)")
}

func printCommandHelp(cmd *Command) {
	fmt.Fprintln(stdout, cmd.Long)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Usage:")
	fmt.Fprintf(stdout, "  %s\n", cmd.Usage)
}
