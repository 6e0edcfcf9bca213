package main

import (
	"fmt"
	"os"

	"github.com/origamifold/origami/internal/config"
	"github.com/origamifold/origami/internal/mcp"
	"github.com/origamifold/origami/internal/protocol"
	"github.com/origamifold/origami/internal/store"
	"github.com/origamifold/origami/internal/tools"
)

// Version is set via -ldflags at build time.
var Version = "dev"

// cliCommands contains known CLI subcommands.
var cliCommands = map[string]bool{
	"guide": true, "list": true, "unfold": true, "fold": true,
	"write-summary": true, "add": true, "relevance": true,
	"clear": true, "serve": true,
	"help": true,
}

// isCLIMode determines if we should run CLI vs the stdio server.
func isCLIMode() bool {
	if len(os.Args) < 2 {
		return false // No args → server
	}
	arg := os.Args[1]
	if cliCommands[arg] {
		return true
	}
	if arg == "--help" || arg == "-h" || arg == "--version" || arg == "-v" {
		return true
	}
	return false
}

// isHelpOrVersion returns true if the user is requesting help or version info.
func isHelpOrVersion() bool {
	if len(os.Args) < 2 {
		return false
	}
	arg := os.Args[1]
	return arg == "--help" || arg == "-h" || arg == "--version" || arg == "-v" || arg == "help"
}

// isTerminal returns true if stdin is a terminal (not piped).
func isTerminal() bool {
	stat, _ := os.Stdin.Stat()
	return (stat.Mode() & os.ModeCharDevice) != 0
}

// printBanner displays a friendly banner when run interactively without args.
func printBanner() {
	fmt.Println(`
    ___  ____  ___ ___   _   __  __ ___
   / _ \| _ \|_ _/ __| /_\ |  \/  |_ _|
  | (_) |   / | | (_ |/ _ \| |\/| || |
   \___/|_|_\|___\___/_/ \_\_|  |_|___|

  Fold store for long conversations

  Usage: origami <command> [options]
         origami --help

  Server mode requires piped input.`)
}

func main() {
	// No args + interactive terminal → show banner and exit
	if len(os.Args) < 2 && isTerminal() {
		printBanner()
		return
	}

	// Handle --help/--version before touching the store
	if isHelpOrVersion() {
		app := newCLIApp(nil, nil, nil)
		if err := app.Run(os.Args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	cfg, err := config.Load(store.DefaultDir())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to load config: %v\n", err)
		os.Exit(1)
	}
	for _, name := range mcp.ValidateDisabledTools(cfg.DisabledTools) {
		fmt.Fprintf(os.Stderr, "warning: unknown tool in disabled_tools: %s\n", name)
	}

	s := store.New(cfg.FoldDir)
	dispatcher := tools.NewDispatcher(s, cfg.GuidePath)

	// CLI mode: known subcommand
	if isCLIMode() {
		app := newCLIApp(dispatcher, s, cfg)
		if err := app.Run(os.Args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Unknown argument + terminal → show error (don't start the server)
	if len(os.Args) >= 2 && isTerminal() {
		fmt.Fprintf(os.Stderr, "error: unknown command %q\n", os.Args[1])
		fmt.Fprintf(os.Stderr, "Run 'origami --help' for usage.\n")
		os.Exit(1)
	}

	// Server mode (default): framed JSON-RPC on stdio
	srv := protocol.NewServer(dispatcher, "origami", Version)
	if err := srv.Serve(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
