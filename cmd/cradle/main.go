package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ayselgur/cradle/internal/config"
	"github.com/ayselgur/cradle/internal/mcp"
	"github.com/ayselgur/cradle/internal/repo"
	"github.com/ayselgur/cradle/internal/store"
)

// Version is set via -ldflags at build time.
var Version = "dev"

// cliCommands contains known CLI subcommands.
var cliCommands = map[string]bool{
	"mood": true, "feeding": true, "panas": true, "note": true,
	"summary": true, "seed": true, "serve": true,
	"help": true,
}

// isCLIMode determines if we should run CLI vs MCP server.
func isCLIMode() bool {
	if len(os.Args) < 2 {
		return false // No args → MCP server
	}
	arg := os.Args[1]
	// Known subcommand → CLI
	if cliCommands[arg] {
		return true
	}
	// --help or --version → CLI
	if arg == "--help" || arg == "-h" || arg == "--version" || arg == "-v" {
		return true
	}
	return false // Default → MCP server
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
   ___ ___    _   ___  _    ___
  / __| _ \  /_\ |   \| |  | __|
 | (__|   / / _ \| |) | |__| _|
  \___|_|_\/_/ \_\___/|____|___|

  Baby journal for new mothers

  Usage: cradle <command> [options]
         cradle --help

  MCP server mode requires piped input.`)
}

func main() {
	// No args + interactive terminal → show banner and exit
	if len(os.Args) < 2 && isTerminal() {
		printBanner()
		return
	}

	// Handle --help/--version before opening storage (not needed)
	if isHelpOrVersion() {
		app := newCLIApp(nil, nil)
		if err := app.Run(os.Args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: could not determine home directory: %v\n", err)
		os.Exit(1)
	}

	baseDir := filepath.Join(homeDir, ".cradle")

	cfg, err := config.Load(baseDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to load config: %v\n", err)
		os.Exit(1)
	}

	db, err := repo.OpenSQLite(baseDir, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to open journal database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx := context.Background()

	if cfg.SeedDemoData {
		if err := seedIfEmpty(ctx, db); err != nil {
			fmt.Fprintf(os.Stderr, "error: failed to seed demo data: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI mode: known subcommand
	if isCLIMode() {
		app := newCLIApp(db, cfg)
		if err := app.Run(os.Args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Unknown argument + terminal → show error (don't start MCP server)
	if len(os.Args) >= 2 && isTerminal() {
		fmt.Fprintf(os.Stderr, "error: unknown command %q\n", os.Args[1])
		fmt.Fprintf(os.Stderr, "Run 'cradle --help' for usage.\n")
		os.Exit(1)
	}

	// MCP server mode (default): the store carries live state for the
	// session, seeded from whatever the repository holds.
	st := store.New(cfg.ToastDuration())
	defer st.Close()

	moods, feedings, panas, notes, err := repo.Load(ctx, db)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to load journal: %v\n", err)
		os.Exit(1)
	}
	st.SetInitial(moods, feedings, panas, notes)

	for _, name := range mcp.ValidateDisabledTools(cfg.DisabledTools) {
		fmt.Fprintf(os.Stderr, "warning: unknown disabled tool %q in config\n", name)
	}
	for _, name := range mcp.ValidateDisabledTypes(cfg.DisabledTypes) {
		fmt.Fprintf(os.Stderr, "warning: unknown disabled type %q in config\n", name)
	}

	if err := mcp.Run(db, st, cfg, Version); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// seedIfEmpty inserts the demo data set, but only into a journal with
// no moods yet, so restarts don't duplicate it.
func seedIfEmpty(ctx context.Context, r repo.Repository) error {
	moods, err := r.Moods(ctx)
	if err != nil {
		return err
	}
	if len(moods) > 0 {
		return nil
	}
	return repo.Seed(ctx, r)
}
