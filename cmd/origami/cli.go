package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/origamifold/origami/internal/config"
	"github.com/origamifold/origami/internal/errors"
	"github.com/origamifold/origami/internal/fold"
	"github.com/origamifold/origami/internal/mcp"
	"github.com/origamifold/origami/internal/ops"
	"github.com/origamifold/origami/internal/protocol"
	"github.com/origamifold/origami/internal/store"
	"github.com/origamifold/origami/internal/tools"
)

// newCLIApp creates the CLI application with all commands.
func newCLIApp(d *tools.Dispatcher, s *store.Store, cfg *config.Config) *cli.App {
	app := &cli.App{
		Name:    "origami",
		Usage:   "Fold store for long conversations",
		Version: Version,
		Commands: []*cli.Command{
			guideCmd(d),
			listCmd(d),
			unfoldCmd(d),
			foldCmd(d),
			writeSummaryCmd(d),
			addCmd(s, cfg),
			relevanceCmd(s),
			clearCmd(s),
			serveCmd(d, cfg),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// guideCmd creates the guide command.
func guideCmd(d *tools.Dispatcher) *cli.Command {
	return &cli.Command{
		Name:  "guide",
		Usage: "Print the usage guide served to clients",
		Action: func(c *cli.Context) error {
			fmt.Println(d.Guide())
			return nil
		},
	}
}

// listCmd creates the list command.
func listCmd(d *tools.Dispatcher) *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List all folds with status, size and relevance",
		Action: func(c *cli.Context) error {
			fmt.Println(d.ListFolds())
			return nil
		},
	}
}

// unfoldCmd creates the unfold command.
func unfoldCmd(d *tools.Dispatcher) *cli.Command {
	return &cli.Command{
		Name:      "unfold",
		Usage:     "Expand a fold to its full detail",
		ArgsUsage: "<fold-id>",
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return outputError(errors.NewInvalidRequest("fold id required"))
			}
			text, err := d.UnfoldSection(normalizeID(c.Args().First()))
			if err != nil {
				return outputError(err)
			}
			fmt.Println(text)
			return nil
		},
	}
}

// foldCmd creates the fold command.
func foldCmd(d *tools.Dispatcher) *cli.Command {
	return &cli.Command{
		Name:      "fold",
		Usage:     "Collapse a fold back to its summary",
		ArgsUsage: "<fold-id>",
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return outputError(errors.NewInvalidRequest("fold id required"))
			}
			text, err := d.FoldSection(normalizeID(c.Args().First()))
			if err != nil {
				return outputError(err)
			}
			fmt.Println(text)
			return nil
		},
	}
}

// writeSummaryCmd creates the write-summary command.
func writeSummaryCmd(d *tools.Dispatcher) *cli.Command {
	return &cli.Command{
		Name:      "write-summary",
		Usage:     "Replace a fold's summary (from --summary or stdin)",
		ArgsUsage: "<fold-id>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "summary", Aliases: []string{"s"}, Usage: "Replacement summary text"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return outputError(errors.NewInvalidRequest("fold id required"))
			}

			summary := c.String("summary")
			if summary == "" && stdinHasData() {
				text, err := readStdin()
				if err != nil {
					return outputError(errors.NewInternal(err))
				}
				summary = text
			}
			if summary == "" {
				return outputError(errors.NewInvalidRequest("summary required via --summary or stdin"))
			}

			text, err := d.WriteSummary(normalizeID(c.Args().First()), summary)
			if err != nil {
				return outputError(err)
			}
			fmt.Println(text)
			return nil
		},
	}
}

// addCmd creates the add command.
func addCmd(s *store.Store, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "add",
		Usage: "Fold away a new section (reads detail from stdin)",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "summary", Aliases: []string{"s"}, Usage: "Summary (derived from detail if omitted)"},
			&cli.StringFlag{Name: "turns", Usage: "Turn range, e.g. 12-48"},
			&cli.Float64Flag{Name: "relevance", Aliases: []string{"r"}, Usage: "Relevance score in [0,1]"},
			&cli.StringFlag{Name: "files", Usage: "Comma-separated file paths the section touched"},
			&cli.StringFlag{Name: "tags", Usage: "Comma-separated tags"},
		},
		Action: func(c *cli.Context) error {
			if !stdinHasData() {
				return outputError(errors.NewInvalidRequest("detail must be piped via stdin"))
			}
			detail, err := readStdin()
			if err != nil {
				return outputError(errors.NewInternal(err))
			}

			input := ops.AddInput{
				Summary:         c.String("summary"),
				Detail:          detail,
				RelevanceScore:  c.Float64("relevance"),
				FilesTouched:    parseList(c.String("files")),
				Tags:            parseList(c.String("tags")),
				SummaryMaxChars: cfg.SummaryMaxChars,
			}
			if turns := c.String("turns"); turns != "" {
				turnRange, err := parseTurnRange(turns)
				if err != nil {
					return outputError(errors.NewInvalidRequest(err.Error()))
				}
				input.TurnRange = turnRange
			}

			output, err := ops.AddFold(s, input)
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// relevanceCmd creates the relevance command.
func relevanceCmd(s *store.Store) *cli.Command {
	return &cli.Command{
		Name:      "relevance",
		Usage:     "Set a fold's relevance score",
		ArgsUsage: "<fold-id> <score>",
		Action: func(c *cli.Context) error {
			if c.NArg() < 2 {
				return outputError(errors.NewInvalidRequest("usage: relevance <fold-id> <score>"))
			}
			score, err := strconv.ParseFloat(c.Args().Get(1), 64)
			if err != nil {
				return outputError(errors.NewInvalidRequest("score must be a number"))
			}

			output, err := ops.SetRelevance(s, ops.RelevanceInput{
				FoldID: normalizeID(c.Args().First()),
				Score:  score,
			})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// clearCmd creates the clear command.
func clearCmd(s *store.Store) *cli.Command {
	return &cli.Command{
		Name:  "clear",
		Usage: "Delete all fold state (requires --force)",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "force", Usage: "Confirm deletion"},
		},
		Action: func(c *cli.Context) error {
			if !c.Bool("force") {
				return outputError(errors.NewInvalidRequest("refusing to clear without --force"))
			}
			if err := ops.Clear(s); err != nil {
				return outputError(err)
			}
			fmt.Println("fold store cleared")
			return nil
		},
	}
}

// serveCmd creates the serve command.
func serveCmd(d *tools.Dispatcher, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the stdio server explicitly",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "sdk", Usage: "Use the MCP SDK transport instead of the built-in one"},
		},
		Action: func(c *cli.Context) error {
			if c.Bool("sdk") {
				return mcp.Run(d, cfg.DisabledTools, Version)
			}
			return protocol.NewServer(d, "origami", Version).Serve(os.Stdin, os.Stdout)
		},
	}
}

// Helper functions

// normalizeID maps loose human input ("1", "F003", "fold-3") onto
// canonical ids. Anything unrecognizable passes through untouched and
// fails downstream.
func normalizeID(arg string) string {
	arg = strings.TrimSpace(arg)
	if fold.ValidID(arg) {
		return arg
	}
	s := strings.ToLower(arg)
	s = strings.TrimPrefix(s, "fold-")
	s = strings.TrimPrefix(s, "f")
	if n, err := strconv.Atoi(s); err == nil && n > 0 {
		return fold.FormatID(n)
	}
	return arg
}

// outputJSON marshals result to stdout as JSON.
func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats error for CLI.
func outputError(err error) error {
	if oErr, ok := errors.From(err); ok {
		return cli.Exit(fmt.Sprintf("[%s] %s", oErr.Code, oErr.Message), 1)
	}
	return cli.Exit(err.Error(), 1)
}

// stdinHasData returns true if stdin has piped data (not a terminal).
func stdinHasData() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}

// readStdin reads all content from stdin.
func readStdin() (string, error) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// parseList splits a comma-separated string, trimming blanks.
func parseList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		item := strings.TrimSpace(p)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}

// parseTurnRange parses "12-48" into a [first, last] pair.
func parseTurnRange(s string) ([]int, error) {
	firstStr, lastStr, ok := strings.Cut(s, "-")
	if !ok {
		return nil, fmt.Errorf("turn range must be first-last, e.g. 12-48")
	}
	first, err := strconv.Atoi(strings.TrimSpace(firstStr))
	if err != nil {
		return nil, fmt.Errorf("invalid turn range: %s", s)
	}
	last, err := strconv.Atoi(strings.TrimSpace(lastStr))
	if err != nil {
		return nil, fmt.Errorf("invalid turn range: %s", s)
	}
	if first < 0 || last < first {
		return nil, fmt.Errorf("turn range out of order: %s", s)
	}
	return []int{first, last}, nil
}
