package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	jsonpos "github.com/RelentlessResults/vscode-LSP"
	"github.com/RelentlessResults/vscode-LSP/ast"
	"github.com/RelentlessResults/vscode-LSP/pointer"
	"github.com/spf13/cobra"
	"github.com/tailscale/hujson"
)

type options struct {
	maxDepth int
	relaxed  bool
	keys     bool
	pointer  string
}

var errFailed = errors.New("one or more files failed")

// NewCLI constructs the root command.
func NewCLI() *cobra.Command {
	var opts options
	rootCmd := &cobra.Command{
		Use:   "jsonpos [flags] file...",
		Short: "Parse JSON and report positions",
		Long: `Parse each named file ("-" for standard input) as a single JSON value.
Syntax errors are reported as file:line:column: message, with 1-based
lines and columns.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFiles(cmd, opts, args)
		},
	}

	flags := rootCmd.Flags()
	flags.IntVar(&opts.maxDepth, "max-depth", ast.DefaultMaxDepth, "Maximum nesting depth of arrays and objects (negative for no limit)")
	flags.BoolVar(&opts.relaxed, "relaxed", false, "Accept comments and trailing commas (offsets are preserved)")
	flags.BoolVar(&opts.keys, "keys", false, "Print the source range of every object key")
	flags.StringVar(&opts.pointer, "pointer", "", "Print the value at this JSON Pointer")
	return rootCmd
}

func runFiles(cmd *cobra.Command, opts options, args []string) error {
	log := newLogger(cmd.ErrOrStderr())

	var ptr pointer.Pointer
	if cmd.Flags().Changed("pointer") {
		var err error
		if ptr, err = pointer.Parse(opts.pointer); err != nil {
			return fmt.Errorf("invalid --pointer: %w", err)
		}
	}

	var failed bool
	for _, name := range args {
		if err := runFile(cmd, log, opts, ptr, name); err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), err)
			failed = true
		}
	}
	if failed {
		return errFailed
	}
	return nil
}

func runFile(cmd *cobra.Command, log *slog.Logger, opts options, ptr pointer.Pointer, name string) error {
	data, err := readInput(cmd.InOrStdin(), name)
	if err != nil {
		return err
	}
	if opts.relaxed {
		// Standardize replaces comments and trailing commas with spaces, so
		// offsets and line numbers still refer to the original text.
		if data, err = hujson.Standardize(data); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}

	doc, err := ast.Options{MaxDepth: opts.maxDepth}.Parse(string(data))
	if err != nil {
		var serr *jsonpos.SyntaxError
		if errors.As(err, &serr) {
			log.Debug("parse failed", "file", name, "kind", serr.Kind, "offset", serr.Offset)
			return fmt.Errorf("%s:%d:%d: %v", name, serr.Location.Line+1, serr.Location.Column+1, serr)
		}
		return fmt.Errorf("%s: %w", name, err)
	}
	log.Debug("parsed", "file", name, "bytes", len(data), "keys", len(doc.Keys))

	out := cmd.OutOrStdout()
	if opts.keys {
		for _, p := range doc.KeyPointers() {
			loc, _ := doc.KeyLocation(p)
			fmt.Fprintf(out, "%s\t%s\t%s\n", name, p, formatRange(loc))
		}
	}
	if ptr != nil {
		v, err := pointer.Resolve(doc.Root, ptr)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		fmt.Fprintf(out, "%s\t%s\t%s\t%s\n", name, ptr, formatRange(doc.Locate(v.Span())), v.JSON())
	}
	return nil
}

// formatRange renders a location as line:col-line:col, 1-based.
func formatRange(loc jsonpos.Location) string {
	return fmt.Sprintf("%d:%d-%d:%d",
		loc.First.Line+1, loc.First.Column+1, loc.Last.Line+1, loc.Last.Column+1)
}

func readInput(stdin io.Reader, name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(name)
}
