package main

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"yaplc/internal/config"
	"yaplc/internal/diagfmt"
	"yaplc/internal/driver"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <program.json|program.yast|dir>...",
	Short: "Run semantic analysis over parsed programs",
	Long: `Check loads parsed YAPL programs (JSON or msgpack) and reports scope,
type and usage errors. Directories are expanded to the programs they contain.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json|short)")
	checkCmd.Flags().Int("jobs", 0, "max parallel files (0=auto)")
	checkCmd.Flags().Int("max-errors", 0, "stop checking a file after N errors (0=unlimited)")
	checkCmd.Flags().Bool("with-notes", false, "include diagnostic notes")
	checkCmd.Flags().Bool("timings", false, "print per-file phase timings to stderr")
	checkCmd.Flags().String("ui", "auto", "progress view (auto|on|off)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	withNotes, err := cmd.Flags().GetBool("with-notes")
	if err != nil {
		return fmt.Errorf("failed to get with-notes flag: %w", err)
	}
	timings, err := cmd.Flags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}

	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiValue)
	if err != nil {
		return err
	}

	cleanup, err := setupTracing(cmd, cfg.Trace)
	if err != nil {
		return err
	}
	defer cleanup()

	paths, err := driver.ExpandPaths(args)
	if err != nil {
		return err
	}
	opts := driver.Options{
		MaxDiagnostics: cfg.Check.MaxDiagnostics,
		MaxErrors:      cfg.Check.MaxErrors,
		Jobs:           cfg.Check.Jobs,
	}
	var results []driver.FileResult
	if !quiet && cfg.Check.Format != "json" && shouldUseTUI(mode, stdoutFile(cmd)) {
		results, err = checkWithUI(cmd.Context(), stdoutFile(cmd), paths, opts)
	} else {
		results, err = driver.CheckFiles(cmd.Context(), paths, opts)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	colored := useColor(cfg.Check.Color, stdoutFile(cmd))
	if err := renderResults(out, results, cfg.Check, colored, withNotes); err != nil {
		return err
	}

	if timings {
		for _, r := range results {
			fmt.Fprint(cmd.ErrOrStderr(), r.Timings.Summary(r.Path))
		}
	}

	failed := countFailed(results)
	if !quiet && cfg.Check.Format != "json" {
		fmt.Fprintln(out, summaryLine(len(results), failed, totalErrors(results), colored))
	}
	if failed > 0 {
		return errDiagnostics
	}
	return nil
}

// renderResults prints diagnostics for every result in input order.
func renderResults(w io.Writer, results []driver.FileResult, cfg config.CheckConfig, colored, withNotes bool) error {
	switch cfg.Format {
	case "json":
		outputs := make([]diagfmt.DiagnosticsOutput, 0, len(results))
		for _, r := range results {
			o := diagfmt.BuildDiagnosticsOutput(r.Bag, r.FileSet, diagfmt.JSONOpts{
				PathMode:     diagfmt.PathModeRelative,
				IncludeNotes: withNotes,
				Fallback:     r.Path,
			})
			o.File = filepath.ToSlash(r.Path)
			outputs = append(outputs, o)
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(outputs)
	case "short":
		for _, r := range results {
			if r.Bag.Len() == 0 {
				continue
			}
			if err := diagfmt.Short(w, r.Bag, r.FileSet, withNotes); err != nil {
				return err
			}
		}
		return nil
	default:
		for _, r := range results {
			if r.Bag.Len() == 0 {
				continue
			}
			opts := diagfmt.PrettyOpts{
				Color:     colored,
				PathMode:  diagfmt.PathModeRelative,
				ShowNotes: withNotes,
				Fallback:  r.Path,
			}
			if err := diagfmt.Pretty(w, r.Bag, r.FileSet, opts); err != nil {
				return err
			}
		}
		return nil
	}
}

func countFailed(results []driver.FileResult) int {
	n := 0
	for _, r := range results {
		if r.HasErrors() {
			n++
		}
	}
	return n
}

func totalErrors(results []driver.FileResult) int {
	n := 0
	for _, r := range results {
		if r.Bag != nil {
			n += r.Bag.ErrorCount()
		}
	}
	return n
}

var (
	summaryOK   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	summaryFail = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

// summaryLine renders "checked N files: ..." for the end of a run.
func summaryLine(files, failed, errs int, colored bool) string {
	text := fmt.Sprintf("checked %d %s: ok", files, plural(files, "file", "files"))
	style := summaryOK
	if failed > 0 {
		text = fmt.Sprintf("checked %d %s: %d %s in %d %s",
			files, plural(files, "file", "files"),
			errs, plural(errs, "error", "errors"),
			failed, plural(failed, "file", "files"))
		style = summaryFail
	}
	if !colored {
		return text
	}
	return style.Render(text)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
