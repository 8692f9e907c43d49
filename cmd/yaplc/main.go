package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"yaplc/internal/prof"
	"yaplc/internal/version"
)

// errDiagnostics signals that checking succeeded but found errors; the
// diagnostics themselves are already printed.
var errDiagnostics = errors.New("semantic errors found")

var rootCmd = &cobra.Command{
	Use:           "yaplc",
	Short:         "YAPL semantic checker",
	Long:          `yaplc checks parsed YAPL programs for scope, type and usage errors`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cpu, err := cmd.Flags().GetString("cpu-profile")
		if err != nil {
			return fmt.Errorf("failed to get cpu-profile flag: %w", err)
		}
		mem, err := cmd.Flags().GetString("mem-profile")
		if err != nil {
			return fmt.Errorf("failed to get mem-profile flag: %w", err)
		}
		profiling, err = prof.Start(cpu, mem)
		return err
	},
}

// profiling is stopped by main after the command returns, including when it
// fails, so profiles of failing checks are still written.
var profiling *prof.Session

func init() {
	rootCmd.Version = version.Version
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to keep per file")
	rootCmd.PersistentFlags().String("config", "", "path to yaplc.toml or yaplc.yaml (default: search upwards)")
	rootCmd.PersistentFlags().String("trace", "", "trace output file (- for stderr)")
	rootCmd.PersistentFlags().String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	rootCmd.PersistentFlags().String("cpu-profile", "", "write a CPU profile to file")
	rootCmd.PersistentFlags().String("mem-profile", "", "write a heap profile to file on exit")
}

// main executes the root command. Any failure exits with status 1.
func main() {
	err := rootCmd.Execute()
	if stopErr := profiling.Stop(); stopErr != nil {
		fmt.Fprintln(os.Stderr, "yaplc: profile:", stopErr)
	}
	if err != nil {
		if !errors.Is(err, errDiagnostics) {
			fmt.Fprintln(os.Stderr, "yaplc:", err)
		}
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // fd fits in int
}

// useColor resolves an auto|on|off mode against the output file.
func useColor(mode string, out *os.File) bool {
	switch mode {
	case "on":
		return true
	case "off":
		return false
	default:
		return os.Getenv("NO_COLOR") == "" && out != nil && isTerminal(out)
	}
}

// stdoutFile returns the command output as a file when it is one.
func stdoutFile(cmd *cobra.Command) *os.File {
	if f, ok := cmd.OutOrStdout().(*os.File); ok {
		return f
	}
	return nil
}
