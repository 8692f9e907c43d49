package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"yaplc/internal/driver"
	"yaplc/internal/ui"
)

type uiMode string

const (
	uiModeAuto uiMode = "auto"
	uiModeOn   uiMode = "on"
	uiModeOff  uiMode = "off"
)

func readUIMode(value string) (uiMode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return uiModeAuto, nil
	case "on":
		return uiModeOn, nil
	case "off":
		return uiModeOff, nil
	default:
		return "", fmt.Errorf("invalid --ui value %q (expected auto|on|off)", value)
	}
}

func shouldUseTUI(mode uiMode, out *os.File) bool {
	switch mode {
	case uiModeOn:
		return true
	case uiModeOff:
		return false
	default:
		return out != nil && isTerminal(out)
	}
}

type checkOutcome struct {
	results []driver.FileResult
	err     error
}

// checkWithUI runs the batch in the background while a progress view
// consumes its events. The view exits once the batch closes the channel.
func checkWithUI(ctx context.Context, out *os.File, paths []string, opts driver.Options) ([]driver.FileResult, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan checkOutcome, 1)

	go func() {
		opts.Progress = driver.ChannelSink{Ch: events}
		res, err := driver.CheckFiles(ctx, paths, opts)
		outcomeCh <- checkOutcome{results: res, err: err}
		close(events)
	}()

	title := fmt.Sprintf("checking %d %s", len(paths), plural(len(paths), "file", "files"))
	var w io.Writer = os.Stdout
	if out != nil {
		w = out
	}
	model := ui.NewProgressModel(title, paths, events)
	program := tea.NewProgram(model, tea.WithOutput(w), tea.WithContext(ctx))
	_, uiErr := program.Run()
	// дочитать события, чтобы воркеры не зависли, если вид вышел раньше
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
