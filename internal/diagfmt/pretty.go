package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"yaplc/internal/diag"
	"yaplc/internal/source"
)

type palette struct {
	err, warn, info, note, code, gutter, caret *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		note:   color.New(color.FgBlue, color.Bold),
		code:   color.New(color.Bold),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgGreen, color.Bold),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.note, p.code, p.gutter, p.caret} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид, в порядке bag.Items():
//
//	<path>:<line>:<col>: <sev> <CODE>: <message>
//	   5 |   x := 1.5;
//	     |     ^
//
// The snippet is printed only when the file is loaded into fs.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) error {
	p := newPalette(opts.Color)
	for _, d := range bag.Items() {
		var b strings.Builder
		sev := p.severity(d.Severity)
		fmt.Fprintf(&b, "%s: %s %s: %s\n",
			location(d.Primary, fs, opts.PathMode, opts.Fallback),
			sev.Sprint(strings.ToLower(d.Severity.String())),
			p.code.Sprint(d.Code.ID()),
			d.Message)
		writeSnippet(&b, p, fs, d.Primary)
		if opts.ShowNotes {
			for _, n := range d.Notes {
				fmt.Fprintf(&b, "  %s %s: %s\n", p.note.Sprint("note:"), location(n.Pos, fs, opts.PathMode, opts.Fallback), n.Msg)
				writeSnippet(&b, p, fs, n.Pos)
			}
		}
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
	}
	return nil
}

func writeSnippet(b *strings.Builder, p palette, fs *source.FileSet, pos source.Pos) {
	if fs == nil || !pos.IsValid() {
		return
	}
	f := fs.Get(pos.File)
	if f == nil {
		return
	}
	line := f.GetLine(pos.Line)
	if line == "" {
		return
	}
	gutter := fmt.Sprintf("%4d | ", pos.Line)
	blank := strings.Repeat(" ", len(gutter)-2) + "| "
	b.WriteString(p.gutter.Sprint(gutter))
	b.WriteString(line)
	b.WriteByte('\n')
	b.WriteString(p.gutter.Sprint(blank))
	b.WriteString(caretPadding(line, pos.Col))
	b.WriteString(p.caret.Sprint("^"))
	b.WriteByte('\n')
}

// caretPadding returns the whitespace that puts a caret under the 1-based
// rune column col. Tabs are kept so the caret lines up however the terminal
// expands them; wide runes take two cells.
func caretPadding(line string, col uint32) string {
	var pad strings.Builder
	n := uint32(1)
	for _, r := range line {
		if n >= col {
			break
		}
		if r == '\t' {
			pad.WriteByte('\t')
		} else {
			pad.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
		}
		n++
	}
	return pad.String()
}
