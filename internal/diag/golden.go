package diag

import (
	"fmt"
	"path/filepath"
	"strings"

	"yaplc/internal/source"
)

// FormatGoldenDiagnostics renders diagnostics one per line as
//
//	<severity> <CODE> [<path>:]<line>:<col> <message>
//
// in the order given, which for a Bag is detection order. The path is
// included only when the position's file is present in fs.
func FormatGoldenDiagnostics(diags []Diagnostic, fs *source.FileSet, includeNotes bool) string {
	var b strings.Builder
	for _, d := range diags {
		writeGoldenLine(&b, severityLabel(d.Severity), d.Code, d.Primary, d.Message, fs)
		if !includeNotes {
			continue
		}
		for _, note := range d.Notes {
			writeGoldenLine(&b, "note", d.Code, note.Pos, note.Msg, fs)
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func writeGoldenLine(b *strings.Builder, sev string, code Code, pos source.Pos, msg string, fs *source.FileSet) {
	loc := fmt.Sprintf("%d:%d", pos.Line, pos.Col)
	if f := fs.Get(pos.File); f != nil {
		loc = normalizePath(f.FormatPath("relative", fs.BaseDir())) + ":" + loc
	}
	fmt.Fprintf(b, "%s %s %s %s\n", sev, code.ID(), loc, sanitizeMessage(msg))
}

func normalizePath(path string) string {
	p := filepath.ToSlash(path)
	for strings.HasPrefix(p, "./") {
		p = strings.TrimPrefix(p, "./")
	}
	return p
}

func severityLabel(sev Severity) string {
	switch sev {
	case SevError:
		return "error"
	case SevWarning:
		return "warning"
	default:
		return "info"
	}
}

func sanitizeMessage(msg string) string {
	msg = strings.ReplaceAll(msg, "\r\n", "\n")
	msg = strings.ReplaceAll(msg, "\r", "\n")
	msg = strings.ReplaceAll(msg, "\n", " ")
	return strings.TrimSpace(msg)
}
