package diagfmt

import (
	"io"

	"yaplc/internal/diag"
	"yaplc/internal/source"
)

// Short writes the single-line golden format, one diagnostic per line.
func Short(w io.Writer, bag *diag.Bag, fs *source.FileSet, withNotes bool) error {
	out := diag.FormatGoldenDiagnostics(bag.Items(), fs, withNotes)
	if out == "" {
		return nil
	}
	_, err := io.WriteString(w, out+"\n")
	return err
}
