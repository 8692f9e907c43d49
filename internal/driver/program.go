package driver

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	"yaplc/internal/ast"
)

// ProgramFormat is the encoding of a parsed program file.
type ProgramFormat uint8

const (
	FormatUnknown ProgramFormat = iota
	FormatJSON
	FormatMsgpack
)

// ErrUnknownFormat is returned for files whose extension names no format.
var ErrUnknownFormat = errors.New("unknown program format")

// FormatOf picks the format from the file extension.
func FormatOf(path string) ProgramFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yast", ".msgpack":
		return FormatMsgpack
	default:
		return FormatUnknown
	}
}

// DecodeProgram decodes data and validates the tree with ast.Validate.
// MessagePack reuses the json field names so both encodings describe the
// same tree.
func DecodeProgram(data []byte, format ProgramFormat) (*ast.Program, error) {
	var prog ast.Program
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&prog); err != nil {
			return nil, err
		}
	case FormatMsgpack:
		dec := msgpack.NewDecoder(bytes.NewReader(data))
		dec.SetCustomStructTag("json")
		dec.DisallowUnknownFields(true)
		if err := dec.Decode(&prog); err != nil {
			return nil, err
		}
	default:
		return nil, ErrUnknownFormat
	}
	if err := ast.Validate(&prog); err != nil {
		return nil, err
	}
	return &prog, nil
}

// EncodeProgram writes prog in the given format.
func EncodeProgram(w io.Writer, prog *ast.Program, format ProgramFormat) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(prog)
	case FormatMsgpack:
		enc := msgpack.NewEncoder(w)
		enc.SetCustomStructTag("json")
		enc.SetOmitEmpty(true)
		return enc.Encode(prog)
	default:
		return ErrUnknownFormat
	}
}

// ExpandPaths replaces every directory argument with the program files it
// contains (non-recursive, sorted). Files are kept as given.
func ExpandPaths(paths []string) ([]string, error) {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %q: %w", p, err)
		}
		if !info.IsDir() {
			out = append(out, p)
			continue
		}
		entries, err := os.ReadDir(p)
		if err != nil {
			return nil, fmt.Errorf("failed to read directory %q: %w", p, err)
		}
		var found []string
		for _, e := range entries {
			if !e.IsDir() && FormatOf(e.Name()) != FormatUnknown {
				found = append(found, filepath.Join(p, e.Name()))
			}
		}
		sort.Strings(found)
		out = append(out, found...)
	}
	return out, nil
}
