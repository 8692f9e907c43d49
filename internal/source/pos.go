package source

import "fmt"

// Pos is a human-readable position: 1-based line and column inside a file.
// The scanner produces positions; nothing downstream recomputes them.
type Pos struct {
	File FileID `json:"file,omitempty"`
	Line uint32 `json:"line"`
	Col  uint32 `json:"col"`
}

// IsValid reports whether the position points at a real line.
func (p Pos) IsValid() bool { return p.Line > 0 }

// Before orders positions by file, line and column.
func (p Pos) Before(other Pos) bool {
	if p.File != other.File {
		return p.File < other.File
	}
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Col < other.Col
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}
