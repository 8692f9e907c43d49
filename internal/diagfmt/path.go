package diagfmt

import (
	"path/filepath"

	"yaplc/internal/source"
)

// location renders "path:line:col" for pos, or "line:col" when neither the
// file set nor the fallback knows a path.
func location(pos source.Pos, fs *source.FileSet, mode PathMode, fallback string) string {
	path := displayPath(pos, fs, mode, fallback)
	if path == "" {
		return pos.String()
	}
	return path + ":" + pos.String()
}

func displayPath(pos source.Pos, fs *source.FileSet, mode PathMode, fallback string) string {
	var f *source.File
	if fs != nil {
		f = fs.Get(pos.File)
	}
	if f == nil {
		return filepath.ToSlash(fallback)
	}
	baseDir := ""
	if mode == PathModeRelative {
		baseDir = fs.BaseDir()
	}
	return f.FormatPath(mode.String(), baseDir)
}
