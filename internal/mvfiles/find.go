package mvfiles

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/clams-bin/clams/internal/errors"
)

// globMeta are the characters with special meaning in doublestar patterns.
const globMeta = `*?[]{}\,/`

// Pattern builds the doublestar pattern matching every file below a root
// with one of the given extensions.
func Pattern(exts []string) (string, error) {
	if len(exts) == 0 {
		return "", ErrEmptyExtensions
	}
	for _, ext := range exts {
		if ext == "" || strings.ContainsAny(ext, globMeta) {
			return "", errors.Wrapf(ErrInvalidExtensions, "%q", ext)
		}
	}
	if len(exts) == 1 {
		return "**/*." + exts[0], nil
	}
	return "**/*.{" + strings.Join(exts, ",") + "}", nil
}

// Find returns the regular files below sources whose extension is one of
// exts and whose size is strictly greater than minSize. Results are grouped
// by source in the given order and sorted within each source.
func Find(sources, exts []string, minSize uint64) ([]string, error) {
	if len(sources) == 0 {
		return nil, ErrEmptySources
	}
	pattern, err := Pattern(exts)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, src := range sources {
		fsys := os.DirFS(src)
		matches, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			return nil, errors.Wrapf(err, "searching %s", src)
		}
		slices.Sort(matches)

		for _, m := range matches {
			info, err := fs.Stat(fsys, m)
			if err != nil {
				return nil, errors.Wrapf(err, "inspecting %s", m)
			}
			if !info.Mode().IsRegular() || uint64(info.Size()) <= minSize {
				continue
			}
			files = append(files, filepath.Join(src, filepath.FromSlash(m)))
		}
	}
	return files, nil
}
