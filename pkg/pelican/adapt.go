package pelican

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// Format selects the frontmatter syntax written by the adapter.
type Format string

const (
	// FormatYAML writes "---" delimited YAML frontmatter (Jekyll, Gatsby).
	FormatYAML Format = "yaml"
	// FormatTOML writes "+++" delimited TOML frontmatter (Hugo).
	FormatTOML Format = "toml"
)

// ValidFormat reports whether f names a supported output format.
func ValidFormat(f Format) bool {
	return f == FormatYAML || f == FormatTOML
}

// Adapt reads a Pelican document from src and writes it to dest with YAML
// frontmatter.
//
// The frontmatter block is every line up to the first empty line. That line
// is consumed and not copied. Each remaining line is written preceded by a
// newline, so the body starts after a blank line. Output already written is
// not rolled back when a write fails.
func Adapt(src io.Reader, dest io.Writer) error {
	return AdaptFormat(src, dest, FormatYAML)
}

// AdaptFormat is like Adapt but renders the frontmatter in the given format.
func AdaptFormat(src io.Reader, dest io.Writer, format Format) error {
	content, err := io.ReadAll(src)
	if err != nil {
		return markf(err, ErrRead, "failed to read")
	}

	front, body := splitDocument(strings.Split(string(content), "\n"))
	fm := Normalize(ParseFrontMatter(front))

	var header string
	switch format {
	case FormatTOML:
		if header, err = RenderTOML(fm); err != nil {
			return markf(err, ErrWrite, "failed to encode frontmatter")
		}
	default:
		header = fm.Render()
	}

	w := bufio.NewWriter(dest)
	if _, err := w.WriteString(header); err != nil {
		return markf(err, ErrWrite, "failed to write")
	}
	for _, line := range body {
		if err := w.WriteByte('\n'); err != nil {
			return markf(err, ErrWrite, "failed to write")
		}
		if _, err := w.WriteString(line); err != nil {
			return markf(err, ErrWrite, "failed to write")
		}
	}
	if err := w.Flush(); err != nil {
		return markf(err, ErrWrite, "failed to write")
	}
	return nil
}

// splitDocument separates the frontmatter lines from the body lines.
// The first empty line ends the frontmatter and belongs to neither part.
func splitDocument(lines []string) (front, body []string) {
	for i, line := range lines {
		if line == "" {
			return lines[:i], lines[i+1:]
		}
	}
	return lines, nil
}

// AdaptFile adapts the file at src and writes the result to dest, which is
// created or truncated.
func AdaptFile(src, dest string) error {
	return AdaptFileFormat(src, dest, FormatYAML)
}

// AdaptFileFormat is like AdaptFile but renders the frontmatter in the given
// format.
func AdaptFileFormat(src, dest string, format Format) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return markf(err, ErrOpenSource, "could not open source file")
	}
	defer in.Close()

	// Creating dest truncates it, which would wipe a source read in place.
	if srcInfo, err := in.Stat(); err == nil {
		if destInfo, err := os.Stat(dest); err == nil && os.SameFile(srcInfo, destInfo) {
			return markf(ErrSameFile, ErrOpenDestination, "could not open destination file %s", dest)
		}
	}

	out, err := os.Create(dest)
	if err != nil {
		return markf(err, ErrOpenDestination, "could not open destination file")
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = markf(cerr, ErrWrite, "failed to write")
		}
	}()

	return AdaptFormat(in, out, format)
}
