package frontmatter

import (
	"bytes"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/clams-bin/clams/internal/errors"
)

// Sentinel errors returned by Parse and ParseFile.
var (
	ErrNoFrontmatter = errors.New("no frontmatter found")
	ErrInvalidYAML   = errors.New("invalid YAML")
)

// Parse decodes the YAML frontmatter of the document in r into matter and
// returns the body that follows the closing delimiter.
func Parse[T any](r io.Reader, matter *T) ([]byte, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading document")
	}

	header, body, ok := split(content)
	if !ok {
		return nil, ErrNoFrontmatter
	}

	if err := yaml.Unmarshal(header, matter); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "invalid YAML"), ErrInvalidYAML)
	}
	return body, nil
}

// ParseFile is Parse on the contents of the file at path.
func ParseFile[T any](path string, matter *T) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()

	body, err := Parse(f, matter)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	return body, nil
}

// split separates the header between the "---" delimiters from the body.
// It reports false when the document has no complete frontmatter block.
func split(content []byte) (header, body []byte, ok bool) {
	var rest []byte
	switch {
	case bytes.HasPrefix(content, []byte("---\n")):
		rest = content[4:]
	case bytes.HasPrefix(content, []byte("---\r\n")):
		rest = content[5:]
	default:
		return nil, nil, false
	}

	// An empty header closes immediately.
	if bytes.HasPrefix(rest, []byte("---")) {
		return nil, trimNewline(rest[3:]), true
	}

	idx := bytes.Index(rest, []byte("\n---"))
	if idx < 0 {
		return nil, nil, false
	}
	header = bytes.TrimSuffix(rest[:idx], []byte("\r"))
	return header, trimNewline(rest[idx+4:]), true
}

func trimNewline(b []byte) []byte {
	b = bytes.TrimPrefix(b, []byte("\r"))
	return bytes.TrimPrefix(b, []byte("\n"))
}

// Format serializes matter as YAML between "---" delimiters. A non-empty
// body follows after a blank line and always ends with a newline.
func Format(matter any, body string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("---\n")

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(matter); err != nil {
		return nil, errors.Wrap(err, "encoding frontmatter")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Wrap(err, "encoding frontmatter")
	}

	buf.WriteString("---\n")
	if body != "" {
		buf.WriteString("\n")
		buf.WriteString(body)
		if !strings.HasSuffix(body, "\n") {
			buf.WriteString("\n")
		}
	}
	return buf.Bytes(), nil
}
