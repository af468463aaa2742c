// Package note scaffolds new note files from a template.
package note

import (
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/clams-bin/clams/internal/errors"
	"github.com/clams-bin/clams/internal/paths"
	"github.com/clams-bin/clams/pkg/fileutil"
	"github.com/clams-bin/clams/pkg/frontmatter"
)

// Date layouts used for note paths and metadata.
const (
	DayLayout  = "2006-01-02"
	TimeLayout = "2006-01-02 15:04"
)

// Now is the date argument that selects the current time.
const Now = "now"

// Sentinel errors for note creation.
var (
	ErrInvalidDate    = errors.New("invalid date")
	ErrRenderTemplate = errors.New("could not render template")
	ErrNoteExists     = errors.New("note already exists")
	ErrWriteNote      = errors.New("could not write note")
)

// Meta is the data available to note templates.
type Meta struct {
	Title string `yaml:"title"`
	Date  string `yaml:"date"`
}

// NewMeta builds template data for title published on the day of t.
func NewMeta(title string, t time.Time) Meta {
	return Meta{Title: title, Date: ISODay(t)}
}

// TitleToFileName turns a title into a Markdown file name.
func TitleToFileName(title string) string {
	return strings.ReplaceAll(strings.ToLower(title), " ", "-") + ".md"
}

// ParseDate parses s in TimeLayout using local time. The literal "now"
// returns now unchanged.
func ParseDate(s string, now time.Time) (time.Time, error) {
	if s == Now {
		return now, nil
	}
	t, err := time.ParseInLocation(TimeLayout, s, time.Local)
	if err != nil {
		return time.Time{}, errors.Mark(
			errors.Wrapf(err, "date %q must look like %q or be %q", s, TimeLayout, Now),
			ErrInvalidDate)
	}
	return t, nil
}

// ISODay formats t as a calendar day.
func ISODay(t time.Time) string { return t.Format(DayLayout) }

// ISOTime formats t as a day with hours and minutes.
func ISOTime(t time.Time) string { return t.Format(TimeLayout) }

// Path is the location of a note: notesDir/<day>/<file name>.
func Path(notesDir, title string, t time.Time) string {
	return filepath.Join(notesDir, ISODay(t), TitleToFileName(title))
}

// Render executes tmpl with meta. An empty template produces a document with
// only a YAML frontmatter header holding the title and date.
func Render(tmpl string, meta Meta) (string, error) {
	if tmpl == "" {
		out, err := frontmatter.Format(meta, "")
		if err != nil {
			return "", errors.Mark(err, ErrRenderTemplate)
		}
		return string(out), nil
	}

	t, err := template.New("note").Option("missingkey=error").Parse(tmpl)
	if err != nil {
		return "", errors.Mark(errors.Wrap(err, "parsing template"), ErrRenderTemplate)
	}
	var b strings.Builder
	if err := t.Execute(&b, meta); err != nil {
		return "", errors.Mark(errors.Wrap(err, "executing template"), ErrRenderTemplate)
	}
	return b.String(), nil
}

// LoadTemplate resolves the notes_template setting. A value naming an
// existing file is read from disk, anything else is used as the template
// text itself.
func LoadTemplate(value string) (string, error) {
	if value == "" {
		return "", nil
	}
	path, err := paths.ExpandHome(value)
	if err != nil || !paths.IsFile(path) {
		return value, nil
	}
	data, err := fileutil.ReadLimited(path, fileutil.MaxTemplateSize)
	if err != nil {
		return "", errors.Mark(errors.Wrapf(err, "reading template %s", path), ErrRenderTemplate)
	}
	return string(data), nil
}

// Create writes content to a new file at path, creating its parent
// directory. An existing file is never replaced.
func Create(path, content string) error {
	if err := paths.EnsureDir(filepath.Dir(path), paths.DefaultDirPerm); err != nil {
		return errors.Mark(err, ErrWriteNote)
	}
	if err := fileutil.CreateFile(path, []byte(content), 0o644); err != nil {
		if errors.Is(err, fileutil.ErrExists) {
			return errors.Mark(err, ErrNoteExists)
		}
		return errors.Mark(errors.Wrapf(err, "writing %s", path), ErrWriteNote)
	}
	return nil
}
