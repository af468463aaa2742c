package pelican

import (
	"github.com/clams-bin/clams/internal/errors"
)

// Error kinds returned by this package. Returned errors carry the cause in
// their message and match one of these via errors.Is.
var (
	// ErrOpenSource indicates the source file is missing or unreadable.
	ErrOpenSource = errors.New("failed to open source file")

	// ErrOpenDestination indicates the destination file cannot be created.
	ErrOpenDestination = errors.New("failed to open destination file")

	// ErrRead indicates an I/O error while buffering the source.
	ErrRead = errors.New("failed to read")

	// ErrSameFile indicates the destination is the source file itself.
	ErrSameFile = errors.New("destination is the source file")

	// ErrWrite indicates an I/O error while emitting frontmatter or body.
	ErrWrite = errors.New("failed to write")
)

func markf(err, kind error, format string, args ...any) error {
	return errors.Mark(errors.Wrapf(err, format, args...), kind)
}
