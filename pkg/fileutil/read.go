package fileutil

import (
	"io"
	"os"

	"github.com/clams-bin/clams/internal/errors"
)

// MaxTemplateSize bounds the size of note templates read from disk.
const MaxTemplateSize = 1 << 20

// ErrTooLarge indicates that a file exceeded the requested limit.
var ErrTooLarge = errors.New("file too large")

// ReadLimited reads the whole file at path, failing with ErrTooLarge when it
// holds more than limit bytes.
func ReadLimited(path string, limit int64) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening file")
	}
	defer f.Close()

	if info, err := f.Stat(); err == nil && info.Size() > limit {
		return nil, tooLarge(path, limit)
	}

	data, err := io.ReadAll(io.LimitReader(f, limit+1))
	if err != nil {
		return nil, errors.Wrap(err, "reading file")
	}
	if int64(len(data)) > limit {
		return nil, tooLarge(path, limit)
	}
	return data, nil
}

func tooLarge(path string, limit int64) error {
	return errors.Mark(errors.Newf("%s exceeds %d bytes", path, limit), ErrTooLarge)
}
