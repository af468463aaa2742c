// Package mvfiles finds large files in nested directory trees and moves
// them into a single flat destination directory.
package mvfiles

import (
	"math/bits"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/clams-bin/clams/internal/errors"
)

// Sentinel errors for argument validation.
var (
	ErrEmptySources      = errors.New("source directories missing")
	ErrEmptyExtensions   = errors.New("extensions missing")
	ErrInvalidSize       = errors.New("invalid size")
	ErrInvalidExtensions = errors.New("invalid extensions list")
	ErrInvalidFileName   = errors.New("invalid file name")
)

// scales maps the single letter size suffixes to their binary multipliers.
var scales = map[byte]uint64{
	'k': humanize.KiByte,
	'M': humanize.MiByte,
	'G': humanize.GiByte,
	'T': humanize.TiByte,
	'P': humanize.PiByte,
}

// ParseHumanSize converts sizes like "100", "512k" or "2G" into bytes.
// Suffixes k, M, G, T and P are powers of 1024. The number must be an
// unsigned integer.
func ParseHumanSize(size string) (uint64, error) {
	if size == "" {
		return 0, errors.Wrap(ErrInvalidSize, "empty size")
	}

	number, scale := size, uint64(humanize.Byte)
	if m, ok := scales[size[len(size)-1]]; ok {
		number, scale = size[:len(size)-1], m
	}

	n, err := strconv.ParseUint(number, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidSize, "%q", size)
	}

	hi, bytes := bits.Mul64(n, scale)
	if hi != 0 {
		return 0, errors.Wrapf(ErrInvalidSize, "%q overflows", size)
	}
	return bytes, nil
}

// FormatSize renders a byte count with binary units, e.g. "1.5 GiB".
func FormatSize(bytes uint64) string {
	return humanize.IBytes(bytes)
}

// ParseExtensions splits a comma separated extension list. Trailing commas
// are ignored.
func ParseExtensions(ext string) ([]string, error) {
	if ext == "" {
		return nil, errors.Wrap(ErrInvalidExtensions, "empty list")
	}
	return strings.Split(strings.TrimRight(ext, ","), ","), nil
}

// DestinationPath returns the path file would have after being moved into
// destDir.
func DestinationPath(destDir, file string) (string, error) {
	name := filepath.Base(file)
	if file == "" || name == "." || name == ".." || name == string(filepath.Separator) {
		return "", errors.Wrapf(ErrInvalidFileName, "%q", file)
	}
	return filepath.Join(destDir, name), nil
}
