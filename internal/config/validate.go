package config

import (
	"path/filepath"
	"strings"

	"github.com/clams-bin/clams/internal/errors"
	"github.com/clams-bin/clams/internal/mvfiles"
	"github.com/clams-bin/clams/pkg/pelican"
)

// Validation errors for configuration fields.
var (
	// ErrVersionTooLow indicates the version field is below the minimum.
	ErrVersionTooLow = errors.New("version must be >= 1")

	// ErrInvalidPath indicates a path value is malformed.
	ErrInvalidPath = errors.New("invalid path")

	// ErrInvalidValue indicates a field value cannot be parsed.
	ErrInvalidValue = errors.New("invalid value")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Version < 1 {
		errs = append(errs, ErrVersionTooLow)
	}

	if err := validatePath(cfg.NotesDirectory); err != nil {
		errs = append(errs, &FieldError{Field: "notes_directory", Value: cfg.NotesDirectory, Err: err})
	}

	if cfg.MvFiles.Size != "" {
		if _, err := mvfiles.ParseHumanSize(cfg.MvFiles.Size); err != nil {
			errs = append(errs, &FieldError{Field: "mv_files.size", Value: cfg.MvFiles.Size, Err: ErrInvalidValue})
		}
	}

	if cfg.MvFiles.Extensions != "" {
		exts, _ := mvfiles.ParseExtensions(cfg.MvFiles.Extensions)
		if _, err := mvfiles.Pattern(exts); err != nil {
			errs = append(errs, &FieldError{Field: "mv_files.extensions", Value: cfg.MvFiles.Extensions, Err: ErrInvalidValue})
		}
	}

	if strings.ContainsAny(cfg.Adapt.Extension, `/\`) {
		errs = append(errs, &FieldError{Field: "adapt.extension", Value: cfg.Adapt.Extension, Err: ErrInvalidValue})
	}

	if cfg.Adapt.Format != "" && !pelican.ValidFormat(pelican.Format(cfg.Adapt.Format)) {
		errs = append(errs, &FieldError{Field: "adapt.format", Value: cfg.Adapt.Format, Err: ErrInvalidValue})
	}

	return errs
}

// validatePath checks if a path string is well-formed.
// It does not check if the path exists, only that it's syntactically valid.
func validatePath(path string) error {
	// Empty paths are valid (they mean "not configured")
	if path == "" {
		return nil
	}

	// Check for null bytes which are never valid in paths
	if strings.ContainsRune(path, '\x00') {
		return ErrInvalidPath
	}

	cleaned := filepath.Clean(path)
	if cleaned == "" || cleaned == "." {
		return ErrInvalidPath
	}

	return nil
}

// FieldError reports an invalid value of a single config field.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error() + ": " + e.Value
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
