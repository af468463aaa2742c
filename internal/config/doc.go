// Package config provides configuration management for the clams CLI.
//
// The configuration is optional. Without a file every command falls back to
// its flag defaults. The default location is config.yaml in the current
// directory or in ~/.config/clams/. A file passed with --config may be YAML,
// TOML or JSON; files ending in ".conf" are read as TOML.
//
//	version: 1
//	notes_directory: ~/notes
//	notes_template: ~/.config/clams/note.md.tmpl
//	mv_files:
//	  extensions: avi,mkv,mp4
//	  size: 100M
//	adapt:
//	  extension: md
//	  format: yaml
//
// Every key can be overridden from the environment with the CLAMS_ prefix,
// e.g. CLAMS_NOTES_DIRECTORY or CLAMS_MV_FILES_SIZE.
//
// [Load] validates the result with [Validate].
package config
