// Package paths provides path resolution helpers for the clams CLI.
//
// Configuration lives below the XDG config home (github.com/adrg/xdg), so
// on Linux the default config file is ~/.config/clams/config.yaml.
// ExpandHome resolves "~" in user-supplied directories such as the notes
// directory.
package paths
