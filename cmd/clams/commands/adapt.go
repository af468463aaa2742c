package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/clams-bin/clams/internal/errors"
	"github.com/clams-bin/clams/internal/logging"
	"github.com/clams-bin/clams/internal/paths"
	"github.com/clams-bin/clams/pkg/frontmatter"
	"github.com/clams-bin/clams/pkg/pelican"
)

var (
	adaptSource      string
	adaptDestination string
	adaptExtension   string
	adaptFormat      string
	adaptDry         bool
	adaptProgressBar bool
	adaptSelect      bool
	adaptVerify      bool
)

// selectFiles lets the user pick a subset of files. Replaced in tests.
var selectFiles = fuzzySelect

func init() {
	adaptCmd.Flags().StringVarP(&adaptSource, "source", "s", "", "source directory (required)")
	adaptCmd.Flags().StringVarP(&adaptDestination, "destination", "d", "", "destination directory (required)")
	adaptCmd.Flags().StringVarP(&adaptExtension, "extension", "e", "md", "extension of the files to adapt")
	adaptCmd.Flags().StringVar(&adaptFormat, "format", "yaml", "output frontmatter format: yaml, toml")
	adaptCmd.Flags().BoolVar(&adaptDry, "dry", false, "only show what would be done")
	adaptCmd.Flags().BoolVarP(&adaptProgressBar, "progress-bar", "p", false, "show a progress bar")
	adaptCmd.Flags().BoolVar(&adaptSelect, "select", false, "interactively choose which files to adapt")
	adaptCmd.Flags().BoolVar(&adaptVerify, "verify", false, "check that every written file has valid YAML frontmatter")
	_ = adaptCmd.MarkFlagRequired("source")
	_ = adaptCmd.MarkFlagRequired("destination")
	rootCmd.AddCommand(adaptCmd)
}

var adaptCmd = &cobra.Command{
	Use:   "adapt-frontmatter",
	Short: "Convert Pelican frontmatter to Jekyll/Gatsby frontmatter",
	Long: `Adapt the frontmatter of files exported by the Pelican WordPress import
so that Jekyll or Gatsby accept it.

Every file directly inside the source directory with the given extension is
rewritten into the destination directory under the same name. The leading
"Key: value" lines up to the first blank line become a "---" delimited YAML
block with sorted keys; "tags" and "category" become lists and "slug" is
dropped. The rest of the file is copied unchanged.

A file that fails is reported and skipped; the command exits non-zero once
all files have been processed.`,
	Example: `  # Adapt all .md files
  clams adapt-frontmatter -s pelican/ -d jekyll/_posts/

  # Preview without writing
  clams adapt-frontmatter -s pelican/ -d out/ --dry

  # Hugo style TOML, hand-picked files
  clams adapt-frontmatter -s pelican/ -d hugo/content/ --format toml --select`,
	Args: cobra.NoArgs,
	RunE: runAdapt,
}

func runAdapt(cmd *cobra.Command, _ []string) error {
	logger := logging.FromContext(cmd.Context())
	out := cmd.OutOrStdout()

	extension := adaptExtension
	if !cmd.Flags().Changed("extension") && cfg != nil {
		extension = cfg.Adapt.Extension
	}
	format := pelican.Format(adaptFormat)
	if !cmd.Flags().Changed("format") && cfg != nil {
		format = pelican.Format(cfg.Adapt.Format)
	}
	if !pelican.ValidFormat(format) {
		return errors.NewUserError(errors.Newf("unknown format %q", format), "Use --format yaml or --format toml")
	}
	if adaptVerify && format != pelican.FormatYAML {
		return errors.NewUserError(errors.New("--verify only checks YAML output"), "Drop --verify or use --format yaml")
	}

	if adaptDry {
		printWarning(out, "Running in dry mode. No files will be written.")
	}
	if err := requireDir("Source", adaptSource); err != nil {
		return err
	}
	if err := requireDir("Destination", adaptDestination); err != nil {
		return err
	}
	if sameDir(adaptSource, adaptDestination) {
		err := errors.Newf("destination '%s' is the source directory", adaptDestination)
		return errors.NewUserError(err, "Write the adapted files into a separate directory")
	}

	files, err := listFiles(adaptSource, extension)
	if err != nil {
		return errors.NewSystemError(err, "")
	}
	if adaptSelect && len(files) > 0 {
		files, err = selectFiles(files)
		if err != nil {
			return errors.Wrap(err, "selecting files")
		}
	}

	logger.Debug("adapting frontmatter",
		"source", adaptSource,
		"destination", adaptDestination,
		"format", format,
		"dry", adaptDry,
		"progress_bar", adaptProgressBar,
		"files", len(files))

	bar, err := startProgress(cmd.ErrOrStderr(), adaptProgressBar, "Adapting", len(files))
	if err != nil {
		return errors.Wrap(err, "starting progress bar")
	}

	failed := 0
	for _, src := range files {
		dest := filepath.Join(adaptDestination, filepath.Base(src))

		if bar != nil {
			bar.update("Adapting " + filepath.Base(src))
		} else {
			printStart(out, "Adapting", src, dest)
		}

		switch {
		case adaptDry:
			if bar == nil {
				printSimulated(out)
			}
		default:
			if err := pelican.AdaptFileFormat(src, dest, format); err != nil {
				failed++
				if bar == nil {
					fmt.Fprintln(out)
				}
				printFailure(cmd.ErrOrStderr(), "adapt", src, err)
				logger.Debug("adapt failed", "file", src, "error", err)
				break
			}
			if bar == nil {
				printDone(out)
			}
			if adaptVerify {
				verifyAdapted(out, dest)
			}
		}
		bar.inc()
	}
	bar.stop()

	if failed > 0 {
		err := errors.Mark(errors.Newf("%d of %d files could not be adapted", failed, len(files)), errors.ErrPartialFailure)
		return errors.NewUserError(err, "")
	}
	return nil
}

// requireDir returns a user error naming the directory when it is missing.
func requireDir(role, dir string) error {
	if paths.IsDir(dir) {
		return nil
	}
	err := errors.Mark(errors.Newf("%s directory '%s' does not exist.", role, dir), errors.ErrNotADirectory)
	return errors.NewUserError(err, "")
}

// sameDir reports whether a and b name the same existing directory.
func sameDir(a, b string) bool {
	ai, err := os.Stat(a)
	if err != nil {
		return false
	}
	bi, err := os.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(ai, bi)
}

// listFiles returns the regular files directly inside dir whose extension is
// ext, in directory-listing order.
func listFiles(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", dir)
	}
	suffix := "." + strings.TrimPrefix(ext, ".")
	var files []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != suffix {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	return files, nil
}

// verifyAdapted warns when the written file does not carry valid YAML
// frontmatter, typically because a value contains a double quote.
func verifyAdapted(w io.Writer, path string) {
	var matter map[string]any
	if _, err := frontmatter.ParseFile(path, &matter); err != nil {
		printWarning(w, "Warning: %s has invalid frontmatter: %v", path, err)
	}
}

func fuzzySelect(files []string) ([]string, error) {
	idx, err := fuzzyfinder.FindMulti(
		files,
		func(i int) string { return filepath.Base(files[i]) },
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i == -1 {
				return ""
			}
			return previewAdapted(files[i])
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil, nil
		}
		return nil, err
	}

	selected := make([]string, 0, len(idx))
	for _, i := range idx {
		selected = append(selected, files[i])
	}
	return selected, nil
}

// previewAdapted renders the adapted frontmatter of path for the finder.
func previewAdapted(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return err.Error()
	}
	defer f.Close()

	var b strings.Builder
	if err := pelican.Adapt(f, &b); err != nil {
		return err.Error()
	}
	return b.String()
}
