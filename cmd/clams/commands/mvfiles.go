package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/clams-bin/clams/internal/errors"
	"github.com/clams-bin/clams/internal/logging"
	"github.com/clams-bin/clams/internal/mvfiles"
)

var (
	mvExtensions  string
	mvSize        string
	mvDry         bool
	mvProgressBar bool
)

func init() {
	mvFilesCmd.Flags().StringVarP(&mvExtensions, "extension", "e", "avi,mkv,mp4", "comma separated file extensions to consider")
	mvFilesCmd.Flags().StringVarP(&mvSize, "size", "s", "100M", "only move files bigger than this (suffixes k, M, G, T, P)")
	mvFilesCmd.Flags().BoolVarP(&mvDry, "dry", "d", false, "only show what would be done")
	mvFilesCmd.Flags().BoolVarP(&mvProgressBar, "progress-bar", "p", false, "show a progress bar")
	rootCmd.AddCommand(mvFilesCmd)
}

var mvFilesCmd = &cobra.Command{
	Use:   "mv-files <source>... <destination>",
	Short: "Move large video files from nested directories into one directory",
	Long: `Search every source directory recursively for files with one of the
given extensions that are bigger than --size and move them directly into the
destination directory.

Existing files in the destination are never overwritten; such moves are
reported as failures and the remaining files are still moved.`,
	Example: `  # Move all videos over 100 MiB
  clams mv-files ~/Downloads/torrents ~/Videos

  # Only mkv files over 1 GiB, from two trees, without moving anything
  clams mv-files -e mkv -s 1G --dry /mnt/a /mnt/b ~/Videos`,
	Args: cobra.MinimumNArgs(2),
	RunE: runMvFiles,
}

func runMvFiles(cmd *cobra.Command, args []string) error {
	logger := logging.FromContext(cmd.Context())
	out := cmd.OutOrStdout()

	extList := mvExtensions
	if !cmd.Flags().Changed("extension") && cfg != nil {
		extList = cfg.MvFiles.Extensions
	}
	sizeArg := mvSize
	if !cmd.Flags().Changed("size") && cfg != nil {
		sizeArg = cfg.MvFiles.Size
	}

	if mvDry {
		printWarning(out, "Running in dry mode. No moves will be performed.")
	}

	minSize, err := mvfiles.ParseHumanSize(sizeArg)
	if err != nil {
		return errors.NewUserError(err, "Use a whole number with an optional k, M, G, T or P suffix")
	}
	exts, err := mvfiles.ParseExtensions(extList)
	if err != nil {
		return errors.NewUserError(err, "")
	}

	sources, destination := args[:len(args)-1], args[len(args)-1]
	if err := requireDir("Destination", destination); err != nil {
		return err
	}
	for _, src := range sources {
		if err := requireDir("Source", src); err != nil {
			return err
		}
	}

	files, err := mvfiles.Find(sources, exts, minSize)
	if err != nil {
		if errors.Is(err, mvfiles.ErrInvalidExtensions) {
			return errors.NewUserError(err, "")
		}
		return errors.NewSystemError(err, "")
	}
	logger.Debug("found files",
		"sources", sources,
		"extensions", exts,
		"min_size", mvfiles.FormatSize(minSize),
		"count", len(files))

	moves, err := mvfiles.Plan(files, destination)
	if err != nil {
		return errors.NewSystemError(err, "")
	}

	bar, err := startProgress(cmd.ErrOrStderr(), mvProgressBar, "Moving", len(moves))
	if err != nil {
		return errors.Wrap(err, "starting progress bar")
	}

	failed := mvfiles.Execute(moves, mvfiles.Options{
		DryRun: mvDry,
		OnStart: func(m mvfiles.Move) {
			if bar != nil {
				bar.update("Moving " + filepath.Base(m.From))
				return
			}
			printStart(out, "Moving", m.From, m.To)
		},
		OnResult: func(r mvfiles.Result) {
			defer bar.inc()
			switch {
			case r.Err != nil:
				if bar == nil {
					fmt.Fprintln(out)
				}
				printFailure(cmd.ErrOrStderr(), "move", r.From, r.Err)
			case bar != nil:
			case r.Simulated:
				printSimulated(out)
			default:
				printDone(out)
			}
		},
	})
	bar.stop()

	if failed > 0 {
		err := errors.Mark(errors.Newf("%d of %d files could not be moved", failed, len(moves)), errors.ErrPartialFailure)
		return errors.NewUserError(err, "")
	}
	return nil
}
