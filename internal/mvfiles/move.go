package mvfiles

import (
	"os"

	"github.com/clams-bin/clams/internal/errors"
)

// ErrDestinationExists indicates a move would overwrite an existing file.
var ErrDestinationExists = errors.New("destination already exists")

// Move is a single planned rename.
type Move struct {
	From string
	To   string
}

// Result reports the outcome of one Move.
type Result struct {
	Move
	// Simulated is true when the move was skipped because of a dry run.
	Simulated bool
	// Err is the failure of this move, if any.
	Err error
}

// Options controls Execute.
type Options struct {
	// DryRun reports every move as simulated without touching the filesystem.
	DryRun bool
	// OnStart is called before each move.
	OnStart func(Move)
	// OnResult is called after each move.
	OnResult func(Result)
}

// Plan pairs every file with its path inside destDir.
func Plan(files []string, destDir string) ([]Move, error) {
	moves := make([]Move, 0, len(files))
	for _, f := range files {
		to, err := DestinationPath(destDir, f)
		if err != nil {
			return nil, err
		}
		moves = append(moves, Move{From: f, To: to})
	}
	return moves, nil
}

// Execute performs the moves one after another. A failing move is reported
// through OnResult and does not stop the remaining ones. It returns the
// number of failed moves.
func Execute(moves []Move, opts Options) int {
	failed := 0
	for _, m := range moves {
		if opts.OnStart != nil {
			opts.OnStart(m)
		}

		res := Result{Move: m, Simulated: opts.DryRun}
		if !opts.DryRun {
			res.Err = rename(m)
		}
		if res.Err != nil {
			failed++
		}

		if opts.OnResult != nil {
			opts.OnResult(res)
		}
	}
	return failed
}

func rename(m Move) error {
	if _, err := os.Lstat(m.To); err == nil {
		return errors.Wrapf(ErrDestinationExists, "%s", m.To)
	}
	if err := os.Rename(m.From, m.To); err != nil {
		return errors.Wrap(err, "renaming")
	}
	return nil
}
