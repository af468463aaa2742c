package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/clams-bin/clams/internal/editor"
	"github.com/clams-bin/clams/internal/errors"
	"github.com/clams-bin/clams/internal/logging"
	"github.com/clams-bin/clams/internal/note"
	"github.com/clams-bin/clams/internal/paths"
)

var (
	newNoteTitle  string
	newNoteDate   string
	newNoteEdit   bool
	newNoteSilent bool
)

// now is the clock used for "--date now". Replaced in tests.
var now = time.Now

func init() {
	newNoteCmd.Flags().StringVarP(&newNoteTitle, "title", "t", "", "note title (required)")
	newNoteCmd.Flags().StringVarP(&newNoteDate, "date", "d", note.Now, `publication date as "YYYY-MM-DD HH:MM" or "now"`)
	newNoteCmd.Flags().BoolVarP(&newNoteEdit, "edit", "e", false, "open the new note in $EDITOR")
	newNoteCmd.Flags().BoolVarP(&newNoteSilent, "silent", "s", false, "do not print the created path")
	_ = newNoteCmd.MarkFlagRequired("title")
	rootCmd.AddCommand(newNoteCmd)
}

var newNoteCmd = &cobra.Command{
	Use:   "new-note",
	Short: "Create a new note or article from a template",
	Long: `Create a new Markdown note below notes_directory in a folder named after
the publication day. The file name is derived from the title.

The content comes from notes_template, which is either the template text or
the path to a template file. Templates use Go template syntax with the
fields {{.Title}} and {{.Date}}. Without a template the note only gets a
YAML frontmatter header with title and date.

Existing notes are never overwritten.`,
	Example: `  # Note for today
  clams new-note -t "Release checklist"

  # Backdated article, opened in $EDITOR
  clams new-note -t "Trip report" -d "2024-05-01 18:00" -e

  # Use a specific config file
  clams new-note -c ~/blog/new_note.conf -t "Draft"`,
	Args: cobra.NoArgs,
	RunE: runNewNote,
}

func runNewNote(cmd *cobra.Command, _ []string) error {
	logger := logging.FromContext(cmd.Context())

	notesDir := ""
	template := ""
	if cfg != nil {
		notesDir, template = cfg.NotesDirectory, cfg.NotesTemplate
	}
	if notesDir == "" {
		return errors.NewConfigError(errors.New("notes_directory is not set"))
	}
	notesDir, err := paths.ExpandHome(notesDir)
	if err != nil {
		return errors.NewSystemError(err, "")
	}
	if err := requireDir("Notes", notesDir); err != nil {
		return err
	}

	date, err := note.ParseDate(newNoteDate, now())
	if err != nil {
		return errors.NewUserError(err, "")
	}

	tmpl, err := note.LoadTemplate(template)
	if err != nil {
		return errors.NewConfigError(err)
	}
	content, err := note.Render(tmpl, note.NewMeta(newNoteTitle, date))
	if err != nil {
		return errors.NewConfigError(err)
	}

	path := note.Path(notesDir, newNoteTitle, date)
	logger.Debug("creating note",
		"path", path,
		"title", newNoteTitle,
		"date", note.ISOTime(date),
		"edit", newNoteEdit)

	if err := note.Create(path, content); err != nil {
		if errors.Is(err, note.ErrNoteExists) {
			return errors.NewUserError(errors.Wrapf(err, "cowardly refusing to overwrite %s", path),
				"Pick another title or date")
		}
		return errors.NewSystemError(err, "")
	}
	if !newNoteSilent {
		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", doneColor.Sprint(path))
	}

	if newNoteEdit {
		if err := editor.Open(cmd.Context(), cmd.OutOrStdout(), path); err != nil {
			logger.Warn("could not open editor", "path", path, "error", err)
		}
	}
	return nil
}
