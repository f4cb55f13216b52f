package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/notes/internal/model"
	"github.com/idilsaglam/notes/internal/store"
	"github.com/idilsaglam/notes/internal/ui"
)

const (
	snippetWidth = 72
	dateLayout   = "2006-01-02 15:04"
)

func newListCmd(s *session) *cobra.Command {
	var search string
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List notes, newest first",
		Args:    usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, _, done, err := s.open(false)
			if err != nil {
				return err
			}
			defer done()

			notes, err := b.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("list notes: %w", err)
			}
			ui.Panel(s.stdout, listLines(model.Filter(notes, search), len(notes), search))
			return nil
		},
	}
	cmd.Flags().StringVarP(&search, "search", "s", "", "only show notes whose title or content contains this text")
	return cmd
}

func newAddCmd(s *session) *cobra.Command {
	var content string
	cmd := &cobra.Command{
		Use:   "add [title...]",
		Short: "Create a note (an empty title becomes \"" + model.DefaultTitle + "\")",
		Args:  usageArgs(cobra.ArbitraryArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, _, done, err := s.open(false)
			if err != nil {
				return err
			}
			defer done()

			n, err := b.Create(cmd.Context(), strings.Join(args, " "), content)
			if err != nil {
				return fmt.Errorf("create note: %w", err)
			}
			if n == nil {
				return fmt.Errorf("create note: service returned no note")
			}
			ui.OK(s.stdout, "created "+n.ID)
			return nil
		},
	}
	cmd.Flags().StringVarP(&content, "content", "c", "", "note body")
	return cmd
}

func newEditCmd(s *session) *cobra.Command {
	var title, content string
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change the title or content of a note",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if !flags.Changed("title") && !flags.Changed("content") {
				return usage(fmt.Errorf("edit: nothing to change, pass --title or --content"))
			}

			b, _, done, err := s.open(false)
			if err != nil {
				return err
			}
			defer done()

			cur, err := find(cmd.Context(), b, args[0])
			if err != nil {
				return err
			}
			edit := model.ExistingNote{ID: cur.ID, Title: cur.Title, Content: cur.Content}
			if flags.Changed("title") {
				edit.Title = title
			}
			if flags.Changed("content") {
				edit.Content = content
			}
			if _, err := b.Update(cmd.Context(), edit.ID, edit.Title, edit.Content); err != nil {
				return fmt.Errorf("save note: %w", err)
			}
			ui.OK(s.stdout, "saved "+edit.ID)
			return nil
		},
	}
	cmd.Flags().StringVarP(&title, "title", "t", "", "new title")
	cmd.Flags().StringVarP(&content, "content", "c", "", "new body")
	return cmd
}

func newShowCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print one note",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, _, done, err := s.open(false)
			if err != nil {
				return err
			}
			defer done()

			n, err := find(cmd.Context(), b, args[0])
			if err != nil {
				return err
			}
			ui.Panel(s.stdout, noteLines(n))
			return nil
		},
	}
}

func newRemoveCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a note",
		Args:    usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, _, done, err := s.open(false)
			if err != nil {
				return err
			}
			defer done()

			// Deleting an unknown id succeeds silently in the store; tell the user.
			if _, err := find(cmd.Context(), b, args[0]); err != nil {
				return err
			}
			if err := b.Delete(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("delete note: %w", err)
			}
			ui.OK(s.stdout, "deleted "+args[0])
			return nil
		},
	}
}

func find(ctx context.Context, s store.Store, id string) (model.Note, error) {
	notes, err := s.List(ctx)
	if err != nil {
		return model.Note{}, fmt.Errorf("list notes: %w", err)
	}
	for _, n := range notes {
		if n.ID == id {
			return n, nil
		}
	}
	return model.Note{}, &store.NotFoundError{ID: id}
}

func listLines(notes []model.Note, total int, search string) []string {
	t := ui.Current()
	header := ui.C(t.Title, "Notes") + "  " + ui.C(t.Accent, fmt.Sprint(len(notes)))
	if search != "" {
		header += ui.C(t.Muted, fmt.Sprintf(" of %d matching %q", total, search))
	}
	lines := []string{header, ""}

	switch {
	case len(notes) == 0 && search != "":
		lines = append(lines, ui.C(t.Muted, "no notes match"))
	case len(notes) == 0:
		lines = append(lines, ui.C(t.Muted, "no notes yet"))
	}
	for i, n := range notes {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines,
			ui.C(t.Accent, t.Bullet)+" "+ui.C(t.Title, ui.Truncate(n.DisplayTitle(), snippetWidth)),
			"  "+ui.C(t.Muted, n.ID+"  "+n.Modified().Format(dateLayout)),
		)
		if snip := snippet(n.Content); snip != "" {
			lines = append(lines, "  "+snip)
		}
	}

	lines = append(lines, "", ui.C(t.Muted, "Tip: add with `notes add \"Groceries\" -c \"milk, eggs\"`"))
	return lines
}

func noteLines(n model.Note) []string {
	t := ui.Current()
	lines := []string{
		ui.C(t.Title, n.DisplayTitle()),
		ui.C(t.Muted, n.ID+"  "+n.Modified().Format(dateLayout)),
		"",
	}
	if strings.TrimSpace(n.Content) == "" {
		return append(lines, ui.C(t.Muted, "(empty)"))
	}
	return append(lines, strings.Split(strings.TrimRight(n.Content, "\n"), "\n")...)
}

// snippet is the first non-blank line of content, truncated.
func snippet(content string) string {
	for _, ln := range strings.Split(content, "\n") {
		if ln = strings.TrimSpace(ln); ln != "" {
			return ui.Truncate(ln, snippetWidth)
		}
	}
	return ""
}
