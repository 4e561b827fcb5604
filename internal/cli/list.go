package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/crimson/internal/model"
	"github.com/idilsaglam/crimson/internal/ui"
)

func newListCmd(app *App) *cobra.Command {
	var group bool
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "Print the items a session starts with",
		Args:    noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.newStore()
			if err != nil {
				return err
			}
			items := s.Items()
			done, pending := s.Stats()

			t := ui.Current()
			header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
				t.Title.Render(app.cfg.Title),
				t.Success.Render(t.SymDone), done,
				t.Pending.Render(t.SymPending), pending,
				t.Accent.Render("Total"), len(items),
			)

			lines := []string{header, ui.ProgressBar(done, done+pending, 28), ""}
			if group {
				lines = append(lines, groupLines(items)...)
			} else {
				lines = append(lines, flatLines(items)...)
			}
			lines = append(lines, "", t.Muted.Render("Tip: run `todo` to edit the list"))
			ui.Panel(cmd.OutOrStdout(), lines)
			return nil
		},
	}
	cmd.Flags().BoolVar(&group, "group", false, "Group output by pending/done")
	return cmd
}

func flatLines(items []model.Item) []string {
	t := ui.Current()
	if len(items) == 0 {
		return []string{t.Muted.Render("no items")}
	}
	out := make([]string, 0, len(items))
	for i, it := range items {
		idx := fmt.Sprintf("%2d.", i+1)
		box := t.Muted.Render(t.BoxUnchecked)
		text := ui.OneLine(it.Text)
		if r := []rune(text); len(r) > 80 {
			text = string(r[:77]) + "..."
		}
		if it.Completed {
			box = t.Success.Render(t.BoxChecked)
			text = t.Done.Render(text)
		}
		out = append(out, fmt.Sprintf("%s %s %s", t.Muted.Render(idx), box, text))
	}
	return out
}

func groupLines(items []model.Item) []string {
	t := ui.Current()
	var pend, done []model.Item
	for _, it := range items {
		if it.Completed {
			done = append(done, it)
		} else {
			pend = append(pend, it)
		}
	}
	section := func(title string, its []model.Item) []string {
		lines := []string{t.Accent.Render(title)}
		if len(its) == 0 {
			return append(lines, t.Muted.Render("(none)"))
		}
		return append(lines, flatLines(its)...)
	}
	lines := section("Pending", pend)
	lines = append(lines, "")
	return append(lines, section("Done", done)...)
}
