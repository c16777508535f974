package cmd

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"

	"github.com/wortschatz/wortschatz/internal/progress"
	"github.com/wortschatz/wortschatz/internal/session"
	"github.com/wortschatz/wortschatz/internal/store"
	"github.com/wortschatz/wortschatz/internal/ui/components"
	"github.com/wortschatz/wortschatz/internal/ui/theme"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning progress and recent sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		out := cmd.OutOrStdout()
		sum := progress.Summarize(e.doc, e.catalog)
		writeSummary(out, sum)

		return writeHistory(cmd.Context(), out, e.store.EventRepo(), limit)
	},
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return s.Foreground(theme.Primary).Bold(true)
			}
			if col > 0 {
				return s.Align(lipgloss.Right)
			}
			return s
		})
}

func writeSummary(out io.Writer, s progress.Summary) {
	last := s.LastPlayed
	if last == "" {
		last = "never"
	}
	fmt.Fprintf(out, "⚡ %d XP   🔥 %d day streak   ★ %d words learned   ⏱ best speed %d\n",
		s.XP, s.Streak, s.Learned, s.BestSpeed)
	fmt.Fprintf(out, "Last played: %s\n\n", last)

	t := newTable("Category", "Words", "Learned", "Correct", "Wrong", "Completion")
	for _, c := range s.Categories {
		pct := progress.Percent(c.Completion)
		t.Row(
			c.Category.Label(),
			strconv.Itoa(c.Words),
			strconv.Itoa(c.Learned),
			strconv.Itoa(c.Correct),
			strconv.Itoa(c.Wrong),
			fmt.Sprintf("%s %3d%%", components.TextBar(c.Completion, 10), pct),
		)
	}
	lipgloss.Fprintln(out, t.Render())
}

func writeHistory(ctx context.Context, out io.Writer, events store.EventRepo, limit int) error {
	sessions, err := events.QuerySessionSummaries(ctx, store.QueryOpts{Limit: limit})
	if err != nil {
		return fmt.Errorf("query sessions: %w", err)
	}
	accuracy, err := events.AccuracyByMode(ctx)
	if err != nil {
		return fmt.Errorf("query accuracy: %w", err)
	}

	fmt.Fprintln(out)
	if len(sessions) == 0 {
		fmt.Fprintln(out, "No sessions recorded yet.")
		return nil
	}

	fmt.Fprintln(out, "Recent sessions")
	t := newTable("When", "Mode", "Category", "Score", "XP", "Time")
	for _, s := range sessions {
		mode, _ := session.ParseMode(s.Mode)
		t.Row(
			s.Timestamp.Local().Format("2006-01-02 15:04"),
			mode.Label(),
			s.Category,
			fmt.Sprintf("%d/%d", s.CorrectAnswers, s.QuestionsServed),
			strconv.Itoa(s.XPEarned),
			fmt.Sprintf("%ds", s.DurationSecs),
		)
	}
	lipgloss.Fprintln(out, t.Render())

	if len(accuracy) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Accuracy by mode")
		t := newTable("Mode", "Answers", "Correct", "Accuracy")
		for _, a := range accuracy {
			mode, _ := session.ParseMode(a.Mode)
			t.Row(
				mode.Label(),
				strconv.Itoa(a.Answers),
				strconv.Itoa(a.Correct),
				fmt.Sprintf("%d%%", session.Percent(a.Correct, a.Answers)),
			)
		}
		lipgloss.Fprintln(out, t.Render())
	}
	return nil
}

func init() {
	statsCmd.Flags().IntP("limit", "n", 10, "Number of recent sessions to show")
}
