package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/dojo/internal/history"
	"github.com/alexanderramin/dojo/internal/progress"
)

// FormatProgressReport renders the progress dashboard as plain-ish text for
// both the TUI progress view and the report command.
func FormatProgressReport(rec progress.Record, sum progress.Summary) string {
	var b strings.Builder

	b.WriteString(Header("Progress Report") + "\n\n")

	b.WriteString(fmt.Sprintf("  %s Level %d · %s\n", Dim("Rank     "), sum.Level, Bold(sum.Title)))
	b.WriteString(fmt.Sprintf("  %s %d xp", Dim("XP       "), sum.XP))
	if sum.XPToNext > 0 {
		b.WriteString(Dim(fmt.Sprintf(" (%d to next level)", sum.XPToNext)))
	}
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("  %s %s\n", Dim("Overall  "), RenderProgress(sum.OverallPercent/100, 20)))
	b.WriteString(fmt.Sprintf("  %s %s  %s\n", Dim("Lessons  "),
		RenderProgress(sum.LessonsPercent/100, 20),
		Dim(fmt.Sprintf("%d of %d complete", len(rec.Lessons.Completed), rec.Lessons.TotalAvailable))))
	b.WriteString(fmt.Sprintf("  %s %s  %s\n", Dim("Quiz     "),
		RenderProgress(sum.QuizPercent/100, 20),
		activityNote(rec.Quiz)))
	b.WriteString(fmt.Sprintf("  %s %s  %s\n", Dim("Gates    "),
		RenderProgress(sum.GatePercent/100, 20),
		activityNote(rec.Gatekeeper)))
	b.WriteString(fmt.Sprintf("  %s %s  %s\n", Dim("Simulator"),
		RenderProgress(sum.SimulatorPercent/100, 20),
		Dim(fmt.Sprintf("%d runs, %d types explored", rec.Simulator.Runs, len(rec.Simulator.RequestTypesExplored)))))

	b.WriteString("\n  " + Bold("Achievements") + Dim(fmt.Sprintf("  %d / %d", sum.Unlocked, sum.Achievements)) + "\n")
	for _, a := range progress.Achievements {
		mark := Dim("○")
		name := Dim(a.Name)
		for _, id := range rec.Achievements.Unlocked {
			if id == a.ID {
				mark = StyleYellow.Render("★")
				name = StyleFg.Render(a.Name)
				break
			}
		}
		b.WriteString(fmt.Sprintf("    %s %-20s %s\n", mark, name, Dim(a.Description)))
	}

	return b.String()
}

func activityNote(st progress.ActivityStats) string {
	if !st.Completed {
		return Dim("not attempted")
	}
	return Dim(fmt.Sprintf("last %d/%d, best %d, %d attempts",
		st.LastScore, st.Total, st.BestScore, st.Attempts))
}

// FormatAttemptList renders journaled attempts for the history command.
func FormatAttemptList(attempts []*history.Attempt) string {
	if len(attempts) == 0 {
		return Dim("No attempts recorded yet.") + "\n"
	}

	var b strings.Builder
	b.WriteString(Header("Attempt History") + "\n\n")
	for _, a := range attempts {
		detail := fmt.Sprintf("%d/%d", a.Score, a.Total)
		if a.RequestType != "" {
			detail += Dim(" · " + a.RequestType)
		}
		b.WriteString(fmt.Sprintf("  %s  %-10s %s\n",
			Dim(a.CreatedAt.Format(time.DateTime)),
			StyleBlue.Render(string(a.Kind)),
			detail,
		))
	}
	return b.String()
}
