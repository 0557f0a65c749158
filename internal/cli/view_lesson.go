package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/alexanderramin/dojo/internal/cli/formatter"
	"github.com/alexanderramin/dojo/internal/domain"
)

// lessonView reads one lesson, section by section, in a scrollable
// viewport. Section progress and completion feed the progress store.
type lessonView struct {
	state  *SharedState
	lesson domain.Lesson

	section int
	vp      viewport.Model
	done    bool
}

func newLessonView(state *SharedState, lessonID string) *lessonView {
	lesson, ok := state.App.Content.Lesson(lessonID)
	if !ok {
		return nil
	}
	state.App.Progress.MarkLessonStarted(lessonID)

	rec := state.App.Progress.Record()
	section := rec.Lessons.InProgress[lessonID].LastSection
	if section >= len(lesson.Sections) {
		section = 0
	}

	v := &lessonView{state: state, lesson: lesson, section: section}
	v.vp = viewport.New(state.Width, state.ContentHeight())
	v.setContent()
	return v
}

func (v *lessonView) ID() ViewID    { return ViewLesson }
func (v *lessonView) Title() string { return v.lesson.Title }

func (v *lessonView) ShortHelp() []key.Binding {
	bindings := []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "scroll")),
	}
	if v.section > 0 {
		bindings = append(bindings, key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "prev section")))
	}
	if v.section < len(v.lesson.Sections)-1 {
		bindings = append(bindings, key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next section")))
	} else if !v.done {
		bindings = append(bindings, key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "finish lesson")))
	}
	return bindings
}

func (v *lessonView) Init() tea.Cmd { return nil }

func (v *lessonView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.vp.Width = msg.Width
		v.vp.Height = v.state.ContentHeight()
		v.setContent()
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "right", "l", "n":
			if v.section < len(v.lesson.Sections)-1 {
				v.section++
				v.setContent()
				unlocked := v.state.App.Progress.UpdateLessonProgress(v.lesson.ID, v.section)
				return v, announceAchievements(unlocked)
			}
		case "left", "h", "p":
			if v.section > 0 {
				v.section--
				v.setContent()
				v.state.App.Progress.UpdateLessonProgress(v.lesson.ID, v.section)
			}
		case "c", "enter":
			if v.section == len(v.lesson.Sections)-1 && !v.done {
				v.done = true
				unlocked := v.state.App.Progress.MarkLessonCompleted(v.lesson.ID)
				return v, announceAchievements(unlocked)
			}
		}
	}

	var cmd tea.Cmd
	v.vp, cmd = v.vp.Update(msg)
	return v, cmd
}

func (v *lessonView) setContent() {
	sec := v.lesson.Sections[v.section]
	md := "# " + sec.Title + "\n\n" + sec.Body
	v.vp.SetContent(renderMarkdown(md, v.vp.Width))
	v.vp.GotoTop()
}

// renderMarkdown renders lesson markdown for the terminal, falling back to
// the raw text when rendering fails.
func renderMarkdown(md string, width int) string {
	if width < 20 {
		width = 76
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(min(width-4, 96)),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}

func (v *lessonView) View() string {
	var b strings.Builder

	status := fmt.Sprintf("Section %d of %d", v.section+1, len(v.lesson.Sections))
	if v.done {
		status += "  " + formatter.StyleGreen.Render("● lesson complete")
	} else if v.section == len(v.lesson.Sections)-1 {
		status += "  " + formatter.Dim("press c to finish")
	}
	b.WriteString("  " + formatter.Dim(status) + "\n")
	b.WriteString(v.vp.View())
	return b.String()
}
