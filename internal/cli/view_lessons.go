package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/dojo/internal/cli/formatter"
)

// lessonListView is the lesson catalog with completion state.
type lessonListView struct {
	state  *SharedState
	cursor int
}

func newLessonListView(state *SharedState) *lessonListView {
	return &lessonListView{state: state}
}

func (v *lessonListView) ID() ViewID    { return ViewLessonList }
func (v *lessonListView) Title() string { return "Lessons" }

func (v *lessonListView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "navigate")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "read")),
	}
}

func (v *lessonListView) Init() tea.Cmd { return nil }

func (v *lessonListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	catalog := v.state.App.Content.LessonCatalog()
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(catalog)-1 {
				v.cursor++
			}
		case "enter":
			if v.cursor < len(catalog) {
				if lv := newLessonView(v.state, catalog[v.cursor].ID); lv != nil {
					return v, pushView(lv)
				}
			}
		}
	}
	return v, nil
}

func (v *lessonListView) View() string {
	rec := v.state.App.Progress.Record()
	completed := make(map[string]bool, len(rec.Lessons.Completed))
	for _, id := range rec.Lessons.Completed {
		completed[id] = true
	}

	var b strings.Builder
	b.WriteString("\n")
	for i, meta := range v.state.App.Content.LessonCatalog() {
		cursor := "  "
		titleStyle := formatter.StyleFg
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			titleStyle = formatter.StyleBold
		}

		mark := formatter.Dim("○")
		note := formatter.Dim(fmt.Sprintf("%d sections", meta.Sections))
		if completed[meta.ID] {
			mark = formatter.StyleGreen.Render("●")
			note = formatter.StyleGreen.Render("complete")
		} else if lp, ok := rec.Lessons.InProgress[meta.ID]; ok {
			mark = formatter.StyleYellow.Render("◐")
			note = formatter.StyleYellow.Render(fmt.Sprintf("section %d of %d", lp.LastSection+1, meta.Sections))
		}

		b.WriteString(fmt.Sprintf("  %s%s %-36s %s\n", cursor, mark, titleStyle.Render(meta.Title), note))
		b.WriteString("      " + formatter.Dim(meta.Description) + "\n")
	}
	return b.String()
}
