package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/dojo/internal/cli/formatter"
	"github.com/alexanderramin/dojo/internal/domain"
	"github.com/alexanderramin/dojo/internal/search"
)

// glossaryView combines the glossary with free-text search over all
// content. Typing filters live; enter jumps into a matched lesson.
type glossaryView struct {
	state *SharedState
	index *search.Index

	input   textinput.Model
	results []search.Result
	cursor  int
}

func newGlossaryView(state *SharedState) *glossaryView {
	idx := search.NewIndex(
		allLessons(state),
		state.App.Content.GlossaryTerms(),
	)

	ti := textinput.New()
	ti.Placeholder = "type to search lessons and glossary"
	ti.Prompt = formatter.StyleHeader.Render("/ ")
	ti.Focus()

	v := &glossaryView{state: state, index: idx, input: ti}
	v.results = idx.Search("")
	return v
}

func allLessons(state *SharedState) (lessons []domain.Lesson) {
	for _, meta := range state.App.Content.LessonCatalog() {
		if l, ok := state.App.Content.Lesson(meta.ID); ok {
			lessons = append(lessons, l)
		}
	}
	return lessons
}

func (v *glossaryView) ID() ViewID    { return ViewGlossary }
func (v *glossaryView) Title() string { return "Search" }

func (v *glossaryView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "result")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open lesson")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear / back")),
	}
}

func (v *glossaryView) Init() tea.Cmd {
	if !v.state.App.Config.Animations {
		return nil
	}
	return textinput.Blink
}

func (v *glossaryView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msgKey, ok := msg.(tea.KeyMsg); ok {
		switch msgKey.Type {
		case tea.KeyEsc:
			if v.input.Value() != "" {
				v.input.SetValue("")
				v.refresh()
				return v, nil
			}
			return v, popView()
		case tea.KeyUp:
			if v.cursor > 0 {
				v.cursor--
			}
			return v, nil
		case tea.KeyDown:
			if v.cursor < len(v.results)-1 {
				v.cursor++
			}
			return v, nil
		case tea.KeyEnter:
			if v.cursor < len(v.results) {
				r := v.results[v.cursor]
				if r.LessonID != "" {
					if lv := newLessonView(v.state, r.LessonID); lv != nil {
						return v, pushView(lv)
					}
				}
			}
			return v, nil
		case tea.KeyCtrlC:
			return v, tea.Quit
		}
	}

	var cmd tea.Cmd
	before := v.input.Value()
	v.input, cmd = v.input.Update(msg)
	if v.input.Value() != before {
		v.refresh()
	}
	return v, cmd
}

func (v *glossaryView) refresh() {
	v.results = v.index.Search(v.input.Value())
	v.cursor = 0
}

func (v *glossaryView) View() string {
	var b strings.Builder
	b.WriteString("\n  " + v.input.View() + "\n\n")

	if len(v.results) == 0 {
		b.WriteString("  " + formatter.Dim("No matches.") + "\n")
		return b.String()
	}

	maxRows := v.state.ContentHeight() - 4
	if maxRows < 3 {
		maxRows = 3
	}

	start := 0
	if v.cursor >= maxRows {
		start = v.cursor - maxRows + 1
	}

	for i := start; i < len(v.results) && i < start+maxRows; i++ {
		r := v.results[i]
		cursor := "  "
		titleStyle := formatter.StyleFg
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			titleStyle = formatter.StyleBold
		}
		b.WriteString(fmt.Sprintf("  %s%s %s\n",
			cursor,
			kindBadge(r.Kind),
			titleStyle.Render(r.Title)))
		b.WriteString("       " + formatter.Dim(r.Preview) + "\n")
	}

	return b.String()
}

func kindBadge(k search.ResultKind) string {
	switch k {
	case search.KindGlossary:
		return formatter.StylePurple.Render("term  ")
	case search.KindSection:
		return formatter.StyleBlue.Render("sect  ")
	default:
		return formatter.StyleBlue.Render("lesson")
	}
}
