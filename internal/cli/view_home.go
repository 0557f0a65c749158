package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/dojo/internal/cli/formatter"
)

type homeEntry struct {
	name string
	desc string
	open func(state *SharedState) View
}

// homeView is the root menu of the TUI.
type homeView struct {
	state  *SharedState
	cursor int
}

var homeEntries = []homeEntry{
	{
		name: "Workflow Simulator",
		desc: "Configure a request and see the resolved workflow",
		open: func(s *SharedState) View { return newSimulatorView(s) },
	},
	{
		name: "Interactive Walkthrough",
		desc: "Answer planning questions and watch the workflow adapt",
		open: func(s *SharedState) View { return newInteractiveView(s) },
	},
	{
		name: "Quiz",
		desc: "Test your knowledge of the methodology",
		open: func(s *SharedState) View { return newQuizView(s) },
	},
	{
		name: "Gatekeeper Drill",
		desc: "Review AI plans at approval gates",
		open: func(s *SharedState) View { return newGatekeeperView(s) },
	},
	{
		name: "Lessons",
		desc: "Read the methodology, phase by phase",
		open: func(s *SharedState) View { return newLessonListView(s) },
	},
	{
		name: "Glossary & Search",
		desc: "Look up terms and search all content",
		open: func(s *SharedState) View { return newGlossaryView(s) },
	},
	{
		name: "Progress",
		desc: "XP, levels, achievements, and completion",
		open: func(s *SharedState) View { return newProgressView(s) },
	},
}

func newHomeView(state *SharedState) *homeView {
	return &homeView{state: state}
}

func (v *homeView) ID() ViewID    { return ViewHome }
func (v *homeView) Title() string { return "" }

func (v *homeView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "navigate")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
	}
}

func (v *homeView) Init() tea.Cmd { return nil }

func (v *homeView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(homeEntries)-1 {
				v.cursor++
			}
		case "enter":
			return v, pushView(homeEntries[v.cursor].open(v.state))
		}
	}
	return v, nil
}

func (v *homeView) View() string {
	var b strings.Builder
	b.WriteString("\n  " + formatter.StyleHeader.Render("THE DELIVERY DOJO") + "\n")
	b.WriteString("  " + formatter.Dim("Learn adaptive AI-assisted delivery by doing.") + "\n\n")

	for i, e := range homeEntries {
		cursor := "  "
		nameStyle := formatter.StyleFg
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			nameStyle = formatter.StyleBold
		}
		b.WriteString(fmt.Sprintf("  %s%-24s %s\n",
			cursor,
			nameStyle.Render(e.name),
			formatter.Dim(e.desc),
		))
	}

	return b.String()
}
