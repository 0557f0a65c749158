package cli

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/dojo/internal/cli/formatter"
)

// progressView shows the progress dashboard in a scrollable viewport.
type progressView struct {
	state *SharedState
	vp    viewport.Model
}

func newProgressView(state *SharedState) *progressView {
	v := &progressView{state: state}
	v.vp = viewport.New(state.Width, state.ContentHeight())
	v.setContent()
	return v
}

func (v *progressView) ID() ViewID    { return ViewProgress }
func (v *progressView) Title() string { return "Progress" }

func (v *progressView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "scroll")),
	}
}

func (v *progressView) Init() tea.Cmd { return nil }

func (v *progressView) setContent() {
	app := v.state.App
	v.vp.SetContent(indent(formatter.FormatProgressReport(app.Progress.Record(), app.Progress.Overall())))
}

func (v *progressView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		v.vp.Width = msg.Width
		v.vp.Height = v.state.ContentHeight()
		return v, nil
	}
	var cmd tea.Cmd
	v.vp, cmd = v.vp.Update(msg)
	return v, cmd
}

func (v *progressView) View() string {
	return v.vp.View()
}
