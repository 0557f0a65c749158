package cli

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/dojo/internal/config"
	"github.com/alexanderramin/dojo/internal/content"
	"github.com/alexanderramin/dojo/internal/progress"
	"github.com/alexanderramin/dojo/internal/workflow"
)

func testApp(t *testing.T) *App {
	t.Helper()
	store, _, err := content.Load()
	require.NoError(t, err)

	return &App{
		Content:  store,
		Table:    workflow.NewTable(store.Stages(), store.RequestTypes(), store.RiskProfiles(), store.Constraints()),
		Progress: progress.NewStore(filepath.Join(t.TempDir(), "state.json"), progress.Totals{
			Lessons:      len(store.LessonCatalog()),
			QuizItems:    len(store.QuizBank()),
			Scenarios:    len(store.ScenarioBank()),
			RequestTypes: len(store.RequestTypes()),
		}),
		Config: config.Default(),
	}
}

type stubView struct {
	id         ViewID
	title      string
	viewText   string
	shortHelp  []key.Binding
	initCmd    tea.Cmd
	updateCmd  tea.Cmd
	updateSeen []tea.Msg
}

func (v *stubView) Init() tea.Cmd { return v.initCmd }

func (v *stubView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	v.updateSeen = append(v.updateSeen, msg)
	return v, v.updateCmd
}

func (v *stubView) View() string             { return v.viewText }
func (v *stubView) ID() ViewID               { return v.id }
func (v *stubView) ShortHelp() []key.Binding { return v.shortHelp }
func (v *stubView) Title() string            { return v.title }
func newStubView(id ViewID, title, text string) *stubView {
	return &stubView{id: id, title: title, viewText: text}
}

func TestNewAppModelStartsAtHome(t *testing.T) {
	m := newAppModel(testApp(t))

	require.Len(t, m.viewStack, 1)
	assert.Equal(t, ViewHome, m.activeView().ID())
}

func TestAppModel_NavigationMessages(t *testing.T) {
	m := newAppModel(testApp(t))
	v2 := newStubView(ViewLessonList, "Lessons", "lessons view")
	v3 := newStubView(ViewQuiz, "Quiz", "quiz view")

	model, cmd := m.Update(pushViewMsg{view: v2})
	m = model.(appModel)
	require.Nil(t, cmd)
	require.Len(t, m.viewStack, 2)
	assert.Equal(t, v2, m.activeView())

	model, cmd = m.Update(replaceViewMsg{view: v3})
	m = model.(appModel)
	require.Nil(t, cmd)
	require.Len(t, m.viewStack, 2)
	assert.Equal(t, v3, m.activeView())

	model, cmd = m.Update(popViewMsg{})
	m = model.(appModel)
	require.Nil(t, cmd)
	require.Len(t, m.viewStack, 1)
	assert.Equal(t, ViewHome, m.activeView().ID())
}

func TestAppModel_EscPopsButNeverEmptiesStack(t *testing.T) {
	m := newAppModel(testApp(t))
	m.viewStack = append(m.viewStack, newStubView(ViewProgress, "Progress", "progress"))

	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = model.(appModel)
	require.Len(t, m.viewStack, 1)

	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = model.(appModel)
	assert.Len(t, m.viewStack, 1, "esc at the root is a no-op")
}

func TestAppModel_WindowResizeForwardsToActiveView(t *testing.T) {
	m := newAppModel(testApp(t))
	v := newStubView(ViewLessonList, "Lessons", "lessons")
	m.viewStack = []View{v}

	model, cmd := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = model.(appModel)
	require.Nil(t, cmd)

	assert.Equal(t, 100, m.state.Width)
	assert.Equal(t, 30, m.state.Height)
	require.Len(t, v.updateSeen, 1)
	_, ok := v.updateSeen[0].(tea.WindowSizeMsg)
	assert.True(t, ok)
}

func TestAppModel_KeyHandling_GlobalAndCaptured(t *testing.T) {
	t.Run("q quits when active view does not capture input", func(t *testing.T) {
		m := newAppModel(testApp(t))

		model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
		m = model.(appModel)
		require.NotNil(t, cmd)
		assert.True(t, m.quitting)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	})

	t.Run("capturing view receives q and does not quit", func(t *testing.T) {
		m := newAppModel(testApp(t))
		v := newStubView(ViewGlossary, "Glossary", "glossary")
		m.viewStack = []View{v}

		model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
		m = model.(appModel)
		require.Nil(t, cmd)
		assert.False(t, m.quitting)
		require.Len(t, v.updateSeen, 1)
		assert.Equal(t, "q", v.updateSeen[0].(tea.KeyMsg).String())
	})

	t.Run("ctrl+c quits even for capturing views", func(t *testing.T) {
		m := newAppModel(testApp(t))
		m.viewStack = []View{newStubView(ViewGlossary, "Glossary", "glossary")}

		model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
		m = model.(appModel)
		require.NotNil(t, cmd)
		assert.True(t, m.quitting)
	})
}

func TestAppModel_AchievementToast(t *testing.T) {
	m := newAppModel(testApp(t))
	m.state.Width = 80
	m.state.Height = 24

	model, _ := m.Update(achievementMsg{ids: []string{"first-steps"}})
	m = model.(appModel)
	assert.Contains(t, m.toast, "First Steps")
	assert.Contains(t, m.View(), "First Steps")

	// Navigating away clears the toast.
	model, _ = m.Update(pushViewMsg{view: newStubView(ViewQuiz, "Quiz", "quiz")})
	m = model.(appModel)
	assert.Empty(t, m.toast)
}

func TestAppModel_HeaderShowsBreadcrumbAndLevel(t *testing.T) {
	m := newAppModel(testApp(t))
	m.state.Width = 80
	m.viewStack = append(m.viewStack, newStubView(ViewQuiz, "Quiz", "quiz"))

	header := m.renderHeader()
	assert.Contains(t, header, "dojo")
	assert.Contains(t, header, "Quiz")
	assert.Contains(t, header, "Lv1 Novice")
}

func TestAppModel_ViewPadsToHeight(t *testing.T) {
	m := newAppModel(testApp(t))
	m.state.Width = 80
	m.state.Height = 24

	out := m.View()
	assert.GreaterOrEqual(t, strings.Count(out, "\n")+1, 24)
}

func TestWizardCompleteMsg_PopsAndRunsFollowup(t *testing.T) {
	m := newAppModel(testApp(t))
	m.viewStack = append(m.viewStack, newStubView(ViewForm, "Setup", "form"))

	ran := false
	model, cmd := m.Update(wizardCompleteMsg{nextCmd: func() tea.Msg { ran = true; return nil }})
	m = model.(appModel)

	require.Len(t, m.viewStack, 1)
	require.NotNil(t, cmd)
	cmd()
	assert.True(t, ran)
}
