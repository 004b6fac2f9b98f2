package live

import (
	"context"
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"valuesquiz/internal/quiz"
	"valuesquiz/internal/session"
)

// Options configures the live UI.
type Options struct {
	NoColor bool
	// Width pins the layout width. Zero follows the terminal.
	Width     int
	AltScreen bool
	Input     io.Reader
	Output    io.Writer
}

const (
	defaultWidth   = 72
	resultsHeight  = 12
	minColumnWidth = 12
)

// Model renders a quiz session using Bubble Tea.
type Model struct {
	ctx      context.Context
	session  *session.Session
	view     View
	keys     keyMap
	help     help.Model
	progress progress.Model
	results  table.Model
	width    int
	height   int
	opts     Options
}

// NewModel constructs a live UI model for a session.
func NewModel(ctx context.Context, sess *session.Session, opts Options) Model {
	width := opts.Width
	if width <= 0 {
		width = defaultWidth
	}
	results := table.New(
		table.WithColumns(resultColumns(width)),
		table.WithRows([]table.Row{}),
		table.WithFocused(true),
		table.WithHeight(resultsHeight),
	)
	results.SetStyles(tableStyles(opts.NoColor))
	m := Model{
		ctx:      ctx,
		session:  sess,
		view:     NewView(),
		keys:     defaultKeyMap(),
		help:     help.New(),
		progress: progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		results:  results,
		width:    width,
		opts:     opts,
	}
	m = m.resize(width, 0)
	m.syncResults()
	return m
}

// Init has no startup command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update consumes key presses and terminal resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		width := typed.Width
		if m.opts.Width > 0 && m.opts.Width < width {
			width = m.opts.Width
		}
		return m.resize(width, typed.Height), nil
	case tea.KeyMsg:
		state := m.session.State()
		action := m.keys.decode(typed, m.view, state)
		if action.Kind == ActionNone {
			if resultsVisible(state) && !m.view.Confirming {
				var cmd tea.Cmd
				m.results, cmd = m.results.Update(typed)
				return m, cmd
			}
			return m, nil
		}
		m.view = Reduce(m.ctx, m.view, m.session, action)
		m.syncResults()
		if m.view.Quitting {
			return m, tea.Quit
		}
		return m, nil
	}
	return m, nil
}

// View renders the current screen.
func (m Model) View() string {
	state := m.session.State()
	sections := []string{}
	if state.IsComplete() {
		sections = append(sections,
			renderTitle("Your Values Assessment Results", m.opts.NoColor),
			renderResults(m.results, m.opts.NoColor),
			renderAction("r", "Start Over", m.opts.NoColor),
		)
	} else {
		sections = append(sections,
			renderTitle("Rate Your Values", m.opts.NoColor),
			renderProgress(state, m.progress, m.opts.NoColor),
			renderItem(state, m.view.Focus, m.width, m.opts.NoColor),
			renderAction("tab", toggleLabel(state.ShowResults()), m.opts.NoColor),
		)
		if state.ShowResults() {
			sections = append(sections, renderResults(m.results, m.opts.NoColor))
		}
	}
	if m.view.Confirming {
		sections = append(sections, renderConfirm(m.width, m.opts.NoColor))
	}
	if footer := renderFooter(m.view.LastEvent, m.opts.NoColor); footer != "" {
		sections = append(sections, footer)
	}
	sections = append(sections, renderHelp(m.help, m.keys.bindings(m.view, state), m.width))
	return lipgloss.NewStyle().MaxWidth(m.width).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// syncResults reloads the results table. A reset shrinks the rows under the
// cursor, so the cursor and scroll offset return to the top whenever the
// cursor no longer sits on a row.
func (m *Model) syncResults() {
	rows := resultRows(m.session.State().Categorize())
	m.results.SetRows(rows)
	if cursor := m.results.Cursor(); cursor < 0 || cursor >= len(rows) {
		m.results.SetCursor(0)
		m.results.GotoTop()
	}
}

// resize applies a new layout width and terminal height.
func (m Model) resize(width, height int) Model {
	m.width = width
	m.height = height
	m.progress.Width = max(width-24, 10)
	m.results.SetColumns(resultColumns(width))
	m.results.SetWidth(width)
	rows := resultsHeight
	if height > 0 {
		rows = max(min(height-16, resultsHeight*2), 3)
	}
	m.results.SetHeight(rows)
	return m
}

// resultsVisible reports whether the results table is on screen.
func resultsVisible(state *quiz.State) bool {
	return state.IsComplete() || state.ShowResults()
}

// toggleLabel names the results toggle for its next effect.
func toggleLabel(showing bool) string {
	if showing {
		return "Hide Current Results"
	}
	return "Show Current Results"
}
