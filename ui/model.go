package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Tom-Sloan/SSH-File-Browser-Appender/logging"
	"github.com/Tom-Sloan/SSH-File-Browser-Appender/ports"
	"github.com/Tom-Sloan/SSH-File-Browser-Appender/search"
	"github.com/Tom-Sloan/SSH-File-Browser-Appender/session"
)

type uiState int

const (
	stateConnect uiState = iota
	stateDialing
	stateBrowsing
)

type panelFocus int

const (
	focusTree panelFocus = iota
	focusSearch
	focusSelection
	focusOutput
)

// ModelConfig wires the model to everything outside the UI
type ModelConfig struct {
	// BackendFor turns the connect form's result into a factory the session
	// can (re)establish a backend with.
	BackendFor func(ConnectResult) ports.BackendFactory

	Recents         ports.RecentsStore
	DefaultHost     string
	DefaultUser     string
	DefaultBaseDir  string
	SuggestionLimit int
	ErrorClearDelay time.Duration
}

// Model is the top-level Bubble Tea model: a connect form followed by the
// three-panel browser (tree, search+selection, output).
type Model struct {
	cfg  ModelConfig
	sess *session.Session

	state uiState
	focus panelFocus

	form      *ConnectForm
	pending   ConnectResult
	spin      spinner.Model
	fetching  bool
	expanding map[string]bool

	treePanel *TreePanel
	searchBox *SuggestionBox
	selPanel  *SelectionPanel
	output    *OutputPanel

	keys   KeyMap
	help   help.Model
	errors *ErrorManager
	status string

	width  int
	height int
}

// NewModel creates the browser UI
func NewModel(cfg ModelConfig) *Model {
	if cfg.SuggestionLimit <= 0 {
		cfg.SuggestionLimit = search.DefaultLimit
	}
	if cfg.ErrorClearDelay <= 0 {
		cfg.ErrorClearDelay = 10 * time.Second
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	sess := session.New()

	m := &Model{
		cfg:       cfg,
		sess:      sess,
		state:     stateConnect,
		spin:      s,
		expanding: make(map[string]bool),
		searchBox: NewSuggestionBox(sess.Index(), cfg.SuggestionLimit),
		output:    NewOutputPanel(60, 20),
		keys:      DefaultKeyMap,
		help:      help.New(),
		errors:    NewErrorManager(cfg.ErrorClearDelay),
	}
	m.form = m.newConnectForm()
	return m
}

func (m *Model) newConnectForm() *ConnectForm {
	var recents []string
	if m.cfg.Recents != nil {
		recents = m.cfg.Recents.Load()
	}
	return NewConnectForm(m.cfg.DefaultHost, m.cfg.DefaultUser, m.cfg.DefaultBaseDir, recents)
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return m.form.Init()
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil
	}
	if _, ok := msg.(clearErrorMsg); ok {
		m.errors.ClearError()
		return m, nil
	}

	switch m.state {
	case stateConnect:
		return m.updateConnect(msg)
	case stateDialing:
		return m.updateDialing(msg)
	case stateBrowsing:
		return m.updateBrowsing(msg)
	}
	return m, nil
}

func (m *Model) updateConnect(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	form, cmd := m.form.Update(msg)
	if cf, ok := form.(*ConnectForm); ok {
		m.form = cf
	}

	if !m.form.Completed {
		return m, cmd
	}

	result := m.form.Result()
	if result.Cancelled {
		if m.sess.Connected() {
			// Reconnect aborted; the existing session stays as it was.
			m.state = stateBrowsing
			return m, nil
		}
		return m, tea.Quit
	}

	m.pending = result
	m.state = stateDialing
	return m, tea.Batch(m.spin.Tick, m.connectCmd(result))
}

func (m *Model) updateDialing(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case connectResultMsg:
		if msg.err != nil {
			// The old backend is already gone; the form is the only way
			// back to a working session.
			m.errors.SetError(msg.err)
			m.form = m.newConnectForm()
			m.state = stateConnect
			return m, tea.Batch(m.form.Init(), m.errors.ClearAfterDelay())
		}

		if m.treePanel == nil {
			m.treePanel = NewTreePanel(m.sess.Tree())
		} else {
			m.treePanel.SetStore(m.sess.Tree())
		}
		m.searchBox.SetIndex(m.sess.Index())
		if m.selPanel == nil {
			m.selPanel = NewSelectionPanel(m.sess.Selection(), m.sess.Base())
		} else {
			m.selPanel.SetSession(m.sess.Selection(), m.sess.Base())
		}
		m.focus = focusTree
		m.state = stateBrowsing
		m.resize()
		m.status = fmt.Sprintf("connected to %s", m.pending.describe())

		cmds := []tea.Cmd{m.expandCmd(m.sess.Base())}
		if m.pending.SaveRecent {
			cmds = append(cmds, m.saveRecentCmd(m.pending.BaseDir))
		}
		return m, tea.Batch(cmds...)
	}
	return m, nil
}

func (m *Model) updateBrowsing(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.fetching || len(m.expanding) > 0 {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil

	case expandResultMsg:
		delete(m.expanding, msg.key)
		if msg.err != nil {
			m.errors.SetError(msg.err)
			return m, m.errors.ClearAfterDelay()
		}
		m.treePanel.Rebuild()
		m.searchBox.Refresh()
		return m, nil

	case addAllResultMsg:
		if msg.err != nil {
			m.errors.SetError(msg.err)
			return m, m.errors.ClearAfterDelay()
		}
		m.selPanel.Rebuild()
		m.status = fmt.Sprintf("added %d files from %s", msg.added, msg.dir)
		return m, nil

	case aggregateResultMsg:
		m.fetching = false
		if msg.err != nil {
			m.errors.SetError(msg.err)
			return m, m.errors.ClearAfterDelay()
		}
		m.output.Append(msg.text)
		m.status = "fetched selection"
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.errors.SetError(fmt.Errorf("clipboard copy failed: %w", msg.err))
			return m, m.errors.ClearAfterDelay()
		}
		m.status = "copied to clipboard"
		return m, nil

	case recentSavedMsg:
		if msg.err != nil {
			logging.Logger.Warn("Failed to save recent path", "error", msg.err)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleBrowsingKey(msg)
	}
	return m, nil
}

func (m *Model) handleBrowsingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The search box swallows printable keys while focused; only its
	// navigation and exit bindings are interpreted.
	if m.focus == focusSearch {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.sess.Close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.NextPanel):
		m.cycleFocus()
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.focus = focusSearch
		m.searchBox.Input.Focus()
		return m, nil

	case key.Matches(msg, m.keys.Reconnect):
		m.form = m.newConnectForm()
		m.state = stateConnect
		return m, m.form.Init()

	case key.Matches(msg, m.keys.Up):
		m.moveUp()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.moveDown()
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		return m, m.confirmCurrent()

	case key.Matches(msg, m.keys.AddAll):
		if node, ok := m.treePanel.Current(); ok && node.IsDir() {
			return m, m.addAllCmd(node.Key)
		}
		return m, nil

	case key.Matches(msg, m.keys.Remove):
		if m.focus == focusSelection {
			m.selPanel.RemoveCurrent()
		}
		return m, nil

	case key.Matches(msg, m.keys.ClearSel):
		m.sess.Selection().Clear()
		m.selPanel.Rebuild()
		return m, nil

	case key.Matches(msg, m.keys.Fetch):
		if m.sess.Selection().Len() == 0 {
			m.errors.SetError(fmt.Errorf("no files selected"))
			return m, m.errors.ClearAfterDelay()
		}
		m.fetching = true
		return m, tea.Batch(m.spin.Tick, m.aggregateCmd())

	case key.Matches(msg, m.keys.Copy):
		if m.output.Empty() {
			m.errors.SetError(fmt.Errorf("no text to copy"))
			return m, m.errors.ClearAfterDelay()
		}
		return m, m.output.Copy()

	case key.Matches(msg, m.keys.ClearText):
		m.output.Clear()
		return m, nil

	case key.Matches(msg, m.keys.ScrollUp):
		m.output.Viewport.ScrollUp(5)
		return m, nil

	case key.Matches(msg, m.keys.ScrollDown):
		m.output.Viewport.ScrollDown(5)
		return m, nil
	}
	return m, nil
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.sess.Close()
		return m, tea.Quit
	case "esc", "tab":
		m.searchBox.Input.Blur()
		m.cycleFocus()
		return m, nil
	case "up":
		m.searchBox.Handle(NavUp)
		return m, nil
	case "down":
		m.searchBox.Handle(NavDown)
		return m, nil
	case "enter":
		if chosen, ok := m.searchBox.Handle(NavConfirm); ok {
			if m.sess.Selection().Add(chosen) {
				m.selPanel.Rebuild()
				m.status = fmt.Sprintf("selected %s", chosen)
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.searchBox.Input, cmd = m.searchBox.Input.Update(msg)
	m.searchBox.Refresh()
	return m, cmd
}

func (m *Model) cycleFocus() {
	switch m.focus {
	case focusTree:
		m.focus = focusSelection
	case focusSearch:
		m.focus = focusTree
	case focusSelection:
		m.focus = focusOutput
	case focusOutput:
		m.focus = focusTree
	}
}

func (m *Model) moveUp() {
	switch m.focus {
	case focusTree:
		m.treePanel.MoveUp()
	case focusSelection:
		m.selPanel.MoveUp()
	case focusOutput:
		m.output.Viewport.ScrollUp(1)
	}
}

func (m *Model) moveDown() {
	switch m.focus {
	case focusTree:
		m.treePanel.MoveDown()
	case focusSelection:
		m.selPanel.MoveDown()
	case focusOutput:
		m.output.Viewport.ScrollDown(1)
	}
}

// confirmCurrent expands the directory or selects the file under the tree
// cursor
func (m *Model) confirmCurrent() tea.Cmd {
	if m.focus != focusTree {
		return nil
	}
	node, ok := m.treePanel.Current()
	if !ok {
		return nil
	}

	if node.IsDir() {
		if node.Expanded || m.expanding[node.Key] {
			return nil
		}
		return tea.Batch(m.spin.Tick, m.expandCmd(node.Key))
	}

	if m.sess.Selection().Add(node.Key) {
		m.selPanel.Rebuild()
		m.status = fmt.Sprintf("selected %s", node.DisplayName)
	}
	return nil
}

// Commands running backend round trips off the interaction loop.

func (m *Model) connectCmd(result ConnectResult) tea.Cmd {
	factory := m.cfg.BackendFor(result)
	sess := m.sess
	base := result.BaseDir
	return func() tea.Msg {
		return connectResultMsg{err: sess.Connect(context.Background(), factory, base)}
	}
}

func (m *Model) expandCmd(key string) tea.Cmd {
	m.expanding[key] = true
	sess := m.sess
	return func() tea.Msg {
		return expandResultMsg{key: key, err: sess.Expand(context.Background(), key)}
	}
}

func (m *Model) addAllCmd(dir string) tea.Cmd {
	sess := m.sess
	return func() tea.Msg {
		added, err := sess.AddAllFilesIn(context.Background(), dir)
		return addAllResultMsg{dir: dir, added: added, err: err}
	}
}

func (m *Model) aggregateCmd() tea.Cmd {
	sess := m.sess
	return func() tea.Msg {
		text, err := sess.Aggregate(context.Background())
		return aggregateResultMsg{text: text, err: err}
	}
}

func (m *Model) saveRecentCmd(base string) tea.Cmd {
	recents := m.cfg.Recents
	if recents == nil {
		return nil
	}
	return func() tea.Msg {
		return recentSavedMsg{err: recents.Append(base)}
	}
}

func (m *Model) resize() {
	if m.width == 0 || m.treePanel == nil {
		return
	}
	colWidth := m.width/3 - 4
	panelHeight := m.height - 8
	m.treePanel.SetHeight(panelHeight)
	m.output.Resize(colWidth, panelHeight)
	m.help.Width = m.width
}

// View implements tea.Model
func (m *Model) View() string {
	switch m.state {
	case stateConnect:
		view := m.form.View()
		if m.errors.HasError() {
			view += "\n" + errorStyle.Render(fmt.Sprintf("Error: %v", m.errors.GetError()))
		}
		return view

	case stateDialing:
		return fmt.Sprintf("\n %s connecting to %s...\n", m.spin.View(), m.pending.describe())

	case stateBrowsing:
		return m.browsingView()
	}
	return ""
}

func (m *Model) browsingView() string {
	title := titleStyle.Render("SSH File Browser & Appender")

	treeCol := m.panel(focusTree, "Directory", m.treePanel.View(m.sess.Selection().Contains))
	middle := lipgloss.JoinVertical(lipgloss.Left,
		m.panel(focusSelection, "Selected", m.selPanel.View()),
		m.panel(focusSearch, "Search", m.searchBox.View()),
	)
	outputCol := m.panel(focusOutput, "Appended Text", m.output.View())

	body := lipgloss.JoinHorizontal(lipgloss.Top, treeCol, middle, outputCol)

	status := m.statusLine()
	helpView := helpStyle.Render(m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, title, body, status, helpView)
}

func (m *Model) panel(f panelFocus, name, content string) string {
	header := dimStyle.Render(name)
	if m.focus == f {
		header = cursorStyle.Render(name)
		return focusedPanelStyle.Render(header + "\n" + content)
	}
	return panelStyle.Render(header + "\n" + content)
}

func (m *Model) statusLine() string {
	if m.errors.HasError() {
		return errorStyle.Render(fmt.Sprintf("Error: %v", m.errors.GetError()))
	}
	if m.fetching || len(m.expanding) > 0 {
		return m.spin.View() + " working..."
	}
	if m.status != "" {
		return statusStyle.Render(m.status)
	}
	return ""
}

// describe renders the target for status lines without leaking credentials
func (r ConnectResult) describe() string {
	if r.Mode == ModeLocal {
		return "local: " + r.BaseDir
	}
	host := r.Host
	if i := strings.Index(host, ":"); i > 0 {
		host = host[:i]
	}
	return fmt.Sprintf("%s@%s:%s", r.User, host, r.BaseDir)
}
