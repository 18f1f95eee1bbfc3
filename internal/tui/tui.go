// Package tui provides a Bubble Tea terminal user interface for
// music-playlist-manager.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/TestProjects-Sigma/music-playlist-manager/internal/config"
	"github.com/TestProjects-Sigma/music-playlist-manager/internal/match"
	"github.com/TestProjects-Sigma/music-playlist-manager/internal/session"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500")).
			Bold(true)
)

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateWorking
	StateResults
	StateCopying
	StateComplete
	StateError
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   session.ProgressLevel
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	textInput textinput.Model
	spinner   spinner.Model
	settings  *config.Settings
	manager   *session.Manager
	logs      []LogEntry
	err       error

	// results view
	matched   []match.Candidate
	unmatched []match.Candidate
	threshold float64
	cursor    int
	selected  map[string]bool // keyed by library path

	// copy outcome
	copied int
	failed int

	verbose bool

	ctx    context.Context
	cancel context.CancelFunc
	events chan session.ProgressEvent

	width  int
	height int
}

// NewModel creates a new TUI model.
func NewModel() Model {
	ti := textinput.New()
	ti.Placeholder = "/path/to/playlist.txt"
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	settings, err := config.Load(config.DefaultPath())
	if err != nil {
		settings = config.DefaultSettings()
	}
	if settings.LastPlaylistFile != "" {
		ti.SetValue(settings.LastPlaylistFile)
	}

	ctx, cancel := context.WithCancel(context.Background())
	events := make(chan session.ProgressEvent, 64)

	manager := session.NewManager(settings, func(event session.ProgressEvent) {
		select {
		case events <- event:
		default: // never block an operation on a slow UI
		}
	})

	return Model{
		state:     StateInput,
		textInput: ti,
		spinner:   sp,
		settings:  settings,
		manager:   manager,
		selected:  make(map[string]bool),
		ctx:       ctx,
		cancel:    cancel,
		events:    events,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, m.waitForEvent())
}

// ProgressMsg carries one session progress event.
type ProgressMsg struct {
	Event session.ProgressEvent
}

// MatchDoneMsg is sent when the scan+load+match pipeline finishes.
type MatchDoneMsg struct {
	Result *match.ResultSet
	Err    error
}

// CopyDoneMsg is sent when copying the selection finishes.
type CopyDoneMsg struct {
	Copied int
	Failed int
	Err    error
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if model, cmd, handled := m.handleKey(msg); handled {
			return model, cmd
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case ProgressMsg:
		if msg.Event.Level != session.LevelVerbose || m.verbose {
			m.logs = append(m.logs, LogEntry{Message: msg.Event.Message, Level: msg.Event.Level})
			if len(m.logs) > 10 {
				m.logs = m.logs[len(m.logs)-10:]
			}
		}
		cmds = append(cmds, m.waitForEvent())

	case MatchDoneMsg:
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
		} else {
			m.applyResult(msg.Result)
			m.selectAll()
			m.state = StateResults
		}

	case CopyDoneMsg:
		m.copied = msg.Copied
		m.failed = msg.Failed
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
		} else {
			m.state = StateComplete
		}
	}

	if m.state == StateInput {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// handleKey processes a key press. handled reports whether the key was
// consumed; unconsumed keys fall through to the text input.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+c":
		m.cancel()
		return m, tea.Quit, true

	case "esc":
		switch m.state {
		case StateInput:
			return m, tea.Quit, true
		case StateWorking, StateCopying:
			m.cancel()
			m.ctx, m.cancel = context.WithCancel(context.Background())
			m.state = StateError
			m.err = fmt.Errorf("cancelled by user")
			return m, nil, true
		}

	case "enter":
		if m.state == StateInput && strings.TrimSpace(m.textInput.Value()) != "" {
			m.state = StateWorking
			m.logs = nil
			return m, tea.Batch(m.reconcile(strings.TrimSpace(m.textInput.Value())), m.spinner.Tick), true
		}

	case "ctrl+v":
		if m.state == StateInput {
			m.verbose = !m.verbose
			return m, nil, true
		}

	case "q":
		if m.state == StateResults || m.state == StateComplete || m.state == StateError {
			m.settings.Save(config.DefaultPath())
			return m, tea.Quit, true
		}

	case "r":
		if m.state == StateResults || m.state == StateComplete || m.state == StateError {
			m.state = StateInput
			m.err = nil
			m.logs = nil
			m.textInput.Focus()
			return m, textinput.Blink, true
		}

	case "up", "k":
		if m.state == StateResults && m.cursor > 0 {
			m.cursor--
			return m, nil, true
		}

	case "down", "j":
		if m.state == StateResults && m.cursor < len(m.matched)-1 {
			m.cursor++
			return m, nil, true
		}

	case " ":
		if m.state == StateResults && m.cursor < len(m.matched) {
			path := m.matched[m.cursor].Entry.Path
			m.selected[path] = !m.selected[path]
			return m, nil, true
		}

	case "a":
		if m.state == StateResults {
			m.selectAll()
			return m, nil, true
		}

	case "n":
		if m.state == StateResults {
			m.selected = make(map[string]bool)
			return m, nil, true
		}

	case "+", "=":
		if m.state == StateResults {
			m.adjustThreshold(0.05)
			return m, nil, true
		}

	case "-", "_":
		if m.state == StateResults {
			m.adjustThreshold(-0.05)
			return m, nil, true
		}

	case "c":
		if m.state == StateResults && len(m.selection()) > 0 {
			m.state = StateCopying
			return m, tea.Batch(m.copySelected(), m.spinner.Tick), true
		}
	}

	return m, nil, false
}

// applyResult refreshes the partitions shown in the results view.
func (m *Model) applyResult(result *match.ResultSet) {
	m.matched = result.Matched()
	m.unmatched = result.Unmatched()
	m.threshold = result.Threshold
	if m.cursor >= len(m.matched) {
		m.cursor = 0
	}
}

func (m *Model) selectAll() {
	m.selected = make(map[string]bool)
	for _, c := range m.matched {
		m.selected[c.Entry.Path] = true
	}
}

// adjustThreshold re-partitions the current result at a new cutoff.
// This is the cheap interactive path: no scores are recomputed.
func (m *Model) adjustThreshold(delta float64) {
	threshold := m.settings.Threshold + delta
	if threshold < 0 {
		threshold = 0
	}
	if threshold > 1 {
		threshold = 1
	}
	if result, err := m.manager.Rescale(threshold); err == nil {
		m.applyResult(result)
	}
}

// selection returns the selected matched candidates in display order.
func (m *Model) selection() []match.Candidate {
	var out []match.Candidate
	for _, c := range m.matched {
		if m.selected[c.Entry.Path] {
			out = append(out, c)
		}
	}
	return out
}

// waitForEvent forwards the next session progress event to the UI.
func (m Model) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		return ProgressMsg{Event: <-m.events}
	}
}

// reconcile scans the library, loads the playlist and matches it, all
// off the UI goroutine.
func (m Model) reconcile(playlistPath string) tea.Cmd {
	ctx, manager := m.ctx, m.manager
	return func() tea.Msg {
		if _, err := manager.Scan(ctx); err != nil {
			return MatchDoneMsg{Err: err}
		}
		if _, err := manager.LoadPlaylist(playlistPath); err != nil {
			return MatchDoneMsg{Err: err}
		}
		result, err := manager.Match(ctx)
		return MatchDoneMsg{Result: result, Err: err}
	}
}

// copySelected copies the current selection in the background.
func (m Model) copySelected() tea.Cmd {
	ctx, manager := m.ctx, m.manager
	selection := m.selection()
	outputDir := m.settings.OutputDirectory
	return func() tea.Msg {
		copied, failed, err := manager.CopySelected(ctx, selection, outputDir)
		return CopyDoneMsg{Copied: copied, Failed: failed, Err: err}
	}
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("🎵 Music Playlist Manager"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Reconcile playlists against your local library"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateWorking:
		b.WriteString(m.viewWorking("Scanning and matching..."))
	case StateResults:
		b.WriteString(m.viewResults())
	case StateCopying:
		b.WriteString(m.viewWorking("Copying files..."))
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Playlist file:"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")

	verboseCheck := "[ ]"
	if m.verbose {
		verboseCheck = "[×]"
	}
	b.WriteString(infoStyle.Render("Options:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Verbose output (ctrl+v)\n", verboseCheck))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Library:   %s", strings.Join(m.settings.Directories, ", "))))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Threshold: %.0f%%", m.settings.Threshold*100)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Output:    %s", m.settings.OutputDirectory)))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewWorking(message string) string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render(message))
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewResults() string {
	var b strings.Builder

	b.WriteString(successStyle.Render(fmt.Sprintf(
		"Matched %d of %d entries at threshold %.0f%%",
		len(m.matched), len(m.matched)+len(m.unmatched), m.threshold*100,
	)))
	b.WriteString("\n\n")

	visible := m.height - 16
	if visible < 5 {
		visible = 5
	}
	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}

	for i := start; i < len(m.matched) && i < start+visible; i++ {
		c := m.matched[i]

		check := "[ ]"
		if m.selected[c.Entry.Path] {
			check = "[×]"
		}
		head := fmt.Sprintf("  %s %3.0f%%", check, c.Score*100)
		if i == m.cursor {
			head = cursorStyle.Render(fmt.Sprintf("> %s %3.0f%%", check, c.Score*100))
		}
		b.WriteString(fmt.Sprintf("%s %s  %s", head, dimStyle.Render(c.Strategy.String()), c.Entry.Filename))
		b.WriteString("\n")
	}

	if len(m.unmatched) > 0 {
		b.WriteString("\n")
		b.WriteString(warningStyle.Render(fmt.Sprintf("Unmatched (%d):", len(m.unmatched))))
		b.WriteString("\n")
		shown := len(m.unmatched)
		if shown > 5 {
			shown = 5
		}
		for _, c := range m.unmatched[:shown] {
			detail := "no candidate"
			if c.Entry != nil {
				detail = fmt.Sprintf("best %.0f%%: %s", c.Score*100, c.Entry.Filename)
			}
			b.WriteString(dimStyle.Render(fmt.Sprintf("  %s (%s)", c.Playlist.Raw, detail)))
			b.WriteString("\n")
		}
		if shown < len(m.unmatched) {
			b.WriteString(dimStyle.Render(fmt.Sprintf("  ... and %d more", len(m.unmatched)-shown)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (m Model) viewComplete() string {
	return boxStyle.Render(fmt.Sprintf(
		"✨ Copy Complete!\n\n"+
			"Copied: %d\n"+
			"Failed: %d\n"+
			"Output: %s",
		m.copied, m.failed, m.settings.OutputDirectory,
	))
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("❌ Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case session.LevelError:
			style = errorStyle
			prefix = "✗"
		case session.LevelWarning:
			style = warningStyle
			prefix = "!"
		case session.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case session.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateInput:
		return "enter: match • ctrl+v: verbose • esc: quit"
	case StateWorking, StateCopying:
		return "esc: cancel"
	case StateResults:
		return "↑/↓: move • space: toggle • a: all • n: none • +/-: threshold • c: copy • r: restart • q: quit"
	case StateComplete, StateError:
		return "r: new run • q: quit"
	}
	return ""
}

// Run starts the TUI application.
func Run() error {
	p := tea.NewProgram(NewModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
