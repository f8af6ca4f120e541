// Package tui implements the interactive daily dashboard.
package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/rutina/internal/dateutil"
	"github.com/javiermolinar/rutina/internal/session"
)

// Mode represents the dashboard interaction mode.
type Mode int

const (
	// ModeNormal is cursor navigation over the schedule.
	ModeNormal Mode = iota
	// ModeAdd shows the add-task form.
	ModeAdd
	// ModeConflict asks how to resolve a detected collision.
	ModeConflict
)

// String returns a readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "Normal"
	case ModeAdd:
		return "Add"
	case ModeConflict:
		return "Conflict"
	default:
		return fmt.Sprintf("Unknown(%d)", int(m))
	}
}

// pendingAdd is a task the user tried to add that collided with the
// schedule, held while the conflict prompt is open.
type pendingAdd struct {
	title    string
	clock    string
	duration int
	detail   string // conflict description for display
}

// Model is the bubbletea model for the dashboard.
type Model struct {
	sess  *session.Session
	store session.Store

	keys   keyMap
	styles styleSet

	mode    Mode
	cursor  int
	width   int
	height  int
	now     time.Time
	message string
	errMsg  string

	form    addForm
	pending *pendingAdd
}

// NewModel creates the dashboard model over an already-loaded session.
func NewModel(sess *session.Session, store session.Store) Model {
	return Model{
		sess:   sess,
		store:  store,
		keys:   defaultKeyMap(),
		styles: newStyles(sess.Config().UI.Theme),
		now:    time.Now(),
	}
}

// tickMsg refreshes the status clock.
type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(30*time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// saveDoneMsg reports the outcome of a background state save.
type saveDoneMsg struct{ err error }

// saveCmd snapshots the session synchronously and persists it in the
// background. The snapshot is taken before the command runs so later
// model updates cannot race the write.
func (m *Model) saveCmd() tea.Cmd {
	if m.store == nil {
		return nil
	}
	snapshot := m.sess.Snapshot(dateutil.TruncateToDay(m.now))
	store := m.store
	return func() tea.Msg {
		return saveDoneMsg{err: store.SaveState(context.Background(), snapshot)}
	}
}

// clampCursor keeps the cursor inside the schedule after mutations.
func (m *Model) clampCursor() {
	if m.cursor >= len(m.sess.Day) {
		m.cursor = len(m.sess.Day) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Run starts the dashboard.
func Run(sess *session.Session, store session.Store) error {
	return RunWithDebug(sess, store, false)
}

// RunWithDebug starts the dashboard with optional debug logging.
func RunWithDebug(sess *session.Session, store session.Store, debug bool) error {
	if err := InitDebugLogger(debug); err != nil {
		return err
	}
	defer CloseDebugLogger()

	p := tea.NewProgram(NewModel(sess, store), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running dashboard: %w", err)
	}
	return nil
}

// shortID truncates a task ID for display.
func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}
