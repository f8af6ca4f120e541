package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/rutina/internal/dateutil"
)

// Form field indices.
const (
	fieldTitle = iota
	fieldStart
	fieldDuration
	fieldCount
)

// addForm collects a manual task: title, start clock, duration.
type addForm struct {
	inputs []textinput.Model
	focus  int
}

// newAddForm builds the form, pre-filling the start field with the
// current clock so "add something starting now" is one keystroke away.
func newAddForm(defaultClock string) addForm {
	title := textinput.New()
	title.Placeholder = "Task title"
	title.CharLimit = 80
	title.Width = 32
	title.Focus()

	start := textinput.New()
	start.Placeholder = "HH:MM"
	start.CharLimit = 5
	start.Width = 8
	start.SetValue(defaultClock)

	duration := textinput.New()
	duration.Placeholder = "30"
	duration.CharLimit = 3
	duration.Width = 5

	return addForm{inputs: []textinput.Model{title, start, duration}}
}

// Update routes messages to the focused field and handles tab cycling.
func (f addForm) Update(msg tea.Msg) (addForm, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "down":
			f.setFocus((f.focus + 1) % fieldCount)
			return f, nil
		case "shift+tab", "up":
			f.setFocus((f.focus + fieldCount - 1) % fieldCount)
			return f, nil
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f *addForm) setFocus(idx int) {
	for i := range f.inputs {
		if i == idx {
			f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
	f.focus = idx
}

// Title returns the trimmed title field.
func (f addForm) Title() string {
	return strings.TrimSpace(f.inputs[fieldTitle].Value())
}

// Clock returns the start field.
func (f addForm) Clock() string {
	return strings.TrimSpace(f.inputs[fieldStart].Value())
}

// Duration parses the duration field.
func (f addForm) Duration() (int, error) {
	v := strings.TrimSpace(f.inputs[fieldDuration].Value())
	if v == "" {
		return 30, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q", v)
	}
	return n, nil
}

// Validate checks the form before submission.
func (f addForm) Validate() error {
	if f.Title() == "" {
		return fmt.Errorf("please enter a title for the task")
	}
	if err := dateutil.ValidateClock(f.Clock()); err != nil {
		return fmt.Errorf("start time: %w", err)
	}
	_, err := f.Duration()
	return err
}

// View renders the form fields with labels.
func (f addForm) View(styles styleSet) string {
	var b strings.Builder
	b.WriteString(styles.FormName.Render("Add a task"))
	b.WriteString("\n\n")
	b.WriteString("Title:    " + f.inputs[fieldTitle].View() + "\n")
	b.WriteString("Start:    " + f.inputs[fieldStart].View() + "\n")
	b.WriteString("Duration: " + f.inputs[fieldDuration].View() + " min\n")
	b.WriteString("\n")
	b.WriteString(styles.Help.Render("enter add · tab next field · esc cancel"))
	return styles.FormBox.Render(b.String())
}
