// Package modal provides a one-shot yes/no confirmation dialog.
package modal

import (
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/Makepad-fr/goods/internal/ui"
)

const dialogWidth = 44

// Button labels, stable hooks for callers and tests.
const (
	LabelConfirm = "Yes"
	LabelReject  = "No"
)

// KeyMap holds the dialog's bindings.
type KeyMap struct {
	Confirm key.Binding
	Reject  key.Binding
	Toggle  key.Binding
	Press   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Confirm: key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "yes")),
		Reject:  key.NewBinding(key.WithKeys("n", "N", "esc"), key.WithHelp("n", "no")),
		Toggle:  key.NewBinding(key.WithKeys("left", "right", "tab", "shift+tab", "h", "l"), key.WithHelp("←/→", "switch")),
		Press:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "press")),
	}
}

// Dialog is a single confirmation. It answers once, then closes itself.
type Dialog struct {
	Title string
	Text  string
	Keys  KeyMap

	confirmFocused bool
	closed         bool
	once           sync.Once
	answer         chan bool
}

// ShowConfirmation builds a dialog ready to be drawn over the caller's view.
// Nothing is retained by the package; the caller owns the dialog until it
// closes.
func ShowConfirmation(title, text string) *Dialog {
	return &Dialog{
		Title:  title,
		Text:   text,
		Keys:   DefaultKeyMap(),
		answer: make(chan bool, 1),
	}
}

// Answer delivers exactly one value: true for Yes, false for No.
func (d *Dialog) Answer() <-chan bool { return d.answer }

// Await turns the answer into a message built by fn.
func (d *Dialog) Await(fn func(yes bool) tea.Msg) tea.Cmd {
	return func() tea.Msg { return fn(<-d.answer) }
}

// Closed reports whether the dialog has been answered and removed.
func (d *Dialog) Closed() bool { return d.closed }

// Confirm answers Yes. Only the first Confirm or Reject has any effect.
func (d *Dialog) Confirm() { d.respond(true) }

// Reject answers No.
func (d *Dialog) Reject() { d.respond(false) }

func (d *Dialog) respond(yes bool) {
	d.once.Do(func() {
		d.closed = true
		d.answer <- yes
	})
}

func (d *Dialog) Update(msg tea.Msg) tea.Cmd {
	k, ok := msg.(tea.KeyMsg)
	if !ok || d.closed {
		return nil
	}
	switch {
	case key.Matches(k, d.Keys.Confirm):
		d.Confirm()
	case key.Matches(k, d.Keys.Reject):
		d.Reject()
	case key.Matches(k, d.Keys.Toggle):
		d.confirmFocused = !d.confirmFocused
	case key.Matches(k, d.Keys.Press):
		d.respond(d.confirmFocused)
	}
	return nil
}

func (d *Dialog) View() string {
	if d.closed {
		return ""
	}
	t := ui.Current()
	inner := dialogWidth - 4

	yes, no := t.Button, t.ButtonFocused
	if d.confirmFocused {
		yes, no = t.ButtonFocused, t.Button
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		yes.Render("[ "+LabelConfirm+" ]"), "  ", no.Render("[ "+LabelReject+" ]"))

	var b strings.Builder
	b.WriteString(t.Title.Render(d.Title))
	b.WriteString("\n\n")
	b.WriteString(wordwrap.String(d.Text, inner))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(inner, lipgloss.Center, buttons))

	return ui.PanelStyle().
		BorderForeground(t.Pending.GetForeground()).
		Width(dialogWidth).
		Render(b.String())
}
