// Package editor is the reusable item form shown over the list. Opening it
// returns a Request that settles when the user submits a valid form or
// cancels.
package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/goods/internal/model"
	"github.com/Makepad-fr/goods/internal/ui"
)

// Field names, stable hooks for tests and callers.
const (
	FieldName  = "itemName"
	FieldPrice = "itemPrice"
)

// DefaultPrice pre-fills the price field of a blank form.
const DefaultPrice = 1.0

const formWidth = 40

type focus int

const (
	focusName focus = iota
	focusPrice
	focusSave
	focusCancel
	focusCount
)

// KeyMap holds the form's bindings.
type KeyMap struct {
	Submit key.Binding
	Cancel key.Binding
	Next   key.Binding
	Prev   key.Binding
}

// DefaultKeyMap returns the bindings used by New.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Next:   key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev field")),
	}
}

// Editor is a modal, non-reentrant form. The zero value is not usable; call New.
type Editor struct {
	// Title is shown in the form's header. Set it before Open.
	Title        string
	DefaultPrice float64
	Keys         KeyMap

	name  textinput.Model
	price textinput.Model
	focus focus

	open    bool
	pending *Request
	err     *FieldError
}

func New() *Editor {
	name := textinput.New()
	name.Prompt = "> "
	name.Placeholder = "Enter a name"
	name.CharLimit = 200

	price := textinput.New()
	price.Prompt = "> "
	price.Placeholder = "Enter a price"
	price.CharLimit = 16

	return &Editor{
		Title:        "Item",
		DefaultPrice: DefaultPrice,
		Keys:         DefaultKeyMap(),
		name:         name,
		price:        price,
	}
}

// Open pre-fills the form, shows it and returns the pending request.
// It fails with ErrBusy while an earlier request has not settled.
func (e *Editor) Open(name string, price float64) (*Request, error) {
	if e.pending != nil {
		return nil, ErrBusy
	}
	e.name.SetValue(name)
	e.name.CursorEnd()
	e.price.SetValue(model.PriceText(price))
	e.price.CursorEnd()
	e.err = nil
	e.setFocus(focusName)
	e.open = true
	e.pending = newRequest()
	return e.pending, nil
}

// OpenBlank opens the form with an empty name and the default price.
func (e *Editor) OpenBlank() (*Request, error) {
	return e.Open("", e.DefaultPrice)
}

// Close hides the form. It never settles a pending request.
func (e *Editor) Close() {
	e.open = false
	e.err = nil
	e.name.Blur()
	e.price.Blur()
}

func (e *Editor) IsOpen() bool { return e.open }

// Pending is the unsettled request, or nil.
func (e *Editor) Pending() *Request { return e.pending }

// Values returns the raw text of the name and price fields.
func (e *Editor) Values() (name, price string) {
	return e.name.Value(), e.price.Value()
}

// FieldErr is the inline error from the last failed validation, or nil.
func (e *Editor) FieldErr() *FieldError { return e.err }

// Validate checks the fields and records the first failure for display,
// moving focus to the failing field.
func (e *Editor) Validate() error {
	fe := validate(e.name.Value(), e.price.Value())
	e.err = fe
	if fe == nil {
		return nil
	}
	if fe.Field == FieldPrice {
		e.setFocus(focusPrice)
	} else {
		e.setFocus(focusName)
	}
	return fe
}

// Submit resolves the pending request if the form is valid.
func (e *Editor) Submit() bool {
	if e.pending == nil || e.Validate() != nil {
		return false
	}
	price, _ := parsePrice(e.price.Value())
	req := e.pending
	e.pending = nil
	return req.resolve(Result{
		Name:  strings.TrimSpace(e.name.Value()),
		Price: price,
	})
}

// Cancel rejects the pending request with ErrCanceled.
func (e *Editor) Cancel() bool {
	if e.pending == nil {
		return false
	}
	req := e.pending
	e.pending = nil
	return req.reject()
}

// Update routes key presses while the form is open.
func (e *Editor) Update(msg tea.Msg) tea.Cmd {
	if !e.open {
		return nil
	}
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, e.Keys.Cancel):
			e.Cancel()
			return nil
		case key.Matches(k, e.Keys.Submit):
			if e.focus == focusCancel {
				e.Cancel()
			} else {
				e.Submit()
			}
			return nil
		case key.Matches(k, e.Keys.Next):
			e.setFocus((e.focus + 1) % focusCount)
			return nil
		case key.Matches(k, e.Keys.Prev):
			e.setFocus((e.focus + focusCount - 1) % focusCount)
			return nil
		}
	}

	var cmd tea.Cmd
	switch e.focus {
	case focusName:
		e.name, cmd = e.name.Update(msg)
	case focusPrice:
		e.price, cmd = e.price.Update(msg)
	}
	return cmd
}

func (e *Editor) setFocus(f focus) {
	e.focus = f
	e.name.Blur()
	e.price.Blur()
	switch f {
	case focusName:
		e.name.Focus()
	case focusPrice:
		e.price.Focus()
	}
}

func (e *Editor) View() string {
	if !e.open {
		return ""
	}
	t := ui.Current()

	var b strings.Builder
	b.WriteString(t.Title.Render(e.Title))
	b.WriteString("\n\n")
	e.writeField(&b, "Name", FieldName, e.name.View())
	e.writeField(&b, "Price", FieldPrice, e.price.View())

	save, cancel := t.Button, t.Button
	switch e.focus {
	case focusSave:
		save = t.ButtonFocused
	case focusCancel:
		cancel = t.ButtonFocused
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		save.Render("[ Save ]"), " ", cancel.Render("[ Cancel ]")))
	b.WriteString("\n")
	b.WriteString(t.Muted.Render("enter save • esc cancel • tab next"))

	return ui.PanelStyle().Width(formWidth).Render(b.String())
}

func (e *Editor) writeField(b *strings.Builder, label, field, input string) {
	t := ui.Current()
	b.WriteString(t.Accent.Render(label))
	b.WriteString("\n")
	b.WriteString(input)
	b.WriteString("\n")
	if e.err != nil && e.err.Field == field {
		b.WriteString(t.Error.Render(e.err.Message))
		b.WriteString("\n")
	}
	b.WriteString("\n")
}
