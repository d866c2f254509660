package goods

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/Makepad-fr/goods/internal/model"
	"github.com/Makepad-fr/goods/internal/ui"
)

const (
	priceColWidth = 14
	minNameWidth  = 8
	cursorWidth   = 2
)

// row is the visible element of an item. It mirrors the record's name and
// price; List keeps the two in step.
type row struct {
	id    int
	name  string
	price float64
}

func (r row) FilterValue() string { return r.name }

func rowOf(it model.Item) row { return row{id: it.ID, name: it.Name, price: it.Price} }

// columns splits a line width between the name and price columns.
func columns(width int) (name, price int) {
	name = width - cursorWidth - priceColWidth - 1
	if name < minNameWidth {
		name = minNameWidth
	}
	return name, priceColWidth
}

func formatRow(name, price string, width int) string {
	nw, pw := columns(width)
	name = truncate.StringWithTail(name, uint(nw), "…")
	return lipgloss.NewStyle().Width(nw).Render(name) + " " +
		lipgloss.NewStyle().Width(pw).Align(lipgloss.Right).Render(price)
}

func headerLine(width int) string {
	t := ui.Current()
	return t.Muted.Render("  " + formatRow("Name", "Price", width))
}

// itemDelegate renders one row per item on a single line.
type itemDelegate struct {
	currency string
}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	r, ok := item.(row)
	if !ok {
		return
	}
	t := ui.Current()
	line := formatRow(r.name, model.FormatPrice(r.price, d.currency), m.Width())

	prefix := "  "
	if index == m.Index() {
		prefix = t.Selected.Render(t.Cursor)
		line = t.Selected.Render(line)
	}
	fmt.Fprint(w, prefix+line)
}
