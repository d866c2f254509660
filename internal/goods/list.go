// Package goods holds the item list: the in-memory collection, its visible
// rows, and the gestures that drive the editor and the confirmation modal.
package goods

import (
	"context"
	"fmt"
	"slices"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/goods/internal/editor"
	"github.com/Makepad-fr/goods/internal/logging"
	"github.com/Makepad-fr/goods/internal/modal"
	"github.com/Makepad-fr/goods/internal/model"
	"github.com/Makepad-fr/goods/internal/ui"
)

const (
	defaultTitle = "Goods"
	removeTitle  = "Confirm removal"
)

// Options configure a List. Zero values fall back to defaults.
type Options struct {
	Title        string
	Currency     string
	DefaultPrice float64
	Logger       logging.Logger
	// Copy writes to the system clipboard.
	Copy func(string) error
}

// session ties the open editor request to the gesture that opened it.
// itemID is zero for an add.
type session struct {
	requestID string
	itemID    int
}

type removeAnsweredMsg struct {
	id  int
	yes bool
}

// List owns the items and their rows. Only List opens or closes its editor.
type List struct {
	ctx      context.Context
	logger   logging.Logger
	copy     func(string) error
	title    string
	currency string

	items  []model.Item
	lastID int

	list    list.Model
	keys    KeyMap
	editor  *editor.Editor
	session *session
	confirm *modal.Dialog

	width, height int
}

func New(ctx context.Context, opts Options) *List {
	if opts.Title == "" {
		opts.Title = defaultTitle
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.Copy == nil {
		opts.Copy = clipboard.WriteAll
	}

	ed := editor.New()
	if opts.DefaultPrice > 0 {
		ed.DefaultPrice = opts.DefaultPrice
	}

	l := &List{
		ctx:      ctx,
		logger:   opts.Logger,
		copy:     opts.Copy,
		title:    opts.Title,
		currency: opts.Currency,
		keys:     DefaultKeyMap(),
		editor:   ed,
	}
	l.Render()
	return l
}

// Render resets the list to an empty table and enables the add gesture.
// Any open editor session or dialog is abandoned. Ids keep counting.
func (l *List) Render() {
	if l.session != nil {
		l.editor.Cancel()
		l.session = nil
	}
	l.editor.Close()
	if l.confirm != nil {
		l.confirm.Reject()
		l.confirm = nil
	}

	l.items = nil
	l.list = l.newListModel()
	l.keys.Add.SetEnabled(true)
	l.refreshTitle()
	l.SetSize(l.width, l.height)
}

func (l *List) newListModel() list.Model {
	t := ui.Current()
	m := list.New(nil, itemDelegate{currency: l.currency}, 0, 0)
	m.SetShowHelp(true)
	m.SetShowPagination(true)
	m.SetShowStatusBar(true)
	m.SetFilteringEnabled(true)
	m.Styles.Title = t.Title
	m.Styles.HelpStyle = t.Muted
	m.Styles.PaginationStyle = t.Muted
	m.FilterInput.Prompt = "/ "
	m.SetStatusBarItemName("item", "items")
	// "d" removes; keep it out of paging.
	m.KeyMap.NextPage.SetKeys("right", "l", "pgdown", "f")
	m.AdditionalShortHelpKeys = l.keys.bindings
	m.AdditionalFullHelpKeys = l.keys.bindings
	return m
}

// GetItem looks an item up by id.
func (l *List) GetItem(id int) (model.Item, bool) {
	i := l.indexOf(id)
	if i < 0 {
		return model.Item{}, false
	}
	return l.items[i], true
}

// Items returns a copy of the collection in display order.
func (l *List) Items() []model.Item { return slices.Clone(l.items) }

// Add appends an item under the next id. Inputs are assumed valid.
func (l *List) Add(name string, price float64) model.Item {
	l.lastID++
	it := model.Item{ID: l.lastID, Name: name, Price: price}
	l.items = append(l.items, it)
	l.list.InsertItem(len(l.list.Items()), rowOf(it))
	l.refilter()
	l.refreshTitle()

	l.logger.Info(l.ctx, "item added", "id", it.ID, "name", it.Name, "price", it.Price)
	return it
}

// Edit updates an item and its row in place. It reports false, changing
// nothing, when id is unknown.
func (l *List) Edit(id int, name string, price float64) bool {
	i := l.indexOf(id)
	if i < 0 {
		l.logger.Info(l.ctx, "edit of unknown item ignored", "id", id)
		return false
	}
	l.items[i].Name = name
	l.items[i].Price = price
	if r := l.rowIndex(id); r >= 0 {
		l.list.SetItem(r, rowOf(l.items[i]))
	}
	l.refilter()
	l.refreshTitle()

	l.logger.Info(l.ctx, "item edited", "id", id, "name", name, "price", price)
	return true
}

// Remove deletes an item and its row. Unknown ids are ignored.
func (l *List) Remove(id int) {
	i := l.indexOf(id)
	if i < 0 {
		l.logger.Info(l.ctx, "removal of unknown item ignored", "id", id)
		return
	}
	if r := l.rowIndex(id); r >= 0 {
		l.list.RemoveItem(r)
	}
	l.items = slices.Delete(l.items, i, i+1)
	l.refilter()
	l.refreshTitle()

	l.logger.Info(l.ctx, "item removed", "id", id)
}

// Editor exposes the list's editor, e.g. for tests driving the form.
func (l *List) Editor() *editor.Editor { return l.editor }

// Confirmation is the dialog currently shown, or nil.
func (l *List) Confirmation() *modal.Dialog { return l.confirm }

// CanAdd reports whether the add gesture is currently enabled.
func (l *List) CanAdd() bool { return l.keys.Add.Enabled() }

func (l *List) SetSize(width, height int) {
	l.width, l.height = width, height
	l.list.SetSize(width, max(height-1, 0))
}

// Update routes a message to the dialog, the editor or the list, in that
// order of precedence. ctrl+c quits from anywhere.
func (l *List) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case editor.Settled:
		l.onSettled(msg)
		return nil

	case removeAnsweredMsg:
		if msg.yes {
			l.Remove(msg.id)
		}
		return nil

	case tea.KeyMsg:
		if key.Matches(msg, l.keys.ForceQuit) {
			return tea.Quit
		}
		if l.confirm != nil {
			cmd := l.confirm.Update(msg)
			if l.confirm.Closed() {
				l.confirm = nil
			}
			return cmd
		}
		if l.editor.IsOpen() {
			return l.editor.Update(msg)
		}
		if l.list.FilterState() != list.Filtering {
			switch {
			case key.Matches(msg, l.keys.Add):
				return l.onAdd()
			case key.Matches(msg, l.keys.Edit):
				return l.onEdit(l.selectedID())
			case key.Matches(msg, l.keys.Remove):
				return l.onRemove(l.selectedID())
			case key.Matches(msg, l.keys.Copy):
				return l.onCopy(l.selectedID())
			}
		}
	}

	var cmd tea.Cmd
	l.list, cmd = l.list.Update(msg)
	return cmd
}

func (l *List) View() string {
	base := headerLine(l.list.Width()) + "\n" + l.list.View()
	switch {
	case l.confirm != nil:
		return ui.Overlay(base, l.confirm.View(), l.width, l.height)
	case l.editor.IsOpen():
		return ui.Overlay(base, l.editor.View(), l.width, l.height)
	}
	return base
}

func (l *List) onAdd() tea.Cmd {
	l.editor.Title = "Add item"
	req, err := l.editor.OpenBlank()
	if err != nil {
		l.logger.Error(l.ctx, "failed to open editor", err)
		return nil
	}
	l.keys.Add.SetEnabled(false)
	l.session = &session{requestID: req.ID()}
	return req.Await()
}

func (l *List) onEdit(id int) tea.Cmd {
	it, ok := l.GetItem(id)
	if !ok {
		return nil
	}
	l.editor.Title = "Edit item"
	req, err := l.editor.Open(it.Name, it.Price)
	if err != nil {
		l.logger.Error(l.ctx, "failed to open editor", err, "id", id)
		return nil
	}
	l.keys.Add.SetEnabled(false)
	l.session = &session{requestID: req.ID(), itemID: id}
	return req.Await()
}

func (l *List) onSettled(s editor.Settled) {
	if l.session == nil || s.RequestID != l.session.requestID {
		return
	}
	sess := l.session
	l.session = nil
	l.editor.Close()
	l.keys.Add.SetEnabled(true)

	if s.Err != nil {
		l.logger.Info(l.ctx, "editor canceled", "id", sess.itemID)
		return
	}
	if sess.itemID == 0 {
		it := l.Add(s.Result.Name, s.Result.Price)
		l.selectID(it.ID)
		return
	}
	l.Edit(sess.itemID, s.Result.Name, s.Result.Price)
}

func (l *List) onRemove(id int) tea.Cmd {
	it, ok := l.GetItem(id)
	if !ok {
		return nil
	}
	l.confirm = modal.ShowConfirmation(removeTitle,
		fmt.Sprintf("Do you really want to remove \"%s\"?", it.Name))
	return l.confirm.Await(func(yes bool) tea.Msg {
		return removeAnsweredMsg{id: id, yes: yes}
	})
}

func (l *List) onCopy(id int) tea.Cmd {
	it, ok := l.GetItem(id)
	if !ok {
		return nil
	}
	if err := l.copy(it.Name + "\t" + model.PriceText(it.Price)); err != nil {
		l.logger.Error(l.ctx, "failed to copy item", err, "id", id)
		return l.list.NewStatusMessage(ui.Current().Error.Render("copy failed"))
	}
	return l.list.NewStatusMessage("copied " + it.Name)
}

func (l *List) selectedID() int {
	if r, ok := l.list.SelectedItem().(row); ok {
		return r.id
	}
	return 0
}

func (l *List) indexOf(id int) int {
	return slices.IndexFunc(l.items, func(it model.Item) bool { return it.ID == id })
}

func (l *List) rowIndex(id int) int {
	return slices.IndexFunc(l.list.Items(), func(li list.Item) bool {
		r, ok := li.(row)
		return ok && r.id == id
	})
}

// selectID moves the cursor to the row of id when it is visible.
func (l *List) selectID(id int) {
	i := slices.IndexFunc(l.list.VisibleItems(), func(li list.Item) bool {
		r, ok := li.(row)
		return ok && r.id == id
	})
	if i >= 0 {
		l.list.Select(i)
	}
}

// refilter re-runs an active filter against the current rows. The list only
// refilters asynchronously on insert and set, and its remove indexes the
// filtered rows with an unfiltered index.
func (l *List) refilter() {
	state := l.list.FilterState()
	if state == list.Unfiltered {
		return
	}
	cursor := l.list.Index()
	l.list.SetFilterText(l.list.FilterValue())
	if state == list.Filtering {
		l.list.SetFilterState(list.Filtering)
	}
	if n := len(l.list.VisibleItems()); n > 0 {
		l.list.Select(min(cursor, n-1))
	}
}

func (l *List) refreshTitle() {
	t := ui.Current()
	l.list.Title = fmt.Sprintf("%s   %s %d  %s %s",
		l.title,
		t.Accent.Render("Items"), len(l.items),
		t.Success.Render("Total"), model.FormatPrice(model.Total(l.items), l.currency),
	)
}
