// Package tui hosts the item list as a full-screen Bubble Tea program.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"

	"github.com/Makepad-fr/goods/internal/goods"
	"github.com/Makepad-fr/goods/internal/logging"
	"github.com/Makepad-fr/goods/internal/store/seed"
	"github.com/Makepad-fr/goods/internal/ui"
)

// Options tune the program from config.
type Options struct {
	Title        string
	Currency     string
	DefaultPrice float64
	Seed         []seed.Entry
	Logger       logging.Logger
}

// Model adapts goods.List to tea.Model and frames it in a panel.
type Model struct {
	list *goods.List
}

// NewModel renders an empty list and adds the seed entries in order.
func NewModel(ctx context.Context, opt Options) Model {
	l := goods.New(ctx, goods.Options{
		Title:        opt.Title,
		Currency:     opt.Currency,
		DefaultPrice: opt.DefaultPrice,
		Logger:       opt.Logger,
	})
	for _, e := range opt.Seed {
		l.Add(e.Name, e.Price)
	}
	return Model{list: l}
}

// List exposes the hosted list.
func (m Model) List() *goods.List { return m.list }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		fw, fh := ui.PanelStyle().GetFrameSize()
		m.list.SetSize(ws.Width-fw, ws.Height-fh)
		return m, nil
	}
	return m, m.list.Update(msg)
}

func (m Model) View() string {
	return ui.Panel(m.list.View())
}

// Run starts the program on the alternate screen and blocks until quit.
func Run(ctx context.Context, opt Options) error {
	p := tea.NewProgram(NewModel(ctx, opt), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return errors.Wrapf(err, "failed to run program")
	}
	return nil
}
