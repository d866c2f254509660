package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/goods/internal/model"
	"github.com/Makepad-fr/goods/internal/store/seed"
)

func TestNewModelSeedsInOrder(t *testing.T) {
	m := NewModel(context.Background(), Options{
		Seed: []seed.Entry{{Name: "Widget", Price: 100}, {Name: "Gadget", Price: 250}},
	})

	assert.Equal(t, []model.Item{
		{ID: 1, Name: "Widget", Price: 100},
		{ID: 2, Name: "Gadget", Price: 250},
	}, m.List().Items())
}

func TestUpdateResizesAndRenders(t *testing.T) {
	m := NewModel(context.Background(), Options{
		Title:    "Shop",
		Currency: "$",
		Seed:     []seed.Entry{{Name: "Widget", Price: 1250}},
	})

	next, cmd := m.Update(tea.WindowSizeMsg{Width: 80, Height: 20})
	assert.Nil(t, cmd)

	view := next.View()
	assert.Contains(t, view, "Shop")
	assert.Contains(t, view, "Widget")
	assert.Contains(t, view, "$1,250")
}

func TestUpdateForwardsKeysToList(t *testing.T) {
	m := NewModel(context.Background(), Options{DefaultPrice: 3})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 20})

	next, cmd := next.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})
	require.NotNil(t, cmd)

	l := next.(Model).List()
	assert.True(t, l.Editor().IsOpen())
	_, price := l.Editor().Values()
	assert.Equal(t, "3", price)
}
