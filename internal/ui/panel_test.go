package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlayCentersForeground(t *testing.T) {
	bg := strings.Join([]string{
		"..........",
		"..........",
		"..........",
	}, "\n")

	got := Overlay(bg, "ab", 10, 3)
	lines := strings.Split(got, "\n")

	require.Len(t, lines, 3)
	assert.Equal(t, "..........", lines[0])
	assert.Equal(t, "....ab....", lines[1])
	assert.Equal(t, "..........", lines[2])
}

func TestOverlayPadsShortBackground(t *testing.T) {
	got := Overlay("", "xy", 6, 3)
	lines := strings.Split(got, "\n")

	require.Len(t, lines, 3)
	assert.Equal(t, "  xy  ", lines[1])
}

func TestOverlayLargerThanCanvas(t *testing.T) {
	got := Overlay("..", "abcd\nefgh\nijkl", 2, 1)
	assert.Equal(t, "abcd", got)
}

func TestOKAndFail(t *testing.T) {
	SetTheme("mono")
	defer SetTheme("classic")

	var out, errOut bytes.Buffer
	oldOut, oldErr := Out, Err
	Out, Err = &out, &errOut
	defer func() {
		Out, Err = oldOut, oldErr
	}()

	OK("started")
	Fail("broken")

	assert.Contains(t, out.String(), "ok started")
	assert.Contains(t, errOut.String(), "x broken")
}

func TestSetThemeFallsBackToClassic(t *testing.T) {
	SetTheme("does-not-exist")
	assert.Equal(t, "✔", Current().SymOK)

	SetTheme("NEON")
	assert.Equal(t, "▸ ", Current().Cursor)

	SetTheme("classic")
}
