package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/goods/internal/store/seed"
	"github.com/Makepad-fr/goods/internal/tui"
	"github.com/Makepad-fr/goods/internal/ui"
)

// stubTUI replaces the program runner and captures the options it got.
func stubTUI(t *testing.T, err error) *tui.Options {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("GOODS_CONFIG", "")

	var got tui.Options
	old := runTUI
	runTUI = func(_ context.Context, opt tui.Options) error {
		got = opt
		return err
	}
	t.Cleanup(func() { runTUI = old })
	return &got
}

func captureFail(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := ui.Err
	ui.Err = &buf
	t.Cleanup(func() { ui.Err = old })
	return &buf
}

func TestRunStartsProgramWithConfig(t *testing.T) {
	got := stubTUI(t, nil)
	t.Setenv("GOODS_UI_TITLE", "Shop")

	code := Run(context.Background(), []string{"--currency", "€"})

	assert.Equal(t, 0, code)
	assert.Equal(t, "Shop", got.Title)
	assert.Equal(t, "€", got.Currency)
	assert.InDelta(t, 1.0, got.DefaultPrice, 1e-9)
	assert.NotNil(t, got.Logger)
	assert.Empty(t, got.Seed)
}

func TestRunLoadsSeed(t *testing.T) {
	got := stubTUI(t, nil)
	path := filepath.Join(t.TempDir(), "items.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- name: Widget\n  price: 100\n"), 0o644))

	code := Run(context.Background(), []string{"--seed", path})

	assert.Equal(t, 0, code)
	assert.Equal(t, []seed.Entry{{Name: "Widget", Price: 100}}, got.Seed)
}

func TestRunBadSeedFails(t *testing.T) {
	stubTUI(t, nil)
	errOut := captureFail(t)

	code := Run(context.Background(), []string{"--seed", filepath.Join(t.TempDir(), "none.yaml")})

	assert.Equal(t, 1, code)
	assert.Contains(t, errOut.String(), "failed to read from")
}

func TestRunProgramErrorFails(t *testing.T) {
	stubTUI(t, errors.New("no tty"))
	errOut := captureFail(t)

	assert.Equal(t, 1, Run(context.Background(), nil))
	assert.Contains(t, errOut.String(), "no tty")
}

func TestRunWritesLogFile(t *testing.T) {
	stubTUI(t, nil)
	path := filepath.Join(t.TempDir(), "goods.log")

	require.Equal(t, 0, Run(context.Background(), []string{"--log-file", path}))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "msg=starting")
	assert.Contains(t, string(b), "msg=stopped")
}

func TestRunUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown subcommand", args: []string{"frobnicate"}},
		{name: "unknown flag", args: []string{"--frobnicate"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stubTUI(t, nil)
			errOut := captureFail(t)

			assert.Equal(t, 2, Run(context.Background(), tt.args))
			assert.Contains(t, errOut.String(), tt.args[0])
		})
	}
}

func TestVersion(t *testing.T) {
	var out bytes.Buffer
	old := ui.Out
	ui.Out = &out
	t.Cleanup(func() { ui.Out = old })

	assert.Equal(t, 0, Run(context.Background(), []string{"version"}))
	assert.Contains(t, out.String(), "goods dev")
}
