package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate keeps the user's real config and env out of the test.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("GOODS_CONFIG", "")
}

func TestDefaults(t *testing.T) {
	isolate(t)

	c, err := Load(New(""))
	require.NoError(t, err)

	assert.Equal(t, "classic", c.UI.Theme)
	assert.Equal(t, "Goods", c.UI.Title)
	assert.Empty(t, c.UI.Currency)
	assert.False(t, c.UI.NoColor)
	assert.InDelta(t, 1.0, c.Editor.DefaultPrice, 1e-9)
	assert.Empty(t, c.Log.Path)
	assert.Empty(t, c.Seed.Path)
}

func TestFileAndEnvOverrides(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "goods.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
ui:
  title: Shop
  currency: "$"
editor:
  default_price: 5
`), 0o644))
	t.Setenv("GOODS_UI_THEME", "neon")

	c, err := Load(New(path))
	require.NoError(t, err)

	assert.Equal(t, "Shop", c.UI.Title)
	assert.Equal(t, "$", c.UI.Currency)
	assert.Equal(t, "neon", c.UI.Theme)
	assert.InDelta(t, 5.0, c.Editor.DefaultPrice, 1e-9)
}

func TestConfigEnvVarNamesFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui]\ntheme = \"mono\"\n"), 0o644))
	t.Setenv("GOODS_CONFIG", path)

	c, err := Load(New(""))
	require.NoError(t, err)
	assert.Equal(t, "mono", c.UI.Theme)
}

func TestMissingExplicitFileFails(t *testing.T) {
	isolate(t)

	_, err := Load(New(filepath.Join(t.TempDir(), "nope.yaml")))
	assert.Error(t, err)
}

func TestNonPositiveDefaultPriceFails(t *testing.T) {
	isolate(t)
	t.Setenv("GOODS_EDITOR_DEFAULT_PRICE", "0")

	_, err := Load(New(""))
	assert.ErrorContains(t, err, "default_price")
}
