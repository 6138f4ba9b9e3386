package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate keeps the user's real config and env out of the test.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TADA_CONFIG", "")
	for _, k := range []string{"TADA_UI_THEME", "TADA_UI_WIDTH", "TADA_LOG_LEVEL", "TADA_LOG_FILE"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func testFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("tada", pflag.ContinueOnError)
	fs.String("config", "", "")
	fs.String("theme", "", "")
	fs.String("log-file", "", "")
	fs.String("log-level", "", "")
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	c, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "classic", c.UI.Theme)
	assert.Equal(t, "Todo List", c.UI.Title)
	assert.Equal(t, "No todos yet. Add one above!", c.UI.EmptyMessage)
	assert.Equal(t, "Add a new todo...", c.UI.Placeholder)
	assert.Equal(t, 200, c.UI.CharLimit)
	assert.Equal(t, 60, c.UI.Width)
	assert.Equal(t, "", c.Log.File)
	assert.Equal(t, "info", c.Log.Level)
}

func TestLoadFileFromEnv(t *testing.T) {
	isolate(t)
	t.Setenv("TADA_CONFIG", writeConfig(t, `
[ui]
theme = "neon"
empty_message = "Nothing here"
width = 72
`))

	c, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "neon", c.UI.Theme)
	assert.Equal(t, "Nothing here", c.UI.EmptyMessage)
	assert.Equal(t, 72, c.UI.Width)
	assert.Equal(t, "Todo List", c.UI.Title)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	isolate(t)
	t.Setenv("TADA_CONFIG", writeConfig(t, "[ui]\ntheme = \"neon\"\n"))
	t.Setenv("TADA_UI_THEME", "mono")

	c, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "mono", c.UI.Theme)
}

func TestLoadFlagsWin(t *testing.T) {
	isolate(t)
	t.Setenv("TADA_UI_THEME", "mono")
	path := writeConfig(t, "[log]\nlevel = \"warn\"\n")

	c, err := Load(testFlags(t, "--config", path, "--theme", "neon", "--log-level", "debug"))
	require.NoError(t, err)
	assert.Equal(t, "neon", c.UI.Theme)
	assert.Equal(t, "debug", c.Log.Level)
}

func TestLoadUnchangedFlagsKeepDefaults(t *testing.T) {
	isolate(t)

	c, err := Load(testFlags(t))
	require.NoError(t, err)
	assert.Equal(t, "classic", c.UI.Theme)
	assert.Equal(t, "info", c.Log.Level)
}

func TestLoadExplicitMissingFile(t *testing.T) {
	isolate(t)
	t.Setenv("TADA_CONFIG", filepath.Join(t.TempDir(), "nope.toml"))

	_, err := Load(nil)
	assert.Error(t, err)
}

func TestLoadInvalidValues(t *testing.T) {
	isolate(t)
	t.Setenv("TADA_CONFIG", writeConfig(t, "[ui]\nwidth = 0\n"))
	_, err := Load(nil)
	assert.ErrorIs(t, err, ErrInvalid)

	t.Setenv("TADA_CONFIG", writeConfig(t, "[log]\nlevel = \"loud\"\n"))
	_, err = Load(nil)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestLoadMalformedFile(t *testing.T) {
	isolate(t)
	t.Setenv("TADA_CONFIG", writeConfig(t, "[ui\ntheme = "))

	_, err := Load(nil)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalid)
}
