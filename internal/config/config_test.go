package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flingr.toml")
	svc := &service{filePath: path}

	cfg := Default()
	cfg.CurrentTheme = "paper"
	cfg.Shortcuts = append(cfg.Shortcuts, Shortcut{
		Keyword: "gh", Label: "GitHub", Target: "https://github.com/search?q=%s",
	})

	require.NoError(t, svc.SaveToPath(cfg, path))

	loaded, err := svc.LoadFromPath(path)
	require.NoError(t, err)
	require.Equal(t, cfg, loaded)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	svc := &service{filePath: filepath.Join(t.TempDir(), "missing.toml")}

	cfg, err := svc.Load()
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadSparseConfigFillsFallbacks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flingr.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
power_keyword = "pw"

[ui]
max_results = 7
`), 0o644))

	svc := &service{filePath: path}
	cfg, err := svc.LoadFromPath(path)
	require.NoError(t, err)

	require.Equal(t, "pw", cfg.PowerKeyword)
	require.Equal(t, 7, cfg.UI.MaxResults)

	// Everything unspecified falls back to defaults.
	def := Default()
	require.Equal(t, def.UI.DebounceMs, cfg.UI.DebounceMs)
	require.Equal(t, def.UI.MinSearchLen, cfg.UI.MinSearchLen)
	require.Equal(t, def.Terminal, cfg.Terminal)
	require.Equal(t, def.Themes, cfg.Themes)
	require.Equal(t, def.PowerActions, cfg.PowerActions)
}

func TestLoadRejectsMalformedToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flingr.toml")
	require.NoError(t, os.WriteFile(path, []byte("not = [valid"), 0o644))

	svc := &service{filePath: path}
	_, err := svc.LoadFromPath(path)
	require.Error(t, err)
}
