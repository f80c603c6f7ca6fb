package apps

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeDesktopFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestParseDesktopFile(t *testing.T) {
	dir := t.TempDir()
	writeDesktopFile(t, dir, "firefox.desktop", `[Desktop Entry]
Type=Application
Name=Firefox
Exec=firefox %u
Icon=firefox
Terminal=false

[Desktop Action new-window]
Name=New Window
Exec=firefox --new-window
`)

	rec, ok := parseDesktopFile(filepath.Join(dir, "firefox.desktop"))
	require.True(t, ok)
	require.Equal(t, "Firefox", rec.Name)
	require.Equal(t, "firefox %u", rec.Exec)
	require.True(t, rec.HasIcon)
	require.False(t, rec.Terminal)
}

func TestParseDesktopFileRejections(t *testing.T) {
	dir := t.TempDir()

	writeDesktopFile(t, dir, "hidden.desktop", `[Desktop Entry]
Type=Application
Name=Hidden Tool
Exec=hidden
NoDisplay=true
`)
	writeDesktopFile(t, dir, "link.desktop", `[Desktop Entry]
Type=Link
Name=Some Link
Exec=whatever
`)
	writeDesktopFile(t, dir, "noexec.desktop", `[Desktop Entry]
Type=Application
Name=No Exec
`)

	for _, name := range []string{"hidden.desktop", "link.desktop", "noexec.desktop"} {
		_, ok := parseDesktopFile(filepath.Join(dir, name))
		require.False(t, ok, name)
	}
}

func TestScanDirsPrecedenceAndDedup(t *testing.T) {
	userDir := t.TempDir()
	systemDir := t.TempDir()

	writeDesktopFile(t, userDir, "editor.desktop", `[Desktop Entry]
Type=Application
Name=Editor
Exec=editor --user
`)
	writeDesktopFile(t, systemDir, "editor.desktop", `[Desktop Entry]
Type=Application
Name=Editor
Exec=editor --system
`)
	writeDesktopFile(t, systemDir, "terminal.desktop", `[Desktop Entry]
Type=Application
Name=Terminal
Exec=term
Terminal=true
`)

	records := scanDirs([]string{userDir, systemDir})
	require.Len(t, records, 2)

	byName := map[string]string{}
	for _, rec := range records {
		byName[rec.Name] = rec.Exec
	}
	require.Equal(t, "editor --user", byName["Editor"], "earlier dir wins on duplicates")
	require.Equal(t, "term", byName["Terminal"])
}
