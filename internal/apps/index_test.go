package apps

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"flingr/internal/domain"
)

func testRecords() []domain.AppRecord {
	return []domain.AppRecord{
		{Name: "Kitty", Exec: "kitty"},
		{Name: "Firefox", Exec: "firefox"},
		{Name: "Files", Exec: "nautilus"},
		{Name: "firefox", Exec: "firefox-esr"}, // duplicate name, other case
		{Name: "Wireshark", Exec: "wireshark"},
	}
}

func TestIndexDedupAndSort(t *testing.T) {
	ix := NewIndex(testRecords())

	names := make([]string, 0, ix.Len())
	for _, rec := range ix.Records() {
		names = append(names, rec.Name)
	}
	require.Equal(t, []string{"Files", "Firefox", "Kitty", "Wireshark"}, names)
}

func TestIndexWithPrefix(t *testing.T) {
	ix := NewIndex(testRecords())

	got := ix.WithPrefix("fi")
	require.Len(t, got, 2)
	require.Equal(t, "Files", got[0].Name)
	require.Equal(t, "Firefox", got[1].Name)

	require.Empty(t, ix.WithPrefix("zz"))

	// Prefix lookup is case-insensitive.
	got = ix.WithPrefix("FIREF")
	require.Len(t, got, 1)
	require.Equal(t, "Firefox", got[0].Name)
}

func TestScanCacheRoundTrip(t *testing.T) {
	dir := t.TempDir()
	cachePath := filepath.Join(dir, "apps.cache")
	appsDir := t.TempDir()

	writeDesktopFile(t, appsDir, "kitty.desktop", `[Desktop Entry]
Type=Application
Name=Kitty
Exec=kitty
`)

	dirs := []string{appsDir}
	records := scanDirs(dirs)
	require.NoError(t, saveScanCache(cachePath, dirs, records))

	loaded, ok := loadScanCache(cachePath, dirs)
	require.True(t, ok)
	require.Equal(t, records, loaded)

	// A different directory set invalidates the snapshot.
	_, ok = loadScanCache(cachePath, []string{appsDir, t.TempDir()})
	require.False(t, ok)
}
