package parse

import (
	"testing"

	"github.com/stretchr/testify/require"

	"flingr/internal/config"
	"flingr/internal/domain"
)

func testTables() Tables {
	return Tables{
		PowerKeyword: "p",
		Shortcuts: []config.Shortcut{
			{Keyword: "g", Label: "Google", Target: "https://www.google.com/search?q=%s"},
			{Keyword: "yt", Label: "YouTube", Target: "https://www.youtube.com/results?search_query=%s"},
		},
	}
}

func TestParse(t *testing.T) {
	tables := testTables()

	testCases := []struct {
		input string
		kind  domain.CommandKind
		query string
		index int
		desc  string
	}{
		{"firefox", domain.CmdNone, "firefox", -1, "plain app search"},
		{"", domain.CmdNone, "", -1, "empty input"},
		{":s report.pdf", domain.CmdFileSearch, "report.pdf", -1, "file search"},
		{":c monitors", domain.CmdConfigSearch, "monitors", -1, "config search"},
		{":t dusk", domain.CmdThemePreview, "dusk", -1, "theme preview"},
		{":r htop", domain.CmdRunCommand, "htop", -1, "run command"},
		{":t", domain.CmdThemePreview, "", -1, "bare keyword without space"},
		{":s", domain.CmdFileSearch, "", -1, "bare file search"},
		{":S  notes ", domain.CmdFileSearch, "notes", -1, "keyword case folded, rest trimmed"},
		{":s: notes", domain.CmdFileSearch, "notes", -1, "stray colon stripped from keyword"},
		{":p shutdown", domain.CmdPowerAction, "shutdown", -1, "configured power keyword"},
		{":g rain tomorrow", domain.CmdShortcut, "rain tomorrow", 0, "first shortcut"},
		{":yt lofi", domain.CmdShortcut, "lofi", 1, "second shortcut"},
		{"!htop", domain.CmdRunCommand, "htop", -1, "bang alias"},
		{"! df -h ", domain.CmdRunCommand, "df -h", -1, "bang with spaces"},
		{":nope something", domain.CmdNone, ":nope something", -1, "unknown keyword keeps original input"},
		{":", domain.CmdNone, ":", -1, "lone colon falls through"},
	}

	for _, tc := range testCases {
		got := Parse(tc.input, tables)
		require.Equal(t, tc.kind, got.Kind, "%s: kind for %q", tc.desc, tc.input)
		require.Equal(t, tc.query, got.Query, "%s: query for %q", tc.desc, tc.input)
		require.Equal(t, tc.index, got.Index, "%s: index for %q", tc.desc, tc.input)
	}
}

func TestParseShortcutFirstMatchWins(t *testing.T) {
	tables := Tables{
		Shortcuts: []config.Shortcut{
			{Keyword: "g", Label: "First", Target: "first/%s"},
			{Keyword: "g", Label: "Second", Target: "second/%s"},
		},
	}

	got := Parse(":g query", tables)
	require.Equal(t, domain.CmdShortcut, got.Kind)
	require.Equal(t, 0, got.Index)
}

func TestParsePowerBeatsShortcut(t *testing.T) {
	tables := Tables{
		PowerKeyword: "x",
		Shortcuts:    []config.Shortcut{{Keyword: "x", Label: "Shadowed", Target: "%s"}},
	}

	got := Parse(":x reboot", tables)
	require.Equal(t, domain.CmdPowerAction, got.Kind)
	require.Equal(t, "reboot", got.Query)
}

func TestParseEmptyShortcutKeywordNeverMatches(t *testing.T) {
	tables := Tables{
		Shortcuts: []config.Shortcut{{Keyword: "", Label: "Broken", Target: "%s"}},
	}

	// Bare ":" normalizes to an empty keyword; a misconfigured empty
	// shortcut keyword must not capture it.
	got := Parse(":", tables)
	require.Equal(t, domain.CmdNone, got.Kind)
	require.Equal(t, ":", got.Query)
	require.Equal(t, -1, got.Index)
}
