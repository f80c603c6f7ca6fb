// Package parse classifies raw launcher input into a command kind plus
// a residual query by prefix recognition.
package parse

import (
	"strings"
	"unicode"

	"flingr/internal/config"
	"flingr/internal/domain"
)

// Built-in colon keywords with fixed meanings
const (
	keywordFileSearch   = "s"
	keywordConfigSearch = "c"
	keywordTheme        = "t"
	keywordRun          = "r"
)

// Tables holds the configured keyword tables the parser consults
// read-only on every keystroke.
type Tables struct {
	PowerKeyword string
	Shortcuts    []config.Shortcut
}

// Parse turns one line of raw input into a command. Unrecognized colon
// keywords fall through to plain application search with the original
// input intact, so keystrokes are never silently dropped.
func Parse(input string, tables Tables) domain.Command {
	switch {
	case strings.HasPrefix(input, ":"):
		return parseColon(input, tables)
	case strings.HasPrefix(input, "!"):
		// Bang is a shorthand alias for :r.
		return domain.Command{
			Kind:  domain.CmdRunCommand,
			Query: strings.TrimSpace(input[1:]),
			Index: -1,
		}
	default:
		return domain.Command{Kind: domain.CmdNone, Query: input, Index: -1}
	}
}

func parseColon(input string, tables Tables) domain.Command {
	keyword, rest := splitKeyword(input[1:])
	keyword = normalizeKeyword(keyword)

	switch keyword {
	case keywordFileSearch:
		return domain.Command{Kind: domain.CmdFileSearch, Query: rest, Index: -1}
	case keywordConfigSearch:
		return domain.Command{Kind: domain.CmdConfigSearch, Query: rest, Index: -1}
	case keywordTheme:
		return domain.Command{Kind: domain.CmdThemePreview, Query: rest, Index: -1}
	case keywordRun:
		return domain.Command{Kind: domain.CmdRunCommand, Query: rest, Index: -1}
	}

	if keyword != "" && keyword == strings.ToLower(tables.PowerKeyword) {
		return domain.Command{Kind: domain.CmdPowerAction, Query: rest, Index: -1}
	}

	// First matching shortcut wins. An unset keyword never matches, so
	// bare ":" stays a plain app search.
	for i, sc := range tables.Shortcuts {
		if keyword != "" && keyword == strings.ToLower(sc.Keyword) {
			return domain.Command{Kind: domain.CmdShortcut, Query: rest, Index: i}
		}
	}

	// Unknown keyword: keep the original input as an app-search query.
	return domain.Command{Kind: domain.CmdNone, Query: input, Index: -1}
}

// splitKeyword splits on the first whitespace. A bare keyword with no
// trailing space is still recognized; the residual is then empty.
func splitKeyword(s string) (keyword, rest string) {
	idx := strings.IndexFunc(s, unicode.IsSpace)
	if idx < 0 {
		return s, ""
	}
	return s[:idx], strings.TrimSpace(s[idx+1:])
}

func normalizeKeyword(keyword string) string {
	return strings.Trim(strings.ToLower(keyword), ":")
}
