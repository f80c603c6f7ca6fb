package domain

import "strings"

// CommandKind classifies what a line of raw input asks for
type CommandKind int

const (
	CmdNone CommandKind = iota // plain application search
	CmdFileSearch
	CmdConfigSearch
	CmdThemePreview
	CmdRunCommand
	CmdPowerAction
	CmdShortcut
)

// String returns a short name for logging
func (k CommandKind) String() string {
	switch k {
	case CmdNone:
		return "none"
	case CmdFileSearch:
		return "file-search"
	case CmdConfigSearch:
		return "config-search"
	case CmdThemePreview:
		return "theme"
	case CmdRunCommand:
		return "run"
	case CmdPowerAction:
		return "power"
	case CmdShortcut:
		return "shortcut"
	default:
		return "unknown"
	}
}

// Command is the parsed form of one line of raw input
type Command struct {
	Kind  CommandKind
	Query string // residual query after prefix stripping
	Index int    // shortcut table index, -1 otherwise
}

// CandidateKind tags what a result item is and how it executes
type CandidateKind int

const (
	KindApp CandidateKind = iota
	KindFile
	KindConfigFile
	KindShortcut
	KindPowerAction
	KindTheme
	KindRunCommand
	KindPlaceholder
)

// String returns a short name for logging
func (k CandidateKind) String() string {
	switch k {
	case KindApp:
		return "app"
	case KindFile:
		return "file"
	case KindConfigFile:
		return "config-file"
	case KindShortcut:
		return "shortcut"
	case KindPowerAction:
		return "power"
	case KindTheme:
		return "theme"
	case KindRunCommand:
		return "run"
	case KindPlaceholder:
		return "placeholder"
	default:
		return "unknown"
	}
}

// AppRecord represents one launchable desktop application
type AppRecord struct {
	Name     string `msgpack:"name"`
	Exec     string `msgpack:"exec"`
	HasIcon  bool   `msgpack:"has_icon"`
	Terminal bool   `msgpack:"terminal"`
}

// Candidate is one selectable result item. Label is never empty once a
// candidate reaches a result list; placeholders carry explanatory text.
type Candidate struct {
	Kind       CandidateKind
	Label      string
	ExecTarget string // command line, path, or theme name for the executor
	App        *AppRecord
}

// ScoredCandidate pairs a candidate with its rank score
type ScoredCandidate struct {
	Score     int
	Candidate Candidate
}

// Less orders scored candidates descending by score, ties broken by
// case-insensitive label so result lists are deterministic.
func (s ScoredCandidate) Less(other ScoredCandidate) bool {
	if s.Score != other.Score {
		return s.Score > other.Score
	}
	return strings.ToLower(s.Candidate.Label) < strings.ToLower(other.Candidate.Label)
}

// Span marks a run of matched characters within a label
type Span struct {
	Start int
	Len   int
}

// Result is one row handed to the renderer
type Result struct {
	Label string
	Spans []Span
	Kind  CandidateKind
	Exec  string
	App   *AppRecord
}

// Placeholder labels used when a provider has nothing to show
const (
	LabelNoMatches = "No matches"
	LabelSearching = "Searching..."
)
