// Package engine turns raw input into the ordered, annotated result
// list shown by the UI: parse the command prefix, gather candidates
// from the matching provider, score them, keep the top K, and compute
// highlight spans.
package engine

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"flingr/internal/apps"
	"flingr/internal/config"
	"flingr/internal/domain"
	"flingr/internal/logger"
	"flingr/internal/parse"
	"flingr/internal/recent"
	"flingr/internal/score"
	"flingr/internal/search"
)

// Engine owns the mutable launcher state: application index, recent
// list, file-search cache, and the current result list. Everything is
// mutated between discrete keystroke-processing steps on one goroutine.
type Engine struct {
	cfg        *config.Config
	index      *apps.Index
	recents    *recent.List
	files      *search.Controller
	home       string
	configRoot string
	log        *log.Logger

	input    string
	lastEdit time.Time
	command  domain.Command
	pending  bool

	results  []domain.Result
	selected int
	scroll   int
	visible  int
}

// New wires an engine over its collaborators.
func New(cfg *config.Config, index *apps.Index, recents *recent.List, files *search.Controller) *Engine {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	configRoot, err := os.UserConfigDir()
	if err != nil {
		configRoot = filepath.Join(home, ".config")
	}

	e := &Engine{
		cfg:        cfg,
		index:      index,
		recents:    recents,
		files:      files,
		home:       home,
		configRoot: configRoot,
		visible:    cfg.UI.MaxResults,
		log:        logger.New("engine"),
	}
	e.Rebuild(time.Now())
	return e
}

// SetInput records a keystroke's new input line and rebuilds. Selection
// resets so the best match is always preselected while typing.
func (e *Engine) SetInput(input string, now time.Time) {
	e.input = input
	e.lastEdit = now
	e.selected = 0
	e.scroll = 0
	e.Rebuild(now)
}

// Rebuild recomputes the result list for the current input.
func (e *Engine) Rebuild(now time.Time) {
	e.command = parse.Parse(e.input, parse.Tables{
		PowerKeyword: e.cfg.PowerKeyword,
		Shortcuts:    e.cfg.Shortcuts,
	})
	e.pending = false

	var results []domain.Result
	switch e.command.Kind {
	case domain.CmdNone:
		results = e.buildApps(e.command.Query)
	case domain.CmdFileSearch:
		results = e.buildFiles(e.command.Query, now)
	case domain.CmdConfigSearch:
		results = e.buildConfigFiles(e.command.Query)
	case domain.CmdThemePreview:
		results = e.buildThemes(e.command.Query)
	case domain.CmdPowerAction:
		results = e.buildPower(e.command.Query)
	case domain.CmdShortcut:
		results = e.buildShortcut(e.command)
	case domain.CmdRunCommand:
		results = e.buildRun(e.command.Query)
	}

	if len(results) == 0 {
		label := domain.LabelNoMatches
		if e.pending {
			label = domain.LabelSearching
		}
		results = []domain.Result{{Label: label, Kind: domain.KindPlaceholder}}
	}

	e.results = results
	e.clampSelection()
}

// RebuildDue reports whether the idle loop should re-trigger a rebuild:
// a debounced file search is pending and the window has now elapsed.
func (e *Engine) RebuildDue(now time.Time) bool {
	if !e.pending || e.command.Kind != domain.CmdFileSearch {
		return false
	}
	return e.files.Due(now, e.lastEdit, e.command.Query)
}

// Results returns the current ordered result list.
func (e *Engine) Results() []domain.Result {
	return e.results
}

// Input returns the current raw input line.
func (e *Engine) Input() string {
	return e.input
}

// Command returns the parsed form of the current input.
func (e *Engine) Command() domain.Command {
	return e.command
}

// Pending reports whether a debounced search placeholder is showing.
func (e *Engine) Pending() bool {
	return e.pending
}

// Selected returns the index of the currently selected result.
func (e *Engine) Selected() int {
	return e.selected
}

// Scroll returns the current viewport offset into the result list.
func (e *Engine) Scroll() int {
	return e.scroll
}

// SetVisibleRows tells the engine how many result rows fit on screen.
func (e *Engine) SetVisibleRows(n int) {
	if n < 1 {
		n = 1
	}
	e.visible = n
	e.clampSelection()
}

// MoveSelection shifts the selection by delta, clamping at the ends and
// keeping the selected row inside the viewport.
func (e *Engine) MoveSelection(delta int) {
	e.selected += delta
	e.clampSelection()
}

// Current returns the selected result, if it is actionable.
func (e *Engine) Current() (domain.Result, bool) {
	if e.selected < 0 || e.selected >= len(e.results) {
		return domain.Result{}, false
	}
	res := e.results[e.selected]
	if res.Kind == domain.KindPlaceholder {
		return domain.Result{}, false
	}
	return res, true
}

// MarkLaunched moves a successfully launched application to the front
// of the recent list, which feeds the recency boost on the next query.
func (e *Engine) MarkLaunched(label string) {
	e.recents.Touch(label)
}

func (e *Engine) clampSelection() {
	if e.selected >= len(e.results) {
		e.selected = len(e.results) - 1
	}
	if e.selected < 0 {
		e.selected = 0
	}
	if e.selected < e.scroll {
		e.scroll = e.selected
	}
	if e.selected >= e.scroll+e.visible {
		e.scroll = e.selected - e.visible + 1
	}
	if e.scroll < 0 {
		e.scroll = 0
	}
}

// toResults annotates ranked candidates with highlight spans.
func toResults(query string, ranked []domain.ScoredCandidate) []domain.Result {
	out := make([]domain.Result, 0, len(ranked))
	for _, sc := range ranked {
		out = append(out, domain.Result{
			Label: sc.Candidate.Label,
			Spans: score.Spans(query, sc.Candidate.Label),
			Kind:  sc.Candidate.Kind,
			Exec:  sc.Candidate.ExecTarget,
			App:   sc.Candidate.App,
		})
	}
	return out
}

// abbreviatePath shortens a home-relative path for display.
func (e *Engine) abbreviatePath(path string) string {
	if e.home != "" && strings.HasPrefix(path, e.home) {
		rest := path[len(e.home):]
		if rest == "" || rest[0] == '/' {
			return "~" + rest
		}
	}
	return path
}
