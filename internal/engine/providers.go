package engine

import (
	"io/fs"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"flingr/internal/domain"
	"flingr/internal/rank"
	"flingr/internal/score"
)

// configWalkCap bounds the config-search walk so one keystroke never
// drowns in a pathological ~/.config tree.
const configWalkCap = 2000

const runLabelPrefix = "Run: "

// buildApps ranks the application index. The recency boost applies only
// here, never to files or other kinds.
func (e *Engine) buildApps(query string) []domain.Result {
	selector := rank.NewSelector(e.cfg.UI.MaxResults)

	records := e.index.Records()
	if query != "" {
		// When enough apps share the query as a name prefix, the top K
		// can only come from them: the prefix tier dominates every
		// substring or typo score even after a recency boost.
		if prefixed := e.index.WithPrefix(query); len(prefixed) >= e.cfg.UI.MaxResults {
			records = prefixed
		}
	}

	for i := range records {
		rec := records[i]
		sc := score.Score(query, rec.Name, "", "")
		if sc == score.NoMatch {
			continue
		}
		sc += e.recents.Boost(rec.Name)
		selector.Add(sc, domain.Candidate{
			Kind:       domain.KindApp,
			Label:      rec.Name,
			ExecTarget: rec.Exec,
			App:        &rec,
		})
	}
	return toResults(query, selector.Results())
}

// buildFiles runs the debounced external file search.
func (e *Engine) buildFiles(query string, now time.Time) []domain.Result {
	res := e.files.Step(now, e.lastEdit, query)
	if res.Pending {
		e.pending = true
		return nil
	}

	selector := rank.NewSelector(e.cfg.UI.MaxResults)
	for _, path := range res.Paths {
		base := filepath.Base(path)
		sc := score.Score(query, base, path, e.home)
		if sc == score.NoMatch {
			continue
		}
		selector.Add(sc, domain.Candidate{
			Kind:       domain.KindFile,
			Label:      e.abbreviatePath(path),
			ExecTarget: path,
		})
	}
	return toResults(query, selector.Results())
}

// buildConfigFiles searches filesystem entries under the user config
// root. The walk is capped; unreadable entries are skipped.
func (e *Engine) buildConfigFiles(query string) []domain.Result {
	selector := rank.NewSelector(e.cfg.UI.MaxResults)

	visited := 0
	err := filepath.WalkDir(e.configRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		visited++
		if visited > configWalkCap {
			return filepath.SkipAll
		}
		if d.IsDir() {
			return nil
		}
		sc := score.Score(query, d.Name(), "", "")
		if sc == score.NoMatch {
			return nil
		}
		selector.Add(sc, domain.Candidate{
			Kind:       domain.KindConfigFile,
			Label:      e.abbreviatePath(path),
			ExecTarget: path,
		})
		return nil
	})
	if err != nil {
		e.log.Warn("config search walk failed", "err", err)
	}
	return toResults(query, selector.Results())
}

// buildThemes filters the configured theme list.
func (e *Engine) buildThemes(query string) []domain.Result {
	selector := rank.NewSelector(e.cfg.UI.MaxResults)
	for _, theme := range e.cfg.Themes {
		sc := score.Score(query, theme.Name, "", "")
		if sc == score.NoMatch {
			continue
		}
		selector.Add(sc, domain.Candidate{
			Kind:       domain.KindTheme,
			Label:      theme.Name,
			ExecTarget: theme.Name,
		})
	}
	return toResults(query, selector.Results())
}

// buildPower filters the power-action table case-insensitively by label.
func (e *Engine) buildPower(query string) []domain.Result {
	selector := rank.NewSelector(e.cfg.UI.MaxResults)
	for _, action := range e.cfg.PowerActions {
		sc := score.Score(query, action.Label, "", "")
		if sc == score.NoMatch {
			continue
		}
		selector.Add(sc, domain.Candidate{
			Kind:       domain.KindPowerAction,
			Label:      action.Label,
			ExecTarget: action.Command,
		})
	}
	return toResults(query, selector.Results())
}

// buildShortcut expands a user-defined shortcut into a single candidate.
// Spans cover only the query portion of the label, shifted past the
// fixed prefix so decorative text is never highlighted.
func (e *Engine) buildShortcut(cmd domain.Command) []domain.Result {
	if cmd.Index < 0 || cmd.Index >= len(e.cfg.Shortcuts) {
		return nil
	}
	sc := e.cfg.Shortcuts[cmd.Index]
	prefix := sc.Label + ": "

	return []domain.Result{{
		Label: prefix + cmd.Query,
		Spans: score.ShiftSpans(score.Spans(cmd.Query, cmd.Query), len([]rune(prefix))),
		Kind:  domain.KindShortcut,
		Exec:  expandShortcut(sc.Target, cmd.Query),
	}}
}

// buildRun turns the residual into a single runnable candidate.
func (e *Engine) buildRun(query string) []domain.Result {
	if query == "" {
		return nil
	}
	return []domain.Result{{
		Label: runLabelPrefix + query,
		Spans: score.ShiftSpans(score.Spans(query, query), len([]rune(runLabelPrefix))),
		Kind:  domain.KindRunCommand,
		Exec:  query,
	}}
}

// expandShortcut substitutes the query into the shortcut's target
// template, escaping it when the target is a URL.
func expandShortcut(target, query string) string {
	if strings.Contains(target, "://") {
		query = url.QueryEscape(query)
	}
	return strings.ReplaceAll(target, "%s", query)
}
