// Package apps maintains the in-memory application index: a stable,
// deduplicated list of desktop entries plus a prefix trie used for
// fast prefix enumeration.
package apps

import (
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"

	"flingr/internal/domain"
	"flingr/internal/eventbus"
	"flingr/internal/logger"
)

// Index holds the deduplicated, name-sorted application records. It is
// read-only per keystroke; rebuilds happen between keystrokes.
type Index struct {
	records []domain.AppRecord
	trie    *patricia.Trie
	log     *log.Logger
}

// NewIndex creates an index over the given records.
func NewIndex(records []domain.AppRecord) *Index {
	ix := &Index{log: logger.New("apps")}
	ix.build(records)
	return ix
}

// Scan builds the index from the XDG application dirs, reusing the
// msgpack snapshot at cachePath when the dirs have not changed.
func Scan(cachePath string, bus eventbus.EventBus) *Index {
	dirs := dataDirs()

	if records, ok := loadScanCache(cachePath, dirs); ok {
		ix := NewIndex(records)
		ix.log.Debug("application index loaded from cache", "apps", len(records))
		return ix
	}

	if bus != nil {
		bus.Publish(eventbus.ScanStartedEvent{})
	}
	records := scanDirs(dirs)
	ix := NewIndex(records)

	if cachePath != "" {
		if err := saveScanCache(cachePath, dirs, ix.records); err != nil {
			ix.log.Warn("failed to save scan cache", "err", err)
		}
	}
	if bus != nil {
		bus.Publish(eventbus.ScanCompletedEvent{AppsFound: len(ix.records)})
	}
	ix.log.Info("application index built", "apps", len(ix.records))
	return ix
}

func (ix *Index) build(records []domain.AppRecord) {
	deduped := make([]domain.AppRecord, 0, len(records))
	seen := make(map[string]struct{}, len(records))
	for _, rec := range records {
		key := strings.ToLower(rec.Name)
		if _, dup := seen[key]; dup || rec.Name == "" {
			continue
		}
		seen[key] = struct{}{}
		deduped = append(deduped, rec)
	}
	sort.Slice(deduped, func(i, j int) bool {
		return strings.ToLower(deduped[i].Name) < strings.ToLower(deduped[j].Name)
	})

	trie := patricia.NewTrie()
	for i := range deduped {
		trie.Insert(patricia.Prefix(strings.ToLower(deduped[i].Name)), i)
	}

	ix.records = deduped
	ix.trie = trie
}

// Records returns all indexed applications sorted by name.
func (ix *Index) Records() []domain.AppRecord {
	return ix.records
}

// Len reports the number of indexed applications.
func (ix *Index) Len() int {
	return len(ix.records)
}

// WithPrefix returns the applications whose name starts with prefix
// (case-insensitive), in name order.
func (ix *Index) WithPrefix(prefix string) []domain.AppRecord {
	var out []domain.AppRecord
	err := ix.trie.VisitSubtree(patricia.Prefix(strings.ToLower(prefix)), func(_ patricia.Prefix, item patricia.Item) error {
		out = append(out, ix.records[item.(int)])
		return nil
	})
	if err != nil {
		ix.log.Error("trie visit failed", "err", err)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}
