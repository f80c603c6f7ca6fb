// Package recent tracks the most recently launched applications and
// turns recency into a rank boost for application search.
package recent

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	"flingr/internal/logger"
)

// MaxEntries bounds the list; older launches fall off the end.
const MaxEntries = 10

const (
	boostBase = 200
	boostStep = 40
)

// List is an MRU-ordered list of launched application labels. Mutated
// only on successful launch.
type List struct {
	Labels []string `msgpack:"labels"`
	path   string
}

// New creates an empty list persisted at path. An empty path disables
// persistence (used in tests).
func New(path string) *List {
	return &List{path: path}
}

// Load reads the persisted list, returning an empty one when the file
// does not exist or cannot be decoded.
func Load(path string) *List {
	l := New(path)
	data, err := os.ReadFile(path)
	if err != nil {
		return l
	}
	if err := msgpack.Unmarshal(data, l); err != nil {
		logger.Log.Warn("discarding unreadable recent list", "path", path, "err", err)
		l.Labels = nil
		return l
	}
	if len(l.Labels) > MaxEntries {
		l.Labels = l.Labels[:MaxEntries]
	}
	return l
}

// Touch records a successful launch: move-to-front if present, else
// prepend, then truncate, then persist.
func (l *List) Touch(label string) {
	for i, existing := range l.Labels {
		if strings.EqualFold(existing, label) {
			copy(l.Labels[1:i+1], l.Labels[:i])
			l.Labels[0] = label
			l.save()
			return
		}
	}

	l.Labels = append([]string{label}, l.Labels...)
	if len(l.Labels) > MaxEntries {
		l.Labels = l.Labels[:MaxEntries]
	}
	l.save()
}

// Boost returns the recency bonus for a label: max(0, 200-40*i) for
// the label at MRU index i, zero when absent.
func (l *List) Boost(label string) int {
	for i, existing := range l.Labels {
		if strings.EqualFold(existing, label) {
			b := boostBase - boostStep*i
			if b < 0 {
				return 0
			}
			return b
		}
	}
	return 0
}

func (l *List) save() {
	if l.path == "" {
		return
	}
	if err := l.Save(); err != nil {
		logger.Log.Warn("failed to save recent list", "err", err)
	}
}

// Save writes the list to its backing file.
func (l *List) Save() error {
	if l.path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}
	data, err := msgpack.Marshal(l)
	if err != nil {
		return fmt.Errorf("failed to encode recent list: %w", err)
	}
	if err := os.WriteFile(l.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write recent list: %w", err)
	}
	return nil
}
