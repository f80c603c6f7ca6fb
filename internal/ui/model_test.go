package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"flingr/internal/apps"
	"flingr/internal/config"
	"flingr/internal/domain"
	"flingr/internal/engine"
	"flingr/internal/eventbus"
	"flingr/internal/executor"
	"flingr/internal/recent"
	"flingr/internal/search"
)

type noopSearcher struct{}

func (noopSearcher) Search(query string, limit int) ([]string, error) {
	return nil, nil
}

func newTestModel(t *testing.T, names []string) *Model {
	t.Helper()

	cfg := config.Default()
	records := make([]domain.AppRecord, 0, len(names))
	for _, name := range names {
		// Empty Exec lines make every launch fail synchronously.
		records = append(records, domain.AppRecord{Name: name})
	}

	files := search.NewController(noopSearcher{}, 240*time.Millisecond, cfg.UI.MinSearchLen, cfg.UI.SearchCap)
	eng := engine.New(cfg, apps.NewIndex(records), recent.New(""), files)

	bus := eventbus.New()
	t.Cleanup(bus.Close)
	exe := executor.New(cfg.Terminal, bus, nil)

	return NewModel(cfg, eng, exe)
}

func TestFailedLaunchKeepsRecentsAndStaysOpen(t *testing.T) {
	m := newTestModel(t, []string{"Firefly", "Firefox"})

	eng := m.engine
	eng.SetInput("fire", time.Now())
	require.Equal(t, "Firefly", eng.Results()[0].Label)

	// Select Firefox and try to launch it; the empty Exec line fails.
	eng.MoveSelection(1)
	_, cmd := m.activate()

	// A failed start keeps the launcher open so the status is visible.
	require.Nil(t, cmd)

	// And it never reaches the recent list: the tie-break order between
	// the two prefix matches is unchanged.
	eng.SetInput("fire", time.Now())
	require.Equal(t, "Firefly", eng.Results()[0].Label)
}

func TestStartupStatusVisible(t *testing.T) {
	m := newTestModel(t, []string{"Firefox"})

	m.SetStatus("indexed 1 applications")
	require.Contains(t, m.View(), "indexed 1 applications")
}
