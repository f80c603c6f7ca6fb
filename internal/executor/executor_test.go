package executor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"flingr/internal/domain"
	"flingr/internal/eventbus"
)

func TestStripFieldCodes(t *testing.T) {
	testCases := []struct {
		in, want string
	}{
		{"firefox %u", "firefox"},
		{"soffice --writer %U", "soffice --writer"},
		{"app %f %F %i %c %k", "app"},
		{"plain-command", "plain-command"},
		{"weird %%literal", "weird %literal"},
	}
	for _, tc := range testCases {
		require.Equal(t, tc.want, stripFieldCodes(tc.in), tc.in)
	}
}

func TestShellQuote(t *testing.T) {
	require.Equal(t, "'/home/u/file.txt'", shellQuote("/home/u/file.txt"))
	require.Equal(t, `'/home/u/it'\''s.txt'`, shellQuote("/home/u/it's.txt"))
}

func TestActivateReturnsErrorOnFailedStart(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()
	x := New("x-terminal-emulator -e", bus, nil)

	// An empty Exec line cannot be spawned; the failure must be returned
	// synchronously, not just published.
	err := x.Activate(domain.Result{Kind: domain.KindApp, Label: "Broken", Exec: ""})
	require.Error(t, err)
}

func TestActivatePlaceholderIsNoop(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()
	x := New("", bus, nil)

	require.NoError(t, x.Activate(domain.Result{Kind: domain.KindPlaceholder, Label: "No matches"}))
}
