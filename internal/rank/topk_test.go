package rank

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"flingr/internal/domain"
	"flingr/internal/score"
)

func candidate(label string) domain.Candidate {
	return domain.Candidate{Kind: domain.KindApp, Label: label}
}

func TestTopKMatchesFullSort(t *testing.T) {
	// The selector's output must equal the K best items of a full sort,
	// including tie resolution by case-insensitive label.
	rng := rand.New(rand.NewSource(42))

	for _, k := range []int{1, 5, 10} {
		var all []domain.ScoredCandidate
		selector := NewSelector(k)

		for i := 0; i < 500; i++ {
			sc := rng.Intn(50) // plenty of ties
			c := candidate(fmt.Sprintf("item-%03d", i))
			all = append(all, domain.ScoredCandidate{Score: sc, Candidate: c})
			selector.Add(sc, c)
		}

		sort.Slice(all, func(i, j int) bool { return all[i].Less(all[j]) })
		want := all[:k]

		require.Equal(t, want, selector.Results(), "k=%d", k)
	}
}

func TestTopKOrdering(t *testing.T) {
	selector := NewSelector(3)
	selector.Add(10, candidate("bravo"))
	selector.Add(30, candidate("alpha"))
	selector.Add(10, candidate("Alpha2"))
	selector.Add(20, candidate("charlie"))

	got := selector.Results()
	require.Len(t, got, 3)
	require.Equal(t, "alpha", got[0].Candidate.Label)
	require.Equal(t, "charlie", got[1].Candidate.Label)
	// Tie at score 10 resolved by case-insensitive label.
	require.Equal(t, "Alpha2", got[2].Candidate.Label)
}

func TestTopKExcludesSentinel(t *testing.T) {
	selector := NewSelector(5)
	selector.Add(score.NoMatch, candidate("excluded"))
	selector.Add(1, candidate("kept"))

	got := selector.Results()
	require.Len(t, got, 1)
	require.Equal(t, "kept", got[0].Candidate.Label)
}

func TestTopKBoundedMemory(t *testing.T) {
	// The heap never grows past its bound even on huge streams, and the
	// best items still survive eviction.
	selector := NewSelector(10)
	for i := 0; i < 10000; i++ {
		selector.Add(i, candidate(fmt.Sprintf("f%05d", i)))
	}
	require.LessOrEqual(t, selector.Len(), heapBoundFloor)

	got := selector.Results()
	require.Len(t, got, 10)
	require.Equal(t, 9999, got[0].Score)
	require.Equal(t, 9990, got[9].Score)
}

func TestTopKFewerThanK(t *testing.T) {
	selector := NewSelector(10)
	selector.Add(1, candidate("only"))

	got := selector.Results()
	require.Len(t, got, 1)
}
