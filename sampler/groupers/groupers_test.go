package groupers

import (
	"math/rand"
	"testing"

	"github.com/gomlx/distplan"
	"github.com/gomlx/exceptions"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	require.Equal(t, []string{"by_chunk", "christy", "ordered_balanced", "random"}, Names())

	fn, err := ByName("by_chunk")
	require.NoError(t, err)
	require.NotNil(t, fn)

	_, err = ByName("does-not-exist")
	require.ErrorIs(t, err, distplan.ErrConfig)
	require.Contains(t, err.Error(), "by_chunk")
}

func TestRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(0))
	items := []Item{{"a", 1}, {"b", 2}, {"c", 3}}
	for i := 0; i < 100; i++ {
		groups := Random(rng, items, 2)
		require.Len(t, groups, 3)
		for _, g := range groups {
			require.GreaterOrEqual(t, g, 0)
			require.Less(t, g, 2)
		}
	}
}

func TestByChunk(t *testing.T) {
	rng := rand.New(rand.NewSource(0))
	items := []Item{{"a", 1}, {"b", 1}, {"c", 1}, {"d", 1}, {"e", 1}}

	// Five records in chunks of two: the trailing chunk is short.
	require.Equal(t, []int{0, 0, 1, 1, 2}, ByChunk(rng, items, 2))

	// A chunk size beyond the pool fuses everything.
	require.Equal(t, []int{0, 0, 0, 0, 0}, ByChunk(rng, items, 10))

	// Chunk size one isolates every record.
	require.Equal(t, []int{0, 1, 2, 3, 4}, ByChunk(rng, items, 1))

	// The rejection names the chunk size, not just group counts.
	err := exceptions.TryCatch[error](func() { ByChunk(rng, items, 0) })
	require.ErrorIs(t, err, distplan.ErrConfig)
	require.Contains(t, err.Error(), "chunk size")
}

func TestChristy(t *testing.T) {
	rng := rand.New(rand.NewSource(0))

	groups := Christy(rng, []Item{{"a", 4}, {"b", 4}, {"c", 4}, {"d", 4}}, 2)
	require.Equal(t, []int{0, 0, 1, 1}, groups)

	// A heavy head fills the first group's budget on its own.
	groups = Christy(rng, []Item{{"a", 5}, {"b", 1}, {"c", 1}, {"d", 1}}, 2)
	require.Equal(t, []int{0, 1, 1, 1}, groups)
}

func TestOrderedBalanced(t *testing.T) {
	rng := rand.New(rand.NewSource(0))

	// The head claims a group of its own, the tail balances into the other.
	groups := OrderedBalanced(rng, []Item{{"a", 10}, {"b", 1}, {"c", 1}}, 2)
	require.Equal(t, []int{0, 1, 1}, groups)

	// Ties keep document order and spread over the lightest groups.
	groups = OrderedBalanced(rng, []Item{{"a", 2}, {"b", 2}, {"c", 2}}, 3)
	require.Equal(t, []int{0, 1, 2}, groups)
}
