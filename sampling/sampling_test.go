package sampling

import (
	"math/rand"
	"testing"

	"github.com/gomlx/distplan"
	"github.com/gomlx/exceptions"
	"github.com/stretchr/testify/require"
)

func TestChoice(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	require.Equal(t, "only", Choice(rng, []string{"only"}))

	counts := make(map[int]int)
	for i := 0; i < 1000; i++ {
		counts[Choice(rng, []int{1, 2, 3})]++
	}
	require.Len(t, counts, 3)
	for v, n := range counts {
		require.Greater(t, n, 200, "value %d drawn only %d times", v, n)
	}

	err := exceptions.TryCatch[error](func() { Choice(rng, []int{}) })
	require.ErrorIs(t, err, distplan.ErrConfig)
}

func TestBernoulli(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		require.False(t, Bernoulli(rng, 0))
		require.True(t, Bernoulli(rng, 1))
		require.False(t, Bernoulli(rng, -0.5))
		require.True(t, Bernoulli(rng, 1.5))
	}

	trues := 0
	for i := 0; i < 10000; i++ {
		if Bernoulli(rng, 0.7) {
			trues++
		}
	}
	require.InDelta(t, 7000, trues, 300)
}

func TestBetween(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	require.Equal(t, 5, Between(rng, 5, 5))
	for i := 0; i < 1000; i++ {
		v := Between(rng, 2, 4)
		require.GreaterOrEqual(t, v, 2)
		require.LessOrEqual(t, v, 4)
	}

	err := exceptions.TryCatch[error](func() { Between(rng, 3, 2) })
	require.ErrorIs(t, err, distplan.ErrConfig)
}

func TestPartition(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	assignment := Partition(rng, 3, 100)
	require.Len(t, assignment, 100)
	for _, g := range assignment {
		require.GreaterOrEqual(t, g, 0)
		require.Less(t, g, 3)
	}

	require.Empty(t, Partition(rng, 2, 0))
	for _, g := range Partition(rng, 1, 10) {
		require.Zero(t, g)
	}

	err := exceptions.TryCatch[error](func() { Partition(rng, 0, 5) })
	require.ErrorIs(t, err, distplan.ErrConfig)
}
