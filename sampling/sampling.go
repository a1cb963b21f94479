// Package sampling provides the uniform randomness primitives shared by the
// strategy sampler stages.
//
// Every function takes the *rand.Rand to draw from as its first argument, so
// callers control seeding and reproducibility. Functions panic wrapping
// distplan.ErrConfig when asked to draw from an empty or inverted domain; the
// sampler converts those panics to errors at its public boundary.
package sampling

import (
	"math/rand"

	"github.com/gomlx/distplan"
	"github.com/pkg/errors"
)

// Choice returns one element of candidates, uniformly at random.
//
// It panics wrapping distplan.ErrConfig on an empty candidates slice.
func Choice[T any](rng *rand.Rand, candidates []T) T {
	if len(candidates) == 0 {
		panic(errors.Wrap(distplan.ErrConfig, "Choice over no candidates"))
	}
	return candidates[rng.Intn(len(candidates))]
}

// Bernoulli returns true with the given probability. Thresholds outside
// [0, 1] are clamped, so 0 and below always return false, 1 and above always
// return true.
func Bernoulli(rng *rand.Rand, threshold float64) bool {
	if threshold <= 0 {
		return false
	}
	if threshold >= 1 {
		return true
	}
	return rng.Float64() < threshold
}

// Between returns a uniform integer in the inclusive range [lo, hi].
//
// It panics wrapping distplan.ErrConfig when the range is empty (lo > hi).
func Between(rng *rand.Rand, lo, hi int) int {
	if lo > hi {
		panic(errors.Wrapf(distplan.ErrConfig, "Between(%d, %d): empty range", lo, hi))
	}
	return lo + rng.Intn(hi-lo+1)
}

// Partition assigns each of n items one of k buckets, independently and
// uniformly, like throwing n balls into k bins. Bucket sizes are
// intentionally unbalanced, and buckets may come out empty.
//
// It panics wrapping distplan.ErrConfig when k < 1 or n < 0.
func Partition(rng *rand.Rand, k, n int) []int {
	if k < 1 || n < 0 {
		panic(errors.Wrapf(distplan.ErrConfig, "Partition(k=%d, n=%d): need k >= 1 and n >= 0", k, n))
	}
	assignment := make([]int, n)
	for i := range assignment {
		assignment[i] = rng.Intn(k)
	}
	return assignment
}
