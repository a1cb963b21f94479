package distplan

import "errors"

// Error kinds shared by all distplan packages. Raise sites wrap these with
// github.com/pkg/errors, so callers can discriminate with errors.Is.
var (
	// ErrConfig reports an invalid, missing or unsatisfiable sampler
	// configuration: an empty strategy space, an unrecognized balancer or
	// merge-scheme name, or shard-count bounds that admit no value.
	ErrConfig = errors.New("invalid sampler configuration")

	// ErrInvariant reports an internal inconsistency that indicates a bug in
	// the caller or in the sampler itself, such as requesting more shards of
	// a parameter than its partition axis has elements, or resolving a
	// non-positive collective group count.
	ErrInvariant = errors.New("strategy invariant violation")
)
