// Package distplan generates distribution strategies for training a model
// across a cluster of devices.
//
// A strategy decides, for every trainable parameter of a model, (a) whether
// the parameter is partitioned into shards, (b) which synchronization
// protocol propagates its updates -- a centralized parameter-server (PS)
// scheme or a decentralized all-reduce scheme, (c) on which aggregation
// device each PS shard lives, and (d) how all-reduce shards are batched into
// collective-communication groups. The result is a declarative document
// (package strategy) consumed by a separate strategy-execution layer.
//
// The core entry point is sampler.New + Sampler.Build: a single-pass,
// heuristic-constrained random draw over the configured strategy space.
// It does not evaluate strategy quality -- callers that want good strategies
// sample repeatedly and measure.
//
// Package layout:
//
//   - types/shapes: parameter shape and dtype metadata math.
//   - cluster: the target cluster description (compute and aggregation devices).
//   - model: the parameter introspection contract and derived metadata views.
//   - strategy: the output document.
//   - sampling: uniform-choice, biased-boolean and random-partition primitives.
//   - sampler: the decision pipeline, with pluggable placement heuristics in
//     sampler/balancers and grouping heuristics in sampler/groupers.
package distplan
