// Package model defines the introspection contract between a model graph and
// the strategy sampler, plus the metadata views derived from it.
//
// The sampler never touches tensor data: its decisions depend only on the
// parameter names, shapes, dtypes, gradient kinds and consumer op types this
// package surfaces. Any graph representation can participate by implementing
// Graph; NewParam builds a static Parameter for callers that already know
// their parameter list, and Params turns a slice of them into a Graph.
package model

import (
	"slices"

	"github.com/gomlx/distplan/types"
	"github.com/gomlx/distplan/types/shapes"
)

//go:generate go tool enumer -type=GradKind -trimprefix=Grad -output=gen_gradkind_enumer.go model.go

// GradKind distinguishes how a parameter's gradient materializes during
// training: as a dense tensor or as sparse index/value updates.
type GradKind int

const (
	// GradDense gradients are plain tensors with the parameter's shape.
	GradDense GradKind = iota

	// GradSparse gradients carry updates only for the rows gathered in the
	// forward pass, as with embedding tables.
	GradSparse
)

// EmbeddingOpTypes are the consumer op types that mark a parameter as an
// embedding table. Embedding tables partition only along the leading axis.
var EmbeddingOpTypes = types.SetWith("ResourceGather", "Gather")

// Parameter is one trainable parameter of a model graph.
type Parameter interface {
	// Name uniquely identifies the parameter within its graph.
	Name() string

	// Shape of the parameter value.
	Shape() shapes.Shape

	// GradKind reports whether the parameter receives dense or sparse
	// gradient updates.
	GradKind() GradKind

	// Consumers lists the op types that read the parameter in the forward
	// graph. Used to recognize embedding lookups.
	Consumers() []string
}

// Graph is the introspection surface the sampler needs from a model.
type Graph interface {
	// TrainableParameters returns the parameters in a stable order. The
	// strategy document lists its nodes in this order.
	TrainableParameters() []Parameter
}

// Param is a static Parameter implementation.
type Param struct {
	name      string
	shape     shapes.Shape
	kind      GradKind
	consumers []string
}

// NewParam returns a static Parameter with the given metadata, for callers
// without a live graph to introspect.
func NewParam(name string, shape shapes.Shape, kind GradKind, consumers ...string) *Param {
	return &Param{name: name, shape: shape, kind: kind, consumers: slices.Clone(consumers)}
}

// Name implements Parameter.
func (p *Param) Name() string { return p.name }

// Shape implements Parameter.
func (p *Param) Shape() shapes.Shape { return p.shape }

// GradKind implements Parameter.
func (p *Param) GradKind() GradKind { return p.kind }

// Consumers implements Parameter.
func (p *Param) Consumers() []string { return slices.Clone(p.consumers) }

// Params is a Graph over a fixed list of parameters.
type Params []Parameter

// TrainableParameters implements Graph.
func (ps Params) TrainableParameters() []Parameter { return ps }
