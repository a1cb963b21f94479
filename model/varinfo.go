package model

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/gomlx/distplan/types/shapes"
	"github.com/gomlx/gopjrt/dtypes"
)

// VarInfo is the metadata view of one trainable parameter: the handful of
// facts the sampling stages consult. It carries no tensor data.
type VarInfo struct {
	// Name of the underlying parameter.
	Name string

	// Kind of gradient updates the parameter receives.
	Kind GradKind

	// IsEmbedding marks parameters read by an embedding-gather op (see
	// EmbeddingOpTypes).
	IsEmbedding bool

	// Shape of the parameter value.
	Shape shapes.Shape
}

// NewVarInfo builds the metadata view of one parameter.
func NewVarInfo(p Parameter) *VarInfo {
	info := &VarInfo{
		Name:  p.Name(),
		Kind:  p.GradKind(),
		Shape: p.Shape(),
	}
	for _, op := range p.Consumers() {
		if EmbeddingOpTypes.Has(op) {
			info.IsEmbedding = true
			break
		}
	}
	return info
}

// IsSparse reports whether the parameter receives sparse gradient updates.
func (v *VarInfo) IsSparse() bool { return v.Kind == GradSparse }

// DType of the parameter value.
func (v *VarInfo) DType() dtypes.DType { return v.Shape.DType }

// ByteSize returns the in-memory size of the parameter value, in bytes.
func (v *VarInfo) ByteSize() float64 { return float64(v.Shape.Memory()) }

// PartitionableAxes returns the axes the parameter may legitimately be
// partitioned along: none for scalars, only the leading axis for sparse or
// embedding parameters, otherwise every axis with more than one element.
func (v *VarInfo) PartitionableAxes() []int {
	if v.Shape.IsScalar() {
		return nil
	}
	if v.IsSparse() || v.IsEmbedding {
		return []int{0}
	}
	axes := make([]int, 0, v.Shape.Rank())
	for axis, dim := range v.Shape.Dimensions {
		if dim > 1 {
			axes = append(axes, axis)
		}
	}
	return axes
}

// String implements fmt.Stringer.
func (v *VarInfo) String() string {
	desc := fmt.Sprintf("%s: %s, %s, %s gradients", v.Name, v.Shape, humanize.Bytes(uint64(v.ByteSize())), v.Kind)
	if v.IsEmbedding {
		desc += ", embedding"
	}
	return desc
}
