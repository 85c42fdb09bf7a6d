package types

import (
	"github.com/oxygene76/vecmath/pkg/vecmath"
)

// Result represents the outcome of evaluating one vector operation.
// Exactly one of Vector and Scalar is set.
type Result struct {
	Operation string        `json:"operation" yaml:"operation"`
	Inputs    []string      `json:"inputs" yaml:"inputs"`
	Vector    *vecmath.Vec2 `json:"vector,omitempty" yaml:"vector,omitempty"`
	Scalar    *float64      `json:"scalar,omitempty" yaml:"scalar,omitempty"`
}

// NewVectorResult creates a Result holding a vector
func NewVectorResult(op string, inputs []string, v vecmath.Vec2) *Result {
	return &Result{Operation: op, Inputs: inputs, Vector: &v}
}

// NewScalarResult creates a Result holding a scalar
func NewScalarResult(op string, inputs []string, s float64) *Result {
	return &Result{Operation: op, Inputs: inputs, Scalar: &s}
}

// IsVector reports whether the result holds a vector
func (r *Result) IsVector() bool {
	return r.Vector != nil
}

// Text renders the value with prec digits after the decimal point (-1 for
// the shortest exact form)
func (r *Result) Text(prec int) string {
	if r.Vector != nil {
		return vecmath.Format(*r.Vector, prec)
	}
	if r.Scalar != nil {
		return vecmath.FormatScalar(*r.Scalar, prec)
	}
	return ""
}
