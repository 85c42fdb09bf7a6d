package eval_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oxygene76/vecmath/pkg/eval"
	"github.com/oxygene76/vecmath/pkg/vecmath"
)

func TestParseVec2(t *testing.T) {
	tests := []struct {
		in     string
		expect vecmath.Vec2
	}{
		{"1,2", vecmath.New(1, 2)},
		{" 1 , 2 ", vecmath.New(1, 2)},
		{"1 2", vecmath.New(1, 2)},
		{"(1, -2)", vecmath.New(1, -2)},
		{"[-1.5 2e3]", vecmath.New(-1.5, 2000)},
		{"{0,0}", vecmath.New(0, 0)},
		{"(pi, -pi/2)", vecmath.New(math.Pi, -math.Pi/2)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := eval.ParseVec2(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.expect, got)
		})
	}
}

func TestParseVec2Invalid(t *testing.T) {
	for _, in := range []string{"", "1", "1,2,3", "1,,2", "(1,2", "[1,2)", "a,b", "1,x"} {
		t.Run(in, func(t *testing.T) {
			_, err := eval.ParseVec2(in)
			require.ErrorIs(t, err, eval.ErrInvalidVector)
		})
	}
}

func TestParseScalar(t *testing.T) {
	tests := []struct {
		in     string
		expect float64
	}{
		{"2.5", 2.5},
		{" -3 ", -3},
		{"1e-3", 0.001},
		{"pi", math.Pi},
		{"PI", math.Pi},
		{"-pi", -math.Pi},
		{"pi/2", math.Pi / 2},
		{"-pi/4", -math.Pi / 4},
		{"3pi/4", 3 * math.Pi / 4},
		{"2*pi", 2 * math.Pi},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := eval.ParseScalar(tt.in)
			require.NoError(t, err)
			require.InDelta(t, tt.expect, got, 1e-15)
		})
	}
}

func TestParseScalarInvalid(t *testing.T) {
	for _, in := range []string{"", "  ", "abc", "pi/0", "pix", "xpi", "pi/", "1.2.3"} {
		t.Run(in, func(t *testing.T) {
			_, err := eval.ParseScalar(in)
			require.ErrorIs(t, err, eval.ErrInvalidScalar)
		})
	}
}
