package eval

import (
	"sort"
	"strings"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"

	"github.com/oxygene76/vecmath/internal/types"
	"github.com/oxygene76/vecmath/pkg/vecmath"
)

// Operation describes one named vector operation
type Operation struct {
	Name  string
	Short string
	// Args names the positional arguments; the last Optional of them may be
	// omitted.
	Args     []string
	Optional int

	run func(args []string) (*types.Result, error)
}

// Usage renders the argument list, optional arguments in brackets
func (o Operation) Usage() string {
	parts := make([]string, len(o.Args))
	for i, a := range o.Args {
		if i >= len(o.Args)-o.Optional {
			parts[i] = "[" + a + "]"
		} else {
			parts[i] = "<" + a + ">"
		}
	}
	return strings.TrimSpace(o.Name + " " + strings.Join(parts, " "))
}

func (o Operation) acceptsArgs(n int) bool {
	return n >= len(o.Args)-o.Optional && n <= len(o.Args)
}

// Evaluator maps operation names and textual arguments onto pkg/vecmath.
// It is safe for concurrent use.
type Evaluator struct {
	logger log.Logger
	ops    map[string]Operation
}

// NewEvaluator creates an Evaluator with every supported operation
func NewEvaluator(logger log.Logger) *Evaluator {
	if logger == nil {
		logger = log.NewNopLogger()
	}

	e := &Evaluator{
		logger: logger.With("module", ModuleName),
		ops:    make(map[string]Operation),
	}
	for _, op := range builtinOperations() {
		e.ops[op.Name] = op
	}
	return e
}

// Operations returns the supported operations sorted by name
func (e *Evaluator) Operations() []Operation {
	ops := make([]Operation, 0, len(e.ops))
	for _, op := range e.ops {
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i].Name < ops[j].Name })
	return ops
}

// Lookup returns the operation registered under name
func (e *Evaluator) Lookup(name string) (Operation, bool) {
	op, ok := e.ops[name]
	return op, ok
}

// Evaluate parses args and applies the named operation
func (e *Evaluator) Evaluate(name string, args []string) (*types.Result, error) {
	op, ok := e.ops[name]
	if !ok {
		return nil, errorsmod.Wrapf(ErrUnknownOperation, "%q", name)
	}
	if !op.acceptsArgs(len(args)) {
		return nil, errorsmod.Wrapf(ErrInvalidArgCount, "usage: %s, got %d", op.Usage(), len(args))
	}

	e.logger.Debug("evaluating operation", "op", name, "args", args)

	res, err := op.run(args)
	if err != nil {
		e.logger.Debug("operation failed", "op", name, "err", err)
		return nil, errorsmod.Wrapf(err, "%s", name)
	}

	e.logger.Debug("operation done", "op", name, "result", res.Text(-1))
	return res, nil
}

func builtinOperations() []Operation {
	return []Operation{
		vectorPair("add", "Sum of two vectors", vecmath.Add),
		vectorPair("subtract", "Difference of two vectors", vecmath.Subtract),
		vectorScaled("multiply", "Vector scaled by a scalar", "scalar", vecmath.Multiply),
		scalarPair("dot", "Dot product of two vectors", vecmath.Dot),
		scalarOf("magnitude", "Euclidean length of a vector", vecmath.Magnitude),
		vectorOf("normalize", "Unit vector in the same direction (zero stays zero)", vecmath.Normalize),
		scalarPair("distance", "Distance between two points", vecmath.Distance),
		{
			Name:  "reflect",
			Short: "Reflect a vector across a surface normal",
			Args:  []string{"incident", "normal"},
			run: func(args []string) (*types.Result, error) {
				return vectorPairRun("reflect", args, vecmath.Reflect)
			},
		},
		scalarOf("angle", "Angle from the positive x-axis in radians", vecmath.Angle),
		{
			Name:     "from-angle",
			Short:    "Vector from an angle in radians and an optional magnitude",
			Args:     []string{"angle", "magnitude"},
			Optional: 1,
			run:      fromAngle,
		},
		scalarPair("cross", "2D cross product", vecmath.Cross),
		{
			Name:  "lerp",
			Short: "Linear interpolation between two vectors",
			Args:  []string{"a", "b", "t"},
			run:   lerp,
		},
		vectorScaled("rotate", "Vector rotated by an angle in radians", "angle", vecmath.Rotate),
	}
}

func vectorPair(name, short string, fn func(a, b vecmath.Vec2) vecmath.Vec2) Operation {
	return Operation{
		Name:  name,
		Short: short,
		Args:  []string{"a", "b"},
		run: func(args []string) (*types.Result, error) {
			return vectorPairRun(name, args, fn)
		},
	}
}

func vectorPairRun(name string, args []string, fn func(a, b vecmath.Vec2) vecmath.Vec2) (*types.Result, error) {
	a, b, err := parsePair(args)
	if err != nil {
		return nil, err
	}
	return types.NewVectorResult(name, args, fn(a, b)), nil
}

func scalarPair(name, short string, fn func(a, b vecmath.Vec2) float64) Operation {
	return Operation{
		Name:  name,
		Short: short,
		Args:  []string{"a", "b"},
		run: func(args []string) (*types.Result, error) {
			a, b, err := parsePair(args)
			if err != nil {
				return nil, err
			}
			return types.NewScalarResult(name, args, fn(a, b)), nil
		},
	}
}

func vectorOf(name, short string, fn func(v vecmath.Vec2) vecmath.Vec2) Operation {
	return Operation{
		Name:  name,
		Short: short,
		Args:  []string{"v"},
		run: func(args []string) (*types.Result, error) {
			v, err := ParseVec2(args[0])
			if err != nil {
				return nil, err
			}
			return types.NewVectorResult(name, args, fn(v)), nil
		},
	}
}

func scalarOf(name, short string, fn func(v vecmath.Vec2) float64) Operation {
	return Operation{
		Name:  name,
		Short: short,
		Args:  []string{"v"},
		run: func(args []string) (*types.Result, error) {
			v, err := ParseVec2(args[0])
			if err != nil {
				return nil, err
			}
			return types.NewScalarResult(name, args, fn(v)), nil
		},
	}
}

func vectorScaled(name, short, argName string, fn func(v vecmath.Vec2, s float64) vecmath.Vec2) Operation {
	return Operation{
		Name:  name,
		Short: short,
		Args:  []string{"v", argName},
		run: func(args []string) (*types.Result, error) {
			v, err := ParseVec2(args[0])
			if err != nil {
				return nil, err
			}
			s, err := ParseScalar(args[1])
			if err != nil {
				return nil, err
			}
			return types.NewVectorResult(name, args, fn(v, s)), nil
		},
	}
}

func fromAngle(args []string) (*types.Result, error) {
	angle, err := ParseScalar(args[0])
	if err != nil {
		return nil, err
	}
	if len(args) == 1 {
		return types.NewVectorResult("from-angle", args, vecmath.FromAngle(angle)), nil
	}
	mag, err := ParseScalar(args[1])
	if err != nil {
		return nil, err
	}
	return types.NewVectorResult("from-angle", args, vecmath.FromAngleMagnitude(angle, mag)), nil
}

func lerp(args []string) (*types.Result, error) {
	a, b, err := parsePair(args[:2])
	if err != nil {
		return nil, err
	}
	t, err := ParseScalar(args[2])
	if err != nil {
		return nil, err
	}
	return types.NewVectorResult("lerp", args, vecmath.Lerp(a, b, t)), nil
}

func parsePair(args []string) (vecmath.Vec2, vecmath.Vec2, error) {
	a, err := ParseVec2(args[0])
	if err != nil {
		return vecmath.Vec2{}, vecmath.Vec2{}, err
	}
	b, err := ParseVec2(args[1])
	if err != nil {
		return vecmath.Vec2{}, vecmath.Vec2{}, err
	}
	return a, b, nil
}
