package eval

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	errorsmod "cosmossdk.io/errors"

	"github.com/oxygene76/vecmath/pkg/vecmath"
)

var brackets = map[byte]byte{'(': ')', '[': ']', '{': '}'}

// ParseVec2 parses a vector literal. Accepted forms are "x,y", "x y",
// "(x, y)", "[x y]" and "{x,y}"; components use ParseScalar syntax.
func ParseVec2(s string) (vecmath.Vec2, error) {
	body := strings.TrimSpace(s)
	if len(body) >= 2 {
		if closing, ok := brackets[body[0]]; ok {
			if body[len(body)-1] != closing {
				return vecmath.Vec2{}, errorsmod.Wrapf(ErrInvalidVector, "unbalanced brackets in %q", s)
			}
			body = body[1 : len(body)-1]
		}
	}

	fields := strings.FieldsFunc(body, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields) != 2 || strings.Count(body, ",") > 1 {
		return vecmath.Vec2{}, errorsmod.Wrapf(ErrInvalidVector, "%q must have exactly two components", s)
	}

	x, err := ParseScalar(fields[0])
	if err != nil {
		return vecmath.Vec2{}, errorsmod.Wrapf(ErrInvalidVector, "x component of %q: %s", s, err)
	}
	y, err := ParseScalar(fields[1])
	if err != nil {
		return vecmath.Vec2{}, errorsmod.Wrapf(ErrInvalidVector, "y component of %q: %s", s, err)
	}

	return vecmath.New(x, y), nil
}

// ParseScalar parses a real number. Besides plain floats it accepts
// multiples and fractions of pi such as "pi", "-pi/2" and "3pi/4".
func ParseScalar(s string) (float64, error) {
	text := strings.ToLower(strings.TrimSpace(s))
	if text == "" {
		return 0, errorsmod.Wrap(ErrInvalidScalar, "empty value")
	}

	if i := strings.Index(text, "pi"); i >= 0 {
		return parsePiMultiple(text, i, s)
	}

	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, errorsmod.Wrapf(ErrInvalidScalar, "%q", s)
	}
	return f, nil
}

// parsePiMultiple handles [sign][coefficient]pi[/divisor]
func parsePiMultiple(text string, at int, orig string) (float64, error) {
	coef := 1.0
	switch prefix := text[:at]; prefix {
	case "":
	case "-":
		coef = -1
	case "+":
	default:
		c, err := strconv.ParseFloat(strings.TrimSuffix(prefix, "*"), 64)
		if err != nil {
			return 0, errorsmod.Wrapf(ErrInvalidScalar, "bad coefficient in %q", orig)
		}
		coef = c
	}

	div := 1.0
	if rest := text[at+2:]; rest != "" {
		if !strings.HasPrefix(rest, "/") {
			return 0, errorsmod.Wrapf(ErrInvalidScalar, "%q", orig)
		}
		d, err := strconv.ParseFloat(rest[1:], 64)
		if err != nil || d == 0 {
			return 0, errorsmod.Wrapf(ErrInvalidScalar, "bad divisor in %q", orig)
		}
		div = d
	}

	return coef * math.Pi / div, nil
}
