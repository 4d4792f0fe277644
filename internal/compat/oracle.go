// Package compat supplies the type-compatibility oracle that spec.md
// section 6 treats as an external collaborator, consumed through exactly
// one query (context.type_compatibility). internal/typing depends only on
// the Oracle interface; this package's NumericOracle is one reference
// implementation over the numtypes tower, modeled on the rank relations
// internal/typesystem/kind_checker.go uses for kind unification in the
// teacher repo (a total function over pairs, erroring only on structurally
// impossible input).
package compat

import "github.com/Postur/numba/internal/numtypes"

// Verdict is the oracle's answer for one (actual, formal) type pair.
type Verdict int

const (
	// Incompatible means the actual type cannot be used where formal is
	// required; the candidate signature using it is rejected outright.
	Incompatible Verdict = iota
	Exact
	Promote
	Safe
	Unsafe
)

func (v Verdict) String() string {
	switch v {
	case Exact:
		return "exact"
	case Promote:
		return "promote"
	case Safe:
		return "safe"
	case Unsafe:
		return "unsafe"
	default:
		return "incompatible"
	}
}

// Oracle scores how well an actual type fits a formal parameter type. It
// must be total over every pair of types the registry can produce: every
// branch must return one of the five Verdicts above, never panic.
type Oracle interface {
	TypeCompatibility(actual, formal numtypes.Type) Verdict
}

var widthRank = map[numtypes.Type]int{
	numtypes.Uint8: 1, numtypes.Uint16: 2, numtypes.Uint32: 3, numtypes.Uint64: 4,
	numtypes.Int8: 1, numtypes.Int16: 2, numtypes.Int32: 3, numtypes.Int64: 4,
	numtypes.Float32: 1, numtypes.Float64: 2,
	numtypes.Complex64: 1, numtypes.Complex128: 2,
}

func isUnsigned(t numtypes.Type) bool {
	for _, u := range numtypes.UnsignedDomain {
		if u.Equal(t) {
			return true
		}
	}
	return false
}

func isSigned(t numtypes.Type) bool {
	for _, s := range numtypes.SignedDomain {
		if s.Equal(t) {
			return true
		}
	}
	return false
}

func isFloat(t numtypes.Type) bool {
	for _, f := range numtypes.FloatDomain {
		if f.Equal(t) {
			return true
		}
	}
	return false
}

func isComplex(t numtypes.Type) bool {
	for _, c := range numtypes.ComplexDomain {
		if c.Equal(t) {
			return true
		}
	}
	return false
}

func isInteger(t numtypes.Type) bool {
	return isUnsigned(t) || isSigned(t)
}

// NumericOracle is the default oracle used by the builtin catalogue's
// bootstrap Context. It recognises the numeric tower, lets any integer
// convert into intp (the normalised index type getitem/setitem produce),
// and rates two uniform tuples of equal length by their element types.
// Every other type (arrays, methods, modules, boolean, none) is
// exact-or-incompatible.
type NumericOracle struct{}

func (NumericOracle) TypeCompatibility(actual, formal numtypes.Type) Verdict {
	if actual.Equal(formal) {
		return Exact
	}

	if at, ok := numtypes.IsUniTuple(actual); ok {
		ft, ok := numtypes.IsUniTuple(formal)
		if !ok || at.Count != ft.Count {
			return Incompatible
		}
		return NumericOracle{}.TypeCompatibility(at.Dtype, ft.Dtype)
	}

	switch {
	case isInteger(actual) && formal.Equal(numtypes.Intp):
		// intp is the platform's 64-bit signed integer: signed actuals
		// widen into it, unsigned ones cross the sign boundary.
		if isSigned(actual) {
			return Promote
		}
		return Unsafe
	case isUnsigned(actual) && isUnsigned(formal):
		return widenVerdict(actual, formal)
	case isSigned(actual) && isSigned(formal):
		return widenVerdict(actual, formal)
	case isFloat(actual) && isFloat(formal):
		return widenVerdict(actual, formal)
	case isComplex(actual) && isComplex(formal):
		return widenVerdict(actual, formal)
	case isInteger(actual) && isFloat(formal):
		// A signed/unsigned integer up to 32 bits round-trips through
		// float64 without loss; anything wider, or a float32 target, risks
		// losing precision.
		if formal.Equal(numtypes.Float64) && widthRank[actual] <= 3 {
			return Safe
		}
		return Unsafe
	case isFloat(actual) && isComplex(formal):
		return Safe
	case isInteger(actual) && isInteger(formal):
		// Crossing the signed/unsigned boundary always risks a sign
		// reinterpretation.
		return Unsafe
	case (isFloat(actual) || isInteger(actual)) && isComplex(formal):
		return Unsafe
	default:
		return Incompatible
	}
}

func widenVerdict(actual, formal numtypes.Type) Verdict {
	aw, aok := widthRank[actual]
	fw, fok := widthRank[formal]
	if !aok || !fok {
		return Incompatible
	}
	if aw <= fw {
		return Promote
	}
	return Unsafe
}
