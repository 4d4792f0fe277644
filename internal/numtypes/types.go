// Package numtypes is the concrete Type collaborator described in spec
// section 3 of the typing core: an opaque identity plus enough structure to
// test is-array / is-uniform-tuple, extract dtype/ndim/layout, and compose
// new types (UniTuple, Array, Method, Function, Module). The resolution
// algorithm in internal/typing never constructs a primitive type itself; it
// only composes the constructors this package exports.
package numtypes

import (
	"fmt"
	"strings"
)

// Type is the minimal contract the overload-resolution core needs from a
// type. Equal must agree with String in the sense that two types with the
// same String() are the same type throughout this module; the reference
// types below all satisfy that.
type Type interface {
	String() string
	Equal(other Type) bool
}

// Template is the minimal contract a function template must satisfy to be
// carried inside a Method or Function value. internal/typing's templates
// implement this; numtypes never needs anything more than the op key, which
// keeps this package free of any dependency on the resolution logic.
type Template interface {
	Key() string
}

// Basic is a named, structureless scalar type: the members of the numeric
// tower, plus the handful of fixed singleton types the catalogue needs
// (len_type, abs_type, slice_type, print_type, range_type, the slice and
// range-state/iter families, and the unit type).
type Basic struct {
	Name string
}

func (b Basic) String() string { return b.Name }

func (b Basic) Equal(other Type) bool {
	o, ok := other.(Basic)
	return ok && o.Name == b.Name
}

// The numeric tower.
var (
	Uint8   = Basic{Name: "uint8"}
	Uint16  = Basic{Name: "uint16"}
	Uint32  = Basic{Name: "uint32"}
	Uint64  = Basic{Name: "uint64"}
	Int8    = Basic{Name: "int8"}
	Int16   = Basic{Name: "int16"}
	Int32   = Basic{Name: "int32"}
	Int64   = Basic{Name: "int64"}
	Float32 = Basic{Name: "float32"}
	Float64 = Basic{Name: "float64"}

	Complex64  = Basic{Name: "complex64"}
	Complex128 = Basic{Name: "complex128"}

	// Intp is the platform pointer-width integer used for indices, lengths
	// and tuple counts.
	Intp = Basic{Name: "intp"}

	Boolean = Basic{Name: "boolean"}
	None    = Basic{Name: "none"}
)

// Fixed operation-identity types the catalogue dispatches on. These exist
// purely so builtin_global-style entries (range/len/slice/abs/print) have a
// Type to point at; they carry no structure of their own.
var (
	LenType   = Basic{Name: "len_type"}
	AbsType   = Basic{Name: "abs_type"}
	SliceType = Basic{Name: "slice_type"}
	PrintType = Basic{Name: "print_type"}
	RangeType = Basic{Name: "range_type"}

	Slice2Type = Basic{Name: "slice2_type"}
	Slice3Type = Basic{Name: "slice3_type"}

	RangeState32Type = Basic{Name: "range_state32_type"}
	RangeState64Type = Basic{Name: "range_state64_type"}
	RangeIter32Type  = Basic{Name: "range_iter32_type"}
	RangeIter64Type  = Basic{Name: "range_iter64_type"}
)

// UnsignedDomain, SignedDomain, IntegerDomain, RealDomain, FloatDomain and
// ComplexDomain mirror the source catalogue's grouped type lists
// (types.unsigned_domain, types.signed_domain, ...). They're kept here
// rather than recomputed in internal/catalogue because they're properties
// of the tower itself, not of any one operator.
var (
	UnsignedDomain = []Type{Uint8, Uint16, Uint32, Uint64}
	SignedDomain   = []Type{Int8, Int16, Int32, Int64}
	IntegerDomain  = append(append([]Type{}, UnsignedDomain...), SignedDomain...)
	FloatDomain    = []Type{Float32, Float64}
	ComplexDomain  = []Type{Complex64, Complex128}
	RealDomain     = append(append([]Type{}, IntegerDomain...), FloatDomain...)
)

// Layout is an array's memory order: row-major (C), column-major (F), or
// arbitrary/unknown (A).
type Layout byte

const (
	LayoutC Layout = 'C'
	LayoutF Layout = 'F'
	LayoutA Layout = 'A'
)

func (l Layout) String() string { return string(l) }

// Array represents an N-dimensional array of a fixed element type (dtype),
// rank (ndim) and memory layout.
type Array struct {
	Dtype  Type
	NDim   int
	Layout Layout
}

func (a Array) String() string {
	return fmt.Sprintf("array(%s, %dd, %c)", a.Dtype, a.NDim, a.Layout)
}

func (a Array) Equal(other Type) bool {
	o, ok := other.(Array)
	return ok && o.NDim == a.NDim && o.Layout == a.Layout && o.Dtype.Equal(a.Dtype)
}

// WithLayout returns a copy of a with its layout downgraded, used by
// getitem over a slice index (§4.5: "layout downgraded to arbitrary, same
// rank").
func (a Array) WithLayout(l Layout) Array {
	a.Layout = l
	return a
}

// UniTuple is a tuple whose elements all share one type.
type UniTuple struct {
	Dtype Type
	Count int
}

func (t UniTuple) String() string { return fmt.Sprintf("UniTuple(%s x %d)", t.Dtype, t.Count) }

func (t UniTuple) Equal(other Type) bool {
	o, ok := other.(UniTuple)
	return ok && o.Count == t.Count && o.Dtype.Equal(t.Dtype)
}

// UniTupleIter is the iterator state produced by getiter over a UniTuple.
type UniTupleIter struct {
	Tuple UniTuple
}

func (t UniTupleIter) String() string { return fmt.Sprintf("UniTupleIter(%s)", t.Tuple) }

func (t UniTupleIter) Equal(other Type) bool {
	o, ok := other.(UniTupleIter)
	return ok && o.Tuple.Equal(t.Tuple)
}

// Method is a callable bound to a receiver: the result of resolving a
// method-shaped attribute (e.g. arr.flatten). The receiver travels with the
// template rather than being injected as a hidden leading argument; see
// SPEC_FULL.md section D.3.
type Method struct {
	Template Template
	Recvr    Type
}

func (m Method) String() string { return fmt.Sprintf("Method(%s, %s)", m.Template.Key(), m.Recvr) }

func (m Method) Equal(other Type) bool {
	o, ok := other.(Method)
	if !ok {
		return false
	}
	return o.Template.Key() == m.Template.Key() && o.Recvr.Equal(m.Recvr)
}

// Function is a callable free function, e.g. the type of math.fabs.
type Function struct {
	Template Template
}

func (f Function) String() string { return fmt.Sprintf("Function(%s)", f.Template.Key()) }

func (f Function) Equal(other Type) bool {
	o, ok := other.(Function)
	return ok && o.Template.Key() == f.Template.Key()
}

// Module is the type of a module value (e.g. the math module), identified
// by its import path or builtin name.
type Module struct {
	Identity string
}

func (m Module) String() string { return fmt.Sprintf("module(%s)", m.Identity) }

func (m Module) Equal(other Type) bool {
	o, ok := other.(Module)
	return ok && o.Identity == m.Identity
}

// IsArray reports whether t is an Array and returns it.
func IsArray(t Type) (Array, bool) {
	a, ok := t.(Array)
	return a, ok
}

// IsUniTuple reports whether t is a UniTuple and returns it.
func IsUniTuple(t Type) (UniTuple, bool) {
	u, ok := t.(UniTuple)
	return u, ok
}

// TypeListString renders a slice of types the way the catalogue's error
// messages and the diagnostic CLI want them: comma-joined, parenthesised.
func TypeListString(types []Type) string {
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = t.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
