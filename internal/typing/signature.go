// Package typing implements spec.md's overload-resolution core: Signature,
// Rating, the FunctionTemplate/AttributeTemplate hierarchy, and the shared
// resolver (section 4.3's five-step algorithm). It has no dependency on the
// registry or catalogue packages; those build on top of it.
package typing

import (
	"fmt"
	"strings"

	"github.com/Postur/numba/internal/numtypes"
)

// Signature is an immutable calling contract: a return type, an ordered
// argument list, and an optional receiver marking it as a bound method.
// Equality keys off (Args, Recvr) and hashing off Args, never ReturnType — two
// overloads with identical argument patterns are duplicates regardless of
// what they return (spec.md section 4.1).
type Signature struct {
	ReturnType numtypes.Type
	Args       []numtypes.Type
	Recvr      numtypes.Type // nil unless this is a bound method

	// label overrides Describe()'s rendering for diagnostics only; it never
	// participates in Equal or hashing.
	label string
}

// NewSignature constructs a free-function signature.
func NewSignature(returnType numtypes.Type, args ...numtypes.Type) Signature {
	return Signature{ReturnType: returnType, Args: args}
}

// WithRecvr returns a copy of s bound to recvr.
func (s Signature) WithRecvr(recvr numtypes.Type) Signature {
	s.Recvr = recvr
	return s
}

// WithLabel attaches a human-presentable rendering used only by Describe;
// it mirrors the original implementation's optional pysig (SPEC_FULL.md D.2).
func (s Signature) WithLabel(label string) Signature {
	s.label = label
	return s
}

// IsMethod reports whether this signature describes a bound method.
func (s Signature) IsMethod() bool { return s.Recvr != nil }

// Equal implements spec.md section 4.1's equality: args and recvr only.
func (s Signature) Equal(other Signature) bool {
	if len(s.Args) != len(other.Args) {
		return false
	}
	for i, a := range s.Args {
		if !a.Equal(other.Args[i]) {
			return false
		}
	}
	switch {
	case s.Recvr == nil && other.Recvr == nil:
		return true
	case s.Recvr == nil || other.Recvr == nil:
		return false
	default:
		return s.Recvr.Equal(other.Recvr)
	}
}

// argsHashKey is the hash basis spec.md section 4.1 prescribes: derived
// from Args only. Collisions (two signatures with the same args but
// different recvr) are resolved by Equal, exactly as a Python dict keyed on
// __hash__/__eq__ would resolve them.
func (s Signature) argsHashKey() string {
	parts := make([]string, len(s.Args))
	for i, a := range s.Args {
		parts[i] = a.String()
	}
	return strings.Join(parts, ",")
}

func (s Signature) String() string {
	return fmt.Sprintf("%s -> %s", numtypes.TypeListString(s.Args), s.ReturnType)
}

// Describe renders the signature for error messages and the diagnostic
// CLI, including the receiver when present.
func (s Signature) Describe() string {
	if s.label != "" {
		return s.label
	}
	if s.Recvr != nil {
		return fmt.Sprintf("(%s).%s", s.Recvr, s.String())
	}
	return s.String()
}

// SignatureSet is a set of signatures keyed the way spec.md's testable
// property 5 describes: two signatures with identical (Args, Recvr) but
// different ReturnType collide. It exists to make that property directly
// testable with ordinary Go code (Go maps can't key on an interface-bearing
// struct via deep equality the way a Python frozenset can).
type SignatureSet struct {
	buckets map[string][]Signature
}

// NewSignatureSet returns an empty SignatureSet.
func NewSignatureSet() *SignatureSet {
	return &SignatureSet{buckets: make(map[string][]Signature)}
}

// Add inserts sig, returning false if an equal signature (per Equal, i.e.
// ignoring ReturnType) was already present.
func (s *SignatureSet) Add(sig Signature) bool {
	key := sig.argsHashKey()
	for _, existing := range s.buckets[key] {
		if existing.Equal(sig) {
			return false
		}
	}
	s.buckets[key] = append(s.buckets[key], sig)
	return true
}

// Len returns the number of distinct (Args, Recvr) patterns stored.
func (s *SignatureSet) Len() int {
	n := 0
	for _, b := range s.buckets {
		n += len(b)
	}
	return n
}
