package typing

import (
	"fmt"
	"strings"

	"github.com/Postur/numba/internal/numtypes"
)

// AmbiguousOverload is raised when two or more candidates tie for the best
// score. Resolution never picks one arbitrarily; the caller sees every
// tied candidate (spec.md section 4.6).
type AmbiguousOverload struct {
	Key        string
	Args       []numtypes.Type
	Candidates []Signature
}

func (e *AmbiguousOverload) Error() string {
	rendered := make([]string, len(e.Candidates))
	for i, c := range e.Candidates {
		rendered[i] = c.Describe()
	}
	return fmt.Sprintf("ambiguous overloading for %s%s\n%s",
		e.Key, numtypes.TypeListString(e.Args), strings.Join(rendered, "\n"))
}

// UnknownAttribute is raised when no handler recognises the requested
// attribute name for the owning type (spec.md section 4.4).
type UnknownAttribute struct {
	Owner numtypes.Type
	Name  string
}

func (e *UnknownAttribute) Error() string {
	return fmt.Sprintf("%s has no attribute %q", e.Owner, e.Name)
}

// UnsupportedKwargs is raised when a call site supplies keyword arguments;
// the core has no representation for them at all (SPEC_FULL.md section E).
type UnsupportedKwargs struct {
	Key string
}

func (e *UnsupportedKwargs) Error() string {
	return fmt.Sprintf("%s: keyword arguments are not supported", e.Key)
}

// InternalInvariant is raised when the oracle returns an unrecognised
// verdict, or a template reaches a branch the data model guarantees is
// unreachable (spec.md section 7).
type InternalInvariant struct {
	Detail string
}

func (e *InternalInvariant) Error() string {
	return fmt.Sprintf("internal invariant violated: %s", e.Detail)
}

// RejectKwargs is the explicit compiler-internal check a call site makes
// before invoking a template, for embedders whose bytecode still carries a
// keyword-argument map through to this layer. A nil or empty map is always
// accepted; resolve_function/resolve_attribute themselves take no kwargs
// parameter at all, so this is the only place UnsupportedKwargs can occur.
func RejectKwargs(key string, kwargs map[string]numtypes.Type) error {
	if len(kwargs) == 0 {
		return nil
	}
	return &UnsupportedKwargs{Key: key}
}
