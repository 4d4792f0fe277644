package typing

import (
	"github.com/Postur/numba/internal/numtypes"
)

// FunctionTemplate resolves a call's actual argument types to a concrete
// Signature, or reports no match. Apply never receives keyword arguments —
// the Go signature simply has no slot for them (SPEC_FULL.md section E);
// callers that still need to reject kwargs explicitly use RejectKwargs.
//
// Both ConcreteTemplate and AbstractTemplate implement numtypes.Template,
// so the result of resolving an attribute to a method
// (numtypes.Method{Template: ...}) can carry either kind.
type FunctionTemplate interface {
	numtypes.Template
	Apply(ctx *Context, args []numtypes.Type) (*Signature, error)
}

// ConcreteTemplate resolves against a fixed, enumerated list of cases
// (spec.md section 4.3).
type ConcreteTemplate struct {
	OpKey string
	Cases []Signature
}

func (t *ConcreteTemplate) Key() string { return t.OpKey }

func (t *ConcreteTemplate) Apply(ctx *Context, args []numtypes.Type) (*Signature, error) {
	return resolve(ctx, t.OpKey, args, t.Cases)
}

// GenericFunc computes a single candidate signature from the actual
// argument types. Returning (nil, nil) means "I don't recognize this
// shape" — the abstract template has no opinion and the caller should try
// another template registered under the same key. A non-nil error means
// the shape was recognized but invalid, and short-circuits resolution
// entirely (SPEC_FULL.md section D.1's InternalInvariant, or a propagated
// oracle failure).
type GenericFunc func(ctx *Context, args []numtypes.Type) (*Signature, error)

// AbstractTemplate computes a candidate signature from the actual argument
// types via Generic, then runs that single candidate through the same
// resolver ConcreteTemplate uses — which also validates each formal against
// each actual, since Generic's job is only to guess a plausible shape, not
// to guarantee convertibility (spec.md section 4.3).
type AbstractTemplate struct {
	OpKey   string
	Generic GenericFunc
}

func (t *AbstractTemplate) Key() string { return t.OpKey }

func (t *AbstractTemplate) Apply(ctx *Context, args []numtypes.Type) (*Signature, error) {
	sig, err := t.Generic(ctx, args)
	if err != nil {
		return nil, err
	}
	if sig == nil {
		return nil, nil
	}
	return resolve(ctx, t.OpKey, args, []Signature{*sig})
}

// MethodFactory builds a per-receiver FunctionTemplate, used by attribute
// resolution to bind a method to its receiver (spec.md section 4.4).
type MethodFactory func(ctx *Context, recvr numtypes.Type) FunctionTemplate

// BoundMethodTemplate adapts a MethodFactory so the same method can also be
// invoked unbound, with the receiver taken from the first positional
// argument instead of being baked in by an attribute lookup
// (SPEC_FULL.md section D.3, e.g. `Array.flatten(arr)` vs `arr.flatten()`).
type BoundMethodTemplate struct {
	OpKey   string
	Factory MethodFactory
}

func (t *BoundMethodTemplate) Key() string { return t.OpKey }

func (t *BoundMethodTemplate) Apply(ctx *Context, args []numtypes.Type) (*Signature, error) {
	if len(args) == 0 {
		return nil, &InternalInvariant{Detail: t.OpKey + ": unbound call requires a receiver argument"}
	}
	recvr := args[0]
	bound := t.Factory(ctx, recvr)
	sig, err := bound.Apply(ctx, args[1:])
	if err != nil || sig == nil {
		return sig, err
	}
	result := sig.WithRecvr(recvr)
	return &result, nil
}
