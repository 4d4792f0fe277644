package typing

import (
	"errors"
	"testing"

	"github.com/Postur/numba/internal/compat"
	"github.com/Postur/numba/internal/numtypes"
)

func binOpCases() []Signature {
	return []Signature{
		NewSignature(numtypes.Int32, numtypes.Int32, numtypes.Int32),
		NewSignature(numtypes.Int64, numtypes.Int64, numtypes.Int64),
		NewSignature(numtypes.Float64, numtypes.Float64, numtypes.Float64),
	}
}

// S1: "+" on (int32, int32) resolves to the exact int32 case.
func TestResolveExactMatch(t *testing.T) {
	ctx := NewContext(compat.NumericOracle{})
	tmpl := &ConcreteTemplate{OpKey: "+", Cases: binOpCases()}

	sig, err := tmpl.Apply(ctx, []numtypes.Type{numtypes.Int32, numtypes.Int32})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sig == nil {
		t.Fatalf("expected a match")
	}
	if !sig.ReturnType.Equal(numtypes.Int32) {
		t.Errorf("return type = %s, want int32", sig.ReturnType)
	}
}

// S2: "+" on (int32, int64) — the int32 case requires an unsafe int64->int32
// narrowing on the second argument, while the int64 case only needs a
// promote on the first. Fewer unsafe conversions wins outright.
func TestResolveRankPrefersFewerUnsafe(t *testing.T) {
	ctx := NewContext(compat.NumericOracle{})
	tmpl := &ConcreteTemplate{OpKey: "+", Cases: binOpCases()}

	sig, err := tmpl.Apply(ctx, []numtypes.Type{numtypes.Int32, numtypes.Int64})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sig == nil {
		t.Fatalf("expected a match")
	}
	if !sig.ReturnType.Equal(numtypes.Int64) {
		t.Errorf("return type = %s, want int64", sig.ReturnType)
	}
	if !sig.Args[0].Equal(numtypes.Int64) || !sig.Args[1].Equal(numtypes.Int64) {
		t.Errorf("args = %v, want (int64, int64)", sig.Args)
	}
}

func TestResolveArityGate(t *testing.T) {
	ctx := NewContext(compat.NumericOracle{})
	tmpl := &ConcreteTemplate{OpKey: "+", Cases: binOpCases()}

	sig, err := tmpl.Apply(ctx, []numtypes.Type{numtypes.Int32, numtypes.Int32, numtypes.Int32})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sig != nil {
		t.Errorf("a 3-arg call against 2-arg cases must not match, got %v", sig)
	}
}

func TestResolveNoMatchIsAbsentNotError(t *testing.T) {
	ctx := NewContext(compat.NumericOracle{})
	tmpl := &ConcreteTemplate{OpKey: "+", Cases: binOpCases()}

	sig, err := tmpl.Apply(ctx, []numtypes.Type{numtypes.Boolean, numtypes.Boolean})
	if err != nil {
		t.Fatalf("no-match must not be an error, got %v", err)
	}
	if sig != nil {
		t.Errorf("expected no match, got %v", sig)
	}
}

// S10: two cases with identical argument patterns and different return
// types are legal to register, but resolving against them is ambiguous.
func TestResolveAmbiguousOverload(t *testing.T) {
	ctx := NewContext(compat.NumericOracle{})
	tmpl := &ConcreteTemplate{
		OpKey: "+",
		Cases: []Signature{
			NewSignature(numtypes.Int32, numtypes.Int32, numtypes.Int32),
			NewSignature(numtypes.Int64, numtypes.Int32, numtypes.Int32),
		},
	}

	sig, err := tmpl.Apply(ctx, []numtypes.Type{numtypes.Int32, numtypes.Int32})
	if sig != nil {
		t.Errorf("expected no signature on ambiguity, got %v", sig)
	}
	var ambiguous *AmbiguousOverload
	if !errors.As(err, &ambiguous) {
		t.Fatalf("expected AmbiguousOverload, got %v", err)
	}
	if len(ambiguous.Candidates) != 2 {
		t.Errorf("expected 2 tied candidates, got %d", len(ambiguous.Candidates))
	}
}

type badOracle struct{}

func (badOracle) TypeCompatibility(actual, formal numtypes.Type) compat.Verdict {
	return compat.Verdict(99)
}

func TestResolveInternalInvariantOnUnrecognisedVerdict(t *testing.T) {
	ctx := NewContext(badOracle{})
	tmpl := &ConcreteTemplate{OpKey: "+", Cases: binOpCases()}

	_, err := tmpl.Apply(ctx, []numtypes.Type{numtypes.Int32, numtypes.Int32})
	var invariant *InternalInvariant
	if !errors.As(err, &invariant) {
		t.Fatalf("expected InternalInvariant, got %v", err)
	}
}

func TestAbstractTemplateGenericErrorShortCircuits(t *testing.T) {
	ctx := NewContext(compat.NumericOracle{})
	boom := errors.New("boom")
	tmpl := &AbstractTemplate{
		OpKey: "getitem",
		Generic: func(ctx *Context, args []numtypes.Type) (*Signature, error) {
			return nil, boom
		},
	}

	_, err := tmpl.Apply(ctx, []numtypes.Type{numtypes.Intp})
	if !errors.Is(err, boom) {
		t.Fatalf("expected the generic hook's error to propagate, got %v", err)
	}
}

func TestAbstractTemplateGenericNoMatch(t *testing.T) {
	ctx := NewContext(compat.NumericOracle{})
	tmpl := &AbstractTemplate{
		OpKey: "getitem",
		Generic: func(ctx *Context, args []numtypes.Type) (*Signature, error) {
			return nil, nil
		},
	}

	sig, err := tmpl.Apply(ctx, []numtypes.Type{numtypes.Intp})
	if err != nil || sig != nil {
		t.Fatalf("generic returning nil should mean no match, got (%v, %v)", sig, err)
	}
}

func TestBoundMethodTemplateUnboundCall(t *testing.T) {
	ctx := NewContext(compat.NumericOracle{})
	factory := func(ctx *Context, recvr numtypes.Type) FunctionTemplate {
		return &AbstractTemplate{
			OpKey: "array.flatten",
			Generic: func(ctx *Context, args []numtypes.Type) (*Signature, error) {
				arr := recvr.(numtypes.Array)
				if arr.Layout != numtypes.LayoutC {
					return nil, nil
				}
				sig := NewSignature(numtypes.Array{Dtype: arr.Dtype, NDim: 1, Layout: numtypes.LayoutC})
				return &sig, nil
			},
		}
	}
	tmpl := &BoundMethodTemplate{OpKey: "array.flatten", Factory: factory}

	arr := numtypes.Array{Dtype: numtypes.Int32, NDim: 3, Layout: numtypes.LayoutC}
	sig, err := tmpl.Apply(ctx, []numtypes.Type{arr})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sig == nil {
		t.Fatalf("expected a match")
	}
	if sig.Recvr == nil || !sig.Recvr.Equal(arr) {
		t.Errorf("expected recvr to be bound to the receiver argument, got %v", sig.Recvr)
	}
	want := numtypes.Array{Dtype: numtypes.Int32, NDim: 1, Layout: numtypes.LayoutC}
	if !sig.ReturnType.Equal(want) {
		t.Errorf("return type = %s, want %s", sig.ReturnType, want)
	}
}

func TestBoundMethodTemplateRequiresReceiver(t *testing.T) {
	ctx := NewContext(compat.NumericOracle{})
	tmpl := &BoundMethodTemplate{OpKey: "array.flatten", Factory: func(ctx *Context, recvr numtypes.Type) FunctionTemplate {
		t.Fatalf("factory should not be called with no receiver")
		return nil
	}}

	_, err := tmpl.Apply(ctx, nil)
	var invariant *InternalInvariant
	if !errors.As(err, &invariant) {
		t.Fatalf("expected InternalInvariant, got %v", err)
	}
}
