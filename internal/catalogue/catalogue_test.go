package catalogue

import (
	"testing"

	"github.com/Postur/numba/internal/compat"
	"github.com/Postur/numba/internal/config"
	"github.com/Postur/numba/internal/numtypes"
	"github.com/Postur/numba/internal/registry"
	"github.com/Postur/numba/internal/typing"
)

func freshRegistry(t *testing.T) (*registry.Registry, *typing.Context) {
	t.Helper()
	Reset()
	reg := registry.New()
	oracle := compat.NumericOracle{}
	Bootstrap(reg, oracle, config.Flags{})
	return reg, NewContext(oracle)
}

// S3: "/" on (int32, int32) -> float64, args (int32, int32).
func TestTrueDivWidensToFloat64(t *testing.T) {
	reg, ctx := freshRegistry(t)
	sig, err := reg.ResolveFunction(ctx, "/", []numtypes.Type{numtypes.Int32, numtypes.Int32})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sig == nil || !sig.ReturnType.Equal(numtypes.Float64) {
		t.Fatalf("got %v, want return type float64", sig)
	}
}

// S4: "**" on (float64, int32) -> float64, args (float64, int32).
func TestPowFloatInt(t *testing.T) {
	reg, ctx := freshRegistry(t)
	sig, err := reg.ResolveFunction(ctx, "**", []numtypes.Type{numtypes.Float64, numtypes.Int32})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sig == nil || !sig.ReturnType.Equal(numtypes.Float64) {
		t.Fatalf("got %v, want return type float64", sig)
	}
	if !sig.Args[1].Equal(numtypes.Int32) {
		t.Errorf("second arg = %s, want int32", sig.Args[1])
	}
}

// S5: getitem on (Array(float32,2,'C'), UniTuple(int64,2)) -> float32, args
// (Array(float32,2,'C'), UniTuple(intp,2)).
func TestGetitemArrayByMatchingTuple(t *testing.T) {
	reg, ctx := freshRegistry(t)
	arr := numtypes.Array{Dtype: numtypes.Float32, NDim: 2, Layout: numtypes.LayoutC}
	idx := numtypes.UniTuple{Dtype: numtypes.Int64, Count: 2}
	sig, err := reg.ResolveFunction(ctx, "getitem", []numtypes.Type{arr, idx})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sig == nil || !sig.ReturnType.Equal(numtypes.Float32) {
		t.Fatalf("got %v, want return type float32", sig)
	}
	wantIdx := numtypes.UniTuple{Dtype: numtypes.Intp, Count: 2}
	if !sig.Args[1].Equal(wantIdx) {
		t.Errorf("normalized index = %s, want %s", sig.Args[1], wantIdx)
	}
}

// S6: getitem on (Array(float32,2,'C'), slice2_type) -> Array(float32,2,'A').
func TestGetitemArrayBySlice(t *testing.T) {
	reg, ctx := freshRegistry(t)
	arr := numtypes.Array{Dtype: numtypes.Float32, NDim: 2, Layout: numtypes.LayoutC}
	sig, err := reg.ResolveFunction(ctx, "getitem", []numtypes.Type{arr, numtypes.Slice2Type})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := numtypes.Array{Dtype: numtypes.Float32, NDim: 2, Layout: numtypes.LayoutA}
	if sig == nil || !sig.ReturnType.Equal(want) {
		t.Fatalf("got %v, want return type %s", sig, want)
	}
}

// Array getitem arity invariant (spec.md section 8, item 7): a UniTuple
// index whose length doesn't match the array's rank yields no match.
func TestGetitemArrayRankMismatchNoMatch(t *testing.T) {
	reg, ctx := freshRegistry(t)
	arr := numtypes.Array{Dtype: numtypes.Float32, NDim: 2, Layout: numtypes.LayoutC}
	idx := numtypes.UniTuple{Dtype: numtypes.Int64, Count: 3}
	sig, err := reg.ResolveFunction(ctx, "getitem", []numtypes.Type{arr, idx})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sig != nil {
		t.Fatalf("got %v, want no match", sig)
	}
}

// A bare intp index requires rank 1.
func TestGetitemArrayByIntpRankOne(t *testing.T) {
	reg, ctx := freshRegistry(t)
	arr := numtypes.Array{Dtype: numtypes.Int64, NDim: 1, Layout: numtypes.LayoutC}
	sig, err := reg.ResolveFunction(ctx, "getitem", []numtypes.Type{arr, numtypes.Intp})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sig == nil || !sig.ReturnType.Equal(numtypes.Int64) {
		t.Fatalf("got %v, want return type int64", sig)
	}

	arr2 := numtypes.Array{Dtype: numtypes.Int64, NDim: 2, Layout: numtypes.LayoutC}
	sig2, err := reg.ResolveFunction(ctx, "getitem", []numtypes.Type{arr2, numtypes.Intp})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sig2 != nil {
		t.Fatalf("got %v, want no match for rank-2 array indexed by bare intp", sig2)
	}
}

func TestSetitemArray(t *testing.T) {
	reg, ctx := freshRegistry(t)
	arr := numtypes.Array{Dtype: numtypes.Float64, NDim: 1, Layout: numtypes.LayoutC}
	sig, err := reg.ResolveFunction(ctx, "setitem", []numtypes.Type{arr, numtypes.Intp, numtypes.Float64})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sig == nil || !sig.ReturnType.Equal(numtypes.None) {
		t.Fatalf("got %v, want return type none", sig)
	}
}

func TestArrayEquality(t *testing.T) {
	reg, ctx := freshRegistry(t)
	arr := numtypes.Array{Dtype: numtypes.Int32, NDim: 1, Layout: numtypes.LayoutC}
	sig, err := reg.ResolveFunction(ctx, "==", []numtypes.Type{arr, arr})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := numtypes.Array{Dtype: numtypes.Boolean, NDim: 1, Layout: numtypes.LayoutC}
	if sig == nil || !sig.ReturnType.Equal(want) {
		t.Fatalf("got %v, want return type %s", sig, want)
	}
}

// Scalar "==" must still resolve through the operators.go cmpOpCases table
// even though arrays.go layers an extra AbstractTemplate onto the same key.
func TestScalarEqualityStillResolves(t *testing.T) {
	reg, ctx := freshRegistry(t)
	sig, err := reg.ResolveFunction(ctx, "==", []numtypes.Type{numtypes.Int32, numtypes.Int32})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sig == nil || !sig.ReturnType.Equal(numtypes.Boolean) {
		t.Fatalf("got %v, want return type boolean", sig)
	}
}

// S7: attribute(complex128, "real") -> float64.
func TestComplexRealAttribute(t *testing.T) {
	reg, _ := freshRegistry(t)
	got, err := reg.ResolveAttribute(numtypes.Complex128, "real")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(numtypes.Float64) {
		t.Errorf("real = %s, want float64", got)
	}
}

// S8: attribute(Array(int32,3,'C'), "shape") -> UniTuple(intp, 3).
func TestArrayShapeAttribute(t *testing.T) {
	reg, _ := freshRegistry(t)
	arr := numtypes.Array{Dtype: numtypes.Int32, NDim: 3, Layout: numtypes.LayoutC}
	got, err := reg.ResolveAttribute(arr, "shape")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := numtypes.UniTuple{Dtype: numtypes.Intp, Count: 3}
	if !got.Equal(want) {
		t.Errorf("shape = %s, want %s", got, want)
	}
}

// S9: Array.flatten on Array(int32,3,'C') called with no args returns
// Array(int32,1,'C') with recvr = Array(int32,3,'C'), reached here through
// the registry end to end (attribute resolution, then invoking the bound
// template the Method carries).
func TestArrayFlattenEndToEnd(t *testing.T) {
	reg, ctx := freshRegistry(t)
	arr := numtypes.Array{Dtype: numtypes.Int32, NDim: 3, Layout: numtypes.LayoutC}

	attr, err := reg.ResolveAttribute(arr, "flatten")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	method, ok := attr.(numtypes.Method)
	if !ok {
		t.Fatalf("flatten should resolve to a Method, got %T", attr)
	}
	tmpl, ok := method.Template.(typing.FunctionTemplate)
	if !ok {
		t.Fatalf("method template should implement FunctionTemplate, got %T", method.Template)
	}
	sig, err := tmpl.Apply(ctx, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := numtypes.Array{Dtype: numtypes.Int32, NDim: 1, Layout: numtypes.LayoutC}
	if sig == nil || !sig.ReturnType.Equal(want) {
		t.Fatalf("got %v, want return type %s", sig, want)
	}
	if sig.Recvr == nil || !sig.Recvr.Equal(arr) {
		t.Errorf("recvr = %v, want %s", sig.Recvr, arr)
	}
}

// flatten on a non-'C' layout array is not valid.
func TestArrayFlattenRejectsNonCLayout(t *testing.T) {
	reg, ctx := freshRegistry(t)
	arr := numtypes.Array{Dtype: numtypes.Int32, NDim: 2, Layout: numtypes.LayoutF}
	attr, err := reg.ResolveAttribute(arr, "flatten")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	method := attr.(numtypes.Method)
	tmpl := method.Template.(typing.FunctionTemplate)
	sig, err := tmpl.Apply(ctx, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sig != nil {
		t.Fatalf("got %v, want no match for 'F' layout", sig)
	}
}

// The unbound call form Array.flatten(arr) takes the receiver from args[0].
func TestArrayFlattenUnboundCall(t *testing.T) {
	reg, ctx := freshRegistry(t)
	arr := numtypes.Array{Dtype: numtypes.Int32, NDim: 3, Layout: numtypes.LayoutC}
	sig, err := reg.ResolveFunction(ctx, "Array.flatten", []numtypes.Type{arr})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := numtypes.Array{Dtype: numtypes.Int32, NDim: 1, Layout: numtypes.LayoutC}
	if sig == nil || !sig.ReturnType.Equal(want) {
		t.Fatalf("got %v, want return type %s", sig, want)
	}
}

func TestMathModuleFabs(t *testing.T) {
	reg, ctx := freshRegistry(t)
	sig, err := reg.ResolveFunction(ctx, "math.fabs", []numtypes.Type{numtypes.Float64})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sig == nil || !sig.ReturnType.Equal(numtypes.Float64) {
		t.Fatalf("got %v, want return type float64", sig)
	}

	mathFn, err := reg.LookupModuleAttr(numtypes.Module{Identity: "math"}, "fabs")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := mathFn.(numtypes.Function); !ok {
		t.Fatalf("math.fabs attribute should be a Function, got %T", mathFn)
	}

	global, ok := reg.LookupGlobal("math.fabs")
	if !ok {
		t.Fatalf("expected math.fabs to be a registered global")
	}
	if !global.Equal(mathFn) {
		t.Errorf("global math.fabs = %s, want %s", global, mathFn)
	}
}

func TestArrayModuleUnaryUfuncRequiresMatchingDtype(t *testing.T) {
	reg, ctx := freshRegistry(t)
	inp := numtypes.Array{Dtype: numtypes.Float64, NDim: 1, Layout: numtypes.LayoutC}
	out := numtypes.Array{Dtype: numtypes.Float64, NDim: 1, Layout: numtypes.LayoutC}
	sig, err := reg.ResolveFunction(ctx, "array.exp", []numtypes.Type{inp, out})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sig == nil || !sig.ReturnType.Equal(out) {
		t.Fatalf("got %v, want return type %s", sig, out)
	}

	mismatched := numtypes.Array{Dtype: numtypes.Float32, NDim: 1, Layout: numtypes.LayoutC}
	sig2, err := reg.ResolveFunction(ctx, "array.exp", []numtypes.Type{inp, mismatched})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sig2 != nil {
		t.Fatalf("got %v, want no match for mismatched dtype", sig2)
	}
}

// The binary-ufunc guard is preserved verbatim (SPEC_FULL.md section E):
// vx.dtype == out.dtype != vy.dtype is permitted even though it looks like
// it shouldn't be, because the literal source condition only checks
// vx against both vy and out, never vy against out.
func TestArrayModuleBinaryUfuncGuardVerbatim(t *testing.T) {
	reg, ctx := freshRegistry(t)
	vx := numtypes.Array{Dtype: numtypes.Float64, NDim: 1, Layout: numtypes.LayoutC}
	vy := numtypes.Array{Dtype: numtypes.Float32, NDim: 1, Layout: numtypes.LayoutC}
	out := numtypes.Array{Dtype: numtypes.Float64, NDim: 1, Layout: numtypes.LayoutC}

	sig, err := reg.ResolveFunction(ctx, "array.add", []numtypes.Type{vx, vy, out})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sig == nil || !sig.ReturnType.Equal(out) {
		t.Fatalf("got %v, want return type %s (guard admits vx==out != vy)", sig, out)
	}
}

func TestArrayModuleBinaryUfuncBroadcastingFlag(t *testing.T) {
	Reset()
	reg := registry.New()
	oracle := compat.NumericOracle{}
	Bootstrap(reg, oracle, config.Flags{EnableArrayBroadcasting: true})
	ctx := NewContext(oracle)

	vx := numtypes.Array{Dtype: numtypes.Int32, NDim: 1, Layout: numtypes.LayoutC}
	vy := numtypes.Array{Dtype: numtypes.Int64, NDim: 1, Layout: numtypes.LayoutC}
	out := numtypes.Array{Dtype: numtypes.Float64, NDim: 1, Layout: numtypes.LayoutC}

	sig, err := reg.ResolveFunction(ctx, "array.add", []numtypes.Type{vx, vy, out})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sig == nil || !sig.ReturnType.Equal(out) {
		t.Fatalf("got %v, want return type %s under relaxed broadcasting", sig, out)
	}
}

func TestTupleGetiterAndGetitem(t *testing.T) {
	reg, ctx := freshRegistry(t)
	tup := numtypes.UniTuple{Dtype: numtypes.Int64, Count: 3}

	iterSig, err := reg.ResolveFunction(ctx, "getiter", []numtypes.Type{tup})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantIter := numtypes.UniTupleIter{Tuple: tup}
	if iterSig == nil || !iterSig.ReturnType.Equal(wantIter) {
		t.Fatalf("got %v, want return type %s", iterSig, wantIter)
	}

	nextSig, err := reg.ResolveFunction(ctx, "iternextsafe", []numtypes.Type{wantIter})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if nextSig == nil || !nextSig.ReturnType.Equal(numtypes.Int64) {
		t.Fatalf("got %v, want return type int64", nextSig)
	}

	itemSig, err := reg.ResolveFunction(ctx, "getitem", []numtypes.Type{tup, numtypes.Int32})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if itemSig == nil || !itemSig.ReturnType.Equal(numtypes.Int64) {
		t.Fatalf("got %v, want return type int64", itemSig)
	}
	if !itemSig.Args[1].Equal(numtypes.Intp) {
		t.Errorf("normalized index = %s, want intp", itemSig.Args[1])
	}
}

func TestRangeTwoArgHasNoDedicated32BitCase(t *testing.T) {
	reg, ctx := freshRegistry(t)
	// The case list has no (int32, int32) -> range_state32_type entry
	// (spec.md section 9's Open Question, preserved verbatim) — the only
	// two-argument case is (int64, int64) -> range_state64_type. A call
	// with two int32s still resolves, but only by promoting through the
	// 64-bit case; it never produces range_state32_type.
	sig, err := reg.ResolveFunction(ctx, numtypes.RangeType.Name, []numtypes.Type{numtypes.Int32, numtypes.Int32})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sig == nil || !sig.ReturnType.Equal(numtypes.RangeState64Type) {
		t.Fatalf("got %v, want range_state64_type (promoted, since no 32-bit two-arg case exists)", sig)
	}

	sig64, err := reg.ResolveFunction(ctx, numtypes.RangeType.Name, []numtypes.Type{numtypes.Int64, numtypes.Int64})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sig64 == nil || !sig64.ReturnType.Equal(numtypes.RangeState64Type) {
		t.Fatalf("got %v, want return type range_state64_type", sig64)
	}
}

func TestRangeIterationUsesIternextItervalidNotIternextsafe(t *testing.T) {
	reg, ctx := freshRegistry(t)

	iterSig, err := reg.ResolveFunction(ctx, "getiter", []numtypes.Type{numtypes.RangeState64Type})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if iterSig == nil || !iterSig.ReturnType.Equal(numtypes.RangeIter64Type) {
		t.Fatalf("got %v, want return type range_iter64_type", iterSig)
	}

	nextSig, err := reg.ResolveFunction(ctx, "iternext", []numtypes.Type{numtypes.RangeIter64Type})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if nextSig == nil || !nextSig.ReturnType.Equal(numtypes.Int64) {
		t.Fatalf("got %v, want return type int64", nextSig)
	}

	validSig, err := reg.ResolveFunction(ctx, "itervalid", []numtypes.Type{numtypes.RangeIter64Type})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if validSig == nil || !validSig.ReturnType.Equal(numtypes.Boolean) {
		t.Fatalf("got %v, want return type boolean", validSig)
	}

	// range iterators never resolve against iternextsafe; that key belongs
	// to UniTupleIter alone.
	noMatch, err := reg.ResolveFunction(ctx, "iternextsafe", []numtypes.Type{numtypes.RangeIter64Type})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if noMatch != nil {
		t.Fatalf("iternextsafe matched a range iterator: %v", noMatch)
	}
}

func TestBuiltinGlobals(t *testing.T) {
	reg, _ := freshRegistry(t)
	for name, want := range map[string]numtypes.Type{
		"range": numtypes.RangeType,
		"len":   numtypes.LenType,
		"slice": numtypes.SliceType,
		"abs":   numtypes.AbsType,
		"print": numtypes.PrintType,
	} {
		got, ok := reg.LookupGlobal(name)
		if !ok {
			t.Errorf("%s: expected a registered global", name)
			continue
		}
		if !got.Equal(want) {
			t.Errorf("%s = %s, want %s", name, got, want)
		}
	}
}

func TestBootstrapSealsRegistry(t *testing.T) {
	reg, _ := freshRegistry(t)
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected a panic registering after Bootstrap seals the registry")
		}
	}()
	reg.RegisterGlobal("late", numtypes.Boolean)
}
