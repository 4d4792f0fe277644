package catalogue

import (
	"sync"

	"github.com/Postur/numba/internal/compat"
	"github.com/Postur/numba/internal/config"
	"github.com/Postur/numba/internal/registry"
	"github.com/Postur/numba/internal/typing"
)

var bootstrapOnce sync.Once

// Bootstrap populates reg with spec.md section 4.5's entire builtin
// catalogue and seals it, exactly once per process — mirroring the
// teacher's RegisterBuiltins/builtinsOnce pattern, generalized from a
// single symbol table to the three-table Registry this spec describes.
// Subsequent calls are no-ops, the same idempotence contract as
// RegisterBuiltins. Most callers (tests, a process with one global
// registry) want this; an embedder that needs its own independently
// extensible registry per VM instance should call Populate directly
// instead, since Bootstrap's one-shot guard is process-wide.
func Bootstrap(reg *registry.Registry, oracle compat.Oracle, flags config.Flags) {
	bootstrapOnce.Do(func() {
		Populate(reg, oracle, flags)
		reg.Seal()
	})
}

// Reset undoes Bootstrap's idempotence guard, for tests that need a fresh
// registry per case. It does not unseal or clear reg itself — callers pass
// a new *registry.Registry on the next Bootstrap call.
func Reset() {
	bootstrapOnce = sync.Once{}
}

// Populate installs spec.md section 4.5's entire builtin catalogue into
// reg without sealing it, leaving the caller free to layer on further
// RegisterFunctionTemplate/RegisterAttributeTemplate/RegisterGlobal calls
// (spec.md section 6's init-time registration calls) before sealing.
func Populate(reg *registry.Registry, oracle compat.Oracle, flags config.Flags) {
	ctx := typing.NewContext(oracle)

	registerBuiltinGlobals(reg)
	registerPrint(reg)
	registerAbs(reg)
	registerSlice(reg)
	registerOperators(reg)

	registerRange(reg)
	registerRangeIteration(reg)
	registerTupleIteration(reg)
	registerTupleGetitem(reg)

	registerArrayGetitem(reg)
	registerArraySetitem(reg)
	registerArrayLen(reg)
	registerArrayEquality(reg)
	registerArrayAttributes(reg, ctx)
	registerArrayFlattenUnbound(reg)

	registerComplexAttributes(reg)
	registerMathModule(reg, ctx)
	registerArrayModule(reg, ctx, flags, oracle)
}

// NewContext is a small convenience export so callers of this package
// (pkg/numjit, tests) that need a standalone Context for resolving against
// an already-bootstrapped registry don't have to import internal/typing
// directly just for this one constructor call.
func NewContext(oracle compat.Oracle) *typing.Context {
	return typing.NewContext(oracle)
}
