package catalogue

import (
	"github.com/Postur/numba/internal/numtypes"
	"github.com/Postur/numba/internal/typing"
)

// rangeCases builds range_type's overload table. The two-argument,
// 32-bit-width case (range(int32, int32) -> range_state32_type) is
// deliberately absent: spec.md section 8's Open Question preserves that gap
// from the original implementation verbatim (SPEC_FULL.md section E), so a
// program calling range(int32(0), int32(10)) resolves via the 64-bit
// widening case instead, exactly as it does upstream.
func rangeCases() []typing.Signature {
	return []typing.Signature{
		// range(stop)
		typing.NewSignature(numtypes.RangeState32Type, numtypes.Int32),
		typing.NewSignature(numtypes.RangeState64Type, numtypes.Int64),
		// range(start, stop)
		typing.NewSignature(numtypes.RangeState64Type, numtypes.Int64, numtypes.Int64),
		// range(start, stop, step)
		typing.NewSignature(numtypes.RangeState32Type, numtypes.Int32, numtypes.Int32, numtypes.Int32),
		typing.NewSignature(numtypes.RangeState64Type, numtypes.Int64, numtypes.Int64, numtypes.Int64),
	}
}

func registerRange(reg registrar) {
	reg.RegisterFunctionTemplate(numtypes.RangeType.Name, &typing.ConcreteTemplate{
		OpKey: numtypes.RangeType.Name,
		Cases: rangeCases(),
	})
}

// registerRangeIteration wires getiter/iternext/itervalid over range states,
// the machinery a for-loop over range(...) lowers to (spec.md section 4.5's
// range-state/iter families). Range iterators use the unsafe iternext/
// itervalid pair, not iternextsafe — that key belongs to UniTupleIter alone
// (tuples.go), per the original source's separate IterNext/IterValid vs.
// IterNextSafe templates.
func registerRangeIteration(reg registrar) {
	reg.RegisterFunctionTemplate("getiter", &typing.ConcreteTemplate{
		OpKey: "getiter",
		Cases: []typing.Signature{
			typing.NewSignature(numtypes.RangeIter32Type, numtypes.RangeState32Type),
			typing.NewSignature(numtypes.RangeIter64Type, numtypes.RangeState64Type),
		},
	})
	reg.RegisterFunctionTemplate("iternext", &typing.ConcreteTemplate{
		OpKey: "iternext",
		Cases: []typing.Signature{
			typing.NewSignature(numtypes.Int32, numtypes.RangeIter32Type),
			typing.NewSignature(numtypes.Int64, numtypes.RangeIter64Type),
		},
	})
	reg.RegisterFunctionTemplate("itervalid", &typing.ConcreteTemplate{
		OpKey: "itervalid",
		Cases: []typing.Signature{
			typing.NewSignature(numtypes.Boolean, numtypes.RangeIter32Type),
			typing.NewSignature(numtypes.Boolean, numtypes.RangeIter64Type),
		},
	})
}
