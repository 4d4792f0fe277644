package catalogue

import (
	"github.com/Postur/numba/internal/numtypes"
	"github.com/Postur/numba/internal/typing"
)

// registerTupleIteration adds UniTuple support to "getiter" (a key ranges.go
// also populates for range states — both are tried in registration order,
// so a range state still resolves via its own ConcreteTemplate and a tuple
// falls through to this AbstractTemplate) and "iternextsafe", which belongs
// to UniTupleIter alone; range iterators use "iternext"/"itervalid" instead
// (ranges.go), never "iternextsafe".
func registerTupleIteration(reg registrar) {
	reg.RegisterFunctionTemplate("getiter", &typing.AbstractTemplate{
		OpKey: "getiter",
		Generic: func(ctx *typing.Context, args []numtypes.Type) (*typing.Signature, error) {
			if len(args) != 1 {
				return nil, nil
			}
			tup, ok := numtypes.IsUniTuple(args[0])
			if !ok {
				return nil, nil
			}
			sig := typing.NewSignature(numtypes.UniTupleIter{Tuple: tup}, tup)
			return &sig, nil
		},
	})

	reg.RegisterFunctionTemplate("iternextsafe", &typing.AbstractTemplate{
		OpKey: "iternextsafe",
		Generic: func(ctx *typing.Context, args []numtypes.Type) (*typing.Signature, error) {
			if len(args) != 1 {
				return nil, nil
			}
			it, ok := args[0].(numtypes.UniTupleIter)
			if !ok {
				return nil, nil
			}
			sig := typing.NewSignature(it.Tuple.Dtype, it)
			return &sig, nil
		},
	})
}

// registerTupleGetitem installs getitem over UniTuple, normalizing the
// index the same way arrays.go does (spec.md section 4.5).
func registerTupleGetitem(reg registrar) {
	reg.RegisterFunctionTemplate("getitem", &typing.AbstractTemplate{
		OpKey: "getitem",
		Generic: func(ctx *typing.Context, args []numtypes.Type) (*typing.Signature, error) {
			if len(args) != 2 {
				return nil, nil
			}
			tup, ok := numtypes.IsUniTuple(args[0])
			if !ok {
				return nil, nil
			}
			normalized := normalizeIndex(args[1])
			sig := typing.NewSignature(tup.Dtype, tup, normalized)
			return &sig, nil
		},
	})
}
