package catalogue

import (
	"github.com/Postur/numba/internal/numtypes"
	"github.com/Postur/numba/internal/typing"
)

// registerArrayGetitem installs getitem over Array (spec.md section 4.5):
// a slice index downgrades the layout to arbitrary at the same rank; a
// matching-rank UniTuple of intp indexes down to the dtype; a bare intp
// requires rank 1 and also yields the dtype. Anything else is no match,
// except the one truly unreachable shape normalizeIndex can never
// produce — guarded defensively as InternalInvariant (SPEC_FULL.md D.1).
func registerArrayGetitem(reg registrar) {
	reg.RegisterFunctionTemplate("getitem", &typing.AbstractTemplate{
		OpKey: "getitem",
		Generic: func(ctx *typing.Context, args []numtypes.Type) (*typing.Signature, error) {
			if len(args) != 2 {
				return nil, nil
			}
			arr, ok := numtypes.IsArray(args[0])
			if !ok {
				return nil, nil
			}
			normalized := normalizeIndex(args[1])

			switch idx := normalized.(type) {
			case numtypes.Basic:
				if idx.Equal(numtypes.Slice2Type) || idx.Equal(numtypes.Slice3Type) {
					sig := typing.NewSignature(arr.WithLayout(numtypes.LayoutA), arr, normalized)
					return &sig, nil
				}
				if idx.Equal(numtypes.Intp) {
					if arr.NDim != 1 {
						return nil, nil
					}
					sig := typing.NewSignature(arr.Dtype, arr, normalized)
					return &sig, nil
				}
				return nil, &typing.InternalInvariant{Detail: "getitem: unreachable normalized index " + normalized.String()}
			case numtypes.UniTuple:
				if idx.Count != arr.NDim {
					return nil, nil
				}
				sig := typing.NewSignature(arr.Dtype, arr, normalized)
				return &sig, nil
			default:
				return nil, &typing.InternalInvariant{Detail: "getitem: unreachable normalized index " + normalized.String()}
			}
		},
	})
}

// registerArraySetitem installs setitem over Array: returns *unit*, with
// the index normalised the same way getitem's is and the value's formal
// set to dtype (spec.md section 4.5). The value is not required to equal
// dtype: the resolver accepts any conversion the oracle allows into it.
func registerArraySetitem(reg registrar) {
	reg.RegisterFunctionTemplate("setitem", &typing.AbstractTemplate{
		OpKey: "setitem",
		Generic: func(ctx *typing.Context, args []numtypes.Type) (*typing.Signature, error) {
			if len(args) != 3 {
				return nil, nil
			}
			arr, ok := numtypes.IsArray(args[0])
			if !ok {
				return nil, nil
			}
			normalized := normalizeIndex(args[1])
			sig := typing.NewSignature(numtypes.None, arr, normalized, arr.Dtype)
			return &sig, nil
		},
	})
}

// registerArrayLen installs len_type over Array: (array) -> intp.
func registerArrayLen(reg registrar) {
	reg.RegisterFunctionTemplate(numtypes.LenType.Name, &typing.AbstractTemplate{
		OpKey: numtypes.LenType.Name,
		Generic: func(ctx *typing.Context, args []numtypes.Type) (*typing.Signature, error) {
			if len(args) != 1 {
				return nil, nil
			}
			arr, ok := numtypes.IsArray(args[0])
			if !ok {
				return nil, nil
			}
			sig := typing.NewSignature(numtypes.Intp, arr)
			return &sig, nil
		},
	})
}

// registerArrayEquality installs "==" over two same-type arrays, producing
// an elementwise-boolean array of the same rank/layout (spec.md section
// 4.5). This is layered onto the same "==" key operators.go already
// registered for scalar comparisons; scalar arguments fail the IsArray
// check and fall through untouched.
func registerArrayEquality(reg registrar) {
	reg.RegisterFunctionTemplate("==", &typing.AbstractTemplate{
		OpKey: "==",
		Generic: func(ctx *typing.Context, args []numtypes.Type) (*typing.Signature, error) {
			if len(args) != 2 {
				return nil, nil
			}
			lhs, ok := numtypes.IsArray(args[0])
			if !ok {
				return nil, nil
			}
			rhs, ok := numtypes.IsArray(args[1])
			if !ok {
				return nil, nil
			}
			if !lhs.Equal(rhs) {
				return nil, nil
			}
			result := numtypes.Array{Dtype: numtypes.Boolean, NDim: lhs.NDim, Layout: lhs.Layout}
			sig := typing.NewSignature(result, lhs, rhs)
			return &sig, nil
		},
	})
}

// flattenFactory builds the flatten method's per-receiver template: valid
// only when the receiver's layout is 'C', producing a rank-1 'C' array of
// the same dtype (spec.md section 4.5, Array_flatten). The same factory
// backs both the attribute-bound form (arr.flatten(), recvr fixed at
// resolution time) and the unbound call form (Array.flatten(arr), recvr
// taken from the first argument by BoundMethodTemplate).
func flattenFactory(ctx *typing.Context, recvr numtypes.Type) typing.FunctionTemplate {
	return &typing.AbstractTemplate{
		OpKey: "Array_flatten",
		Generic: func(ctx *typing.Context, args []numtypes.Type) (*typing.Signature, error) {
			if len(args) != 0 {
				return nil, &typing.InternalInvariant{Detail: "Array_flatten takes no arguments when bound"}
			}
			arr, ok := numtypes.IsArray(recvr)
			if !ok || arr.Layout != numtypes.LayoutC {
				return nil, nil
			}
			sig := typing.NewSignature(numtypes.Array{Dtype: arr.Dtype, NDim: 1, Layout: numtypes.LayoutC}).WithRecvr(arr)
			return &sig, nil
		},
	}
}

// registerArrayAttributes installs Array's attribute table: shape (a value
// type) and flatten (a bound method), per spec.md section 4.5.
func registerArrayAttributes(reg registrar, ctx *typing.Context) {
	attrs := typing.NewAttributeTemplate(ctx, "Array")
	attrs.Register("shape", func(ctx *typing.Context, owner numtypes.Type) (numtypes.Type, error) {
		arr, ok := numtypes.IsArray(owner)
		if !ok {
			return nil, &typing.UnknownAttribute{Owner: owner, Name: "shape"}
		}
		return numtypes.UniTuple{Dtype: numtypes.Intp, Count: arr.NDim}, nil
	})
	attrs.Register("flatten", func(ctx *typing.Context, owner numtypes.Type) (numtypes.Type, error) {
		return numtypes.Method{Template: flattenFactory(ctx, owner), Recvr: owner}, nil
	})
	reg.RegisterAttributeTemplate("Array", attrs)
}

// registerArrayFlattenUnbound installs the "Array.flatten(arr)" unbound
// call form under its own key (SPEC_FULL.md section D.3).
func registerArrayFlattenUnbound(reg registrar) {
	reg.RegisterFunctionTemplate("Array.flatten", &typing.BoundMethodTemplate{
		OpKey:   "Array.flatten",
		Factory: flattenFactory,
	})
}
