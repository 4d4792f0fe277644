package catalogue

import (
	"github.com/Postur/numba/internal/numtypes"
	"github.com/Postur/numba/internal/typing"
)

// registerPrint installs print_type: any single integer- or real-domain
// scalar, returning the unit type (spec.md section 4.5).
func registerPrint(reg registrar) {
	cases := make([]typing.Signature, 0, len(numtypes.IntegerDomain)+len(numtypes.RealDomain))
	for _, t := range numtypes.IntegerDomain {
		cases = append(cases, typing.NewSignature(numtypes.None, t))
	}
	for _, t := range numtypes.RealDomain {
		cases = append(cases, typing.NewSignature(numtypes.None, t))
	}
	reg.RegisterFunctionTemplate(numtypes.PrintType.Name, &typing.ConcreteTemplate{
		OpKey: numtypes.PrintType.Name,
		Cases: cases,
	})
}

// registerAbs installs abs_type: (T) -> T for every signed integer width.
func registerAbs(reg registrar) {
	cases := make([]typing.Signature, 0, len(numtypes.SignedDomain))
	for _, t := range numtypes.SignedDomain {
		cases = append(cases, typing.NewSignature(t, t))
	}
	reg.RegisterFunctionTemplate(numtypes.AbsType.Name, &typing.ConcreteTemplate{
		OpKey: numtypes.AbsType.Name,
		Cases: cases,
	})
}

// registerSlice installs slice_type's two arities.
func registerSlice(reg registrar) {
	reg.RegisterFunctionTemplate(numtypes.SliceType.Name, &typing.ConcreteTemplate{
		OpKey: numtypes.SliceType.Name,
		Cases: []typing.Signature{
			typing.NewSignature(numtypes.Slice2Type, numtypes.Intp, numtypes.Intp),
			typing.NewSignature(numtypes.Slice3Type, numtypes.Intp, numtypes.Intp, numtypes.Intp),
		},
	})
}

// registerBuiltinGlobals installs the fixed value->type bindings spec.md
// section 4.5 names: range, len, slice, abs, print.
func registerBuiltinGlobals(reg registrar) {
	reg.RegisterGlobal("range", numtypes.RangeType)
	reg.RegisterGlobal("len", numtypes.LenType)
	reg.RegisterGlobal("slice", numtypes.SliceType)
	reg.RegisterGlobal("abs", numtypes.AbsType)
	reg.RegisterGlobal("print", numtypes.PrintType)
}
