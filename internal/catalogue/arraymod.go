package catalogue

import (
	"github.com/Postur/numba/internal/compat"
	"github.com/Postur/numba/internal/config"
	"github.com/Postur/numba/internal/numtypes"
	"github.com/Postur/numba/internal/typing"
)

var arrayUnaryNames = []string{"absolute", "exp", "sin", "cos", "tan"}
var arrayBinaryNames = []string{"add", "subtract", "multiply", "divide"}

// unaryUfuncGeneric implements the unary ufunc contract (spec.md section
// 4.5): (inp: Array, out: Array) -> out, requiring inp.dtype == out.dtype.
func unaryUfuncGeneric(ctx *typing.Context, args []numtypes.Type) (*typing.Signature, error) {
	if len(args) != 2 {
		return nil, nil
	}
	inp, ok := numtypes.IsArray(args[0])
	if !ok {
		return nil, nil
	}
	out, ok := numtypes.IsArray(args[1])
	if !ok {
		return nil, nil
	}
	if !inp.Dtype.Equal(out.Dtype) {
		return nil, nil
	}
	sig := typing.NewSignature(out, inp, out)
	return &sig, nil
}

// binaryUfuncGeneric implements the binary ufunc contract (spec.md section
// 4.5): (vx, vy, out: Array) -> out. The guard is the literal source
// condition preserved verbatim per the Open Question in spec.md section 9
// (SPEC_FULL.md section E) — it rejects unless vx.dtype == vy.dtype OR
// vx.dtype == out.dtype, which admits vx.dtype == out.dtype != vy.dtype.
// Not "fixed" here. When flags.EnableArrayBroadcasting is set, the guard
// is replaced with an oracle-driven mutual-compatibility check instead
// (a domain-stack addition, never the default).
func binaryUfuncGeneric(flags config.Flags, oracle compat.Oracle) typing.GenericFunc {
	return func(ctx *typing.Context, args []numtypes.Type) (*typing.Signature, error) {
		if len(args) != 3 {
			return nil, nil
		}
		vx, ok := numtypes.IsArray(args[0])
		if !ok {
			return nil, nil
		}
		vy, ok := numtypes.IsArray(args[1])
		if !ok {
			return nil, nil
		}
		out, ok := numtypes.IsArray(args[2])
		if !ok {
			return nil, nil
		}

		if flags.EnableArrayBroadcasting {
			if oracle.TypeCompatibility(vx.Dtype, out.Dtype) == compat.Incompatible ||
				oracle.TypeCompatibility(vy.Dtype, out.Dtype) == compat.Incompatible {
				return nil, nil
			}
		} else if !vx.Dtype.Equal(vy.Dtype) && !vx.Dtype.Equal(out.Dtype) {
			return nil, nil
		}

		sig := typing.NewSignature(out, vx, vy, out)
		return &sig, nil
	}
}

// registerArrayModule installs the array module's unary and binary ufuncs,
// plus its attribute table and global bindings, mirroring registerMathModule.
func registerArrayModule(reg registrar, ctx *typing.Context, flags config.Flags, oracle compat.Oracle) {
	moduleKey := "module:array"
	attrs := typing.NewAttributeTemplate(ctx, moduleKey)

	for _, name := range arrayUnaryNames {
		opKey := "array." + name
		tmpl := &typing.AbstractTemplate{OpKey: opKey, Generic: unaryUfuncGeneric}
		reg.RegisterFunctionTemplate(opKey, tmpl)

		fn := numtypes.Function{Template: tmpl}
		attrs.Register(name, func(fn numtypes.Function) typing.AttributeHandler {
			return func(ctx *typing.Context, owner numtypes.Type) (numtypes.Type, error) {
				return fn, nil
			}
		}(fn))
		reg.RegisterGlobal(opKey, fn)
	}

	for _, name := range arrayBinaryNames {
		opKey := "array." + name
		tmpl := &typing.AbstractTemplate{OpKey: opKey, Generic: binaryUfuncGeneric(flags, oracle)}
		reg.RegisterFunctionTemplate(opKey, tmpl)

		fn := numtypes.Function{Template: tmpl}
		attrs.Register(name, func(fn numtypes.Function) typing.AttributeHandler {
			return func(ctx *typing.Context, owner numtypes.Type) (numtypes.Type, error) {
				return fn, nil
			}
		}(fn))
		reg.RegisterGlobal(opKey, fn)
	}

	reg.RegisterAttributeTemplate(moduleKey, attrs)
	reg.RegisterGlobal("array", numtypes.Module{Identity: "array"})
}
