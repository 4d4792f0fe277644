package catalogue

import (
	"github.com/Postur/numba/internal/numtypes"
	"github.com/Postur/numba/internal/typing"
)

// mathUnaryNames lists every math module function spec.md section 4.5
// names, each sharing the same four-case overload table.
var mathUnaryNames = []string{
	"fabs", "exp", "sqrt", "log", "sin", "cos", "tan",
	"sinh", "cosh", "tanh", "asin", "acos", "atan",
	"asinh", "acosh", "atanh",
}

// mathUnaryCases is the fixed overload table every math unary function
// shares (spec.md section 4.5): (int64)->float64, (uint64)->float64,
// (float32)->float32, (float64)->float64.
func mathUnaryCases() []typing.Signature {
	return []typing.Signature{
		typing.NewSignature(numtypes.Float64, numtypes.Int64),
		typing.NewSignature(numtypes.Float64, numtypes.Uint64),
		typing.NewSignature(numtypes.Float32, numtypes.Float32),
		typing.NewSignature(numtypes.Float64, numtypes.Float64),
	}
}

// registerMathModule installs the math module's attribute template (one
// handler per unary function, each yielding a Function-typed value whose
// template is a ConcreteTemplate over mathUnaryCases) and the matching
// global bindings, following spec.md section 4.5 and the "Cyclic
// references in the catalogue" design note (section 9): build the
// templates first, then bind their values.
func registerMathModule(reg registrar, ctx *typing.Context) {
	moduleKey := "module:math"
	attrs := typing.NewAttributeTemplate(ctx, moduleKey)

	for _, name := range mathUnaryNames {
		opKey := "math." + name
		tmpl := &typing.ConcreteTemplate{OpKey: opKey, Cases: mathUnaryCases()}
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
	reg.RegisterGlobal("math", numtypes.Module{Identity: "math"})
}
