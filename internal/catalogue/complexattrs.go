package catalogue

import (
	"github.com/Postur/numba/internal/numtypes"
	"github.com/Postur/numba/internal/typing"
)

// registerComplexAttributes installs complex64/complex128's real/imag
// attributes via ClassAttrTemplate, since both map straight to a fixed
// value type with no per-call computation (spec.md section 4.5).
func registerComplexAttributes(reg registrar) {
	reg.RegisterAttributeTemplate(numtypes.Complex64.Name, &typing.ClassAttrTemplate{
		OwnerKey: numtypes.Complex64.Name,
		Attrs: map[string]numtypes.Type{
			"real": numtypes.Float32,
			"imag": numtypes.Float32,
		},
	})
	reg.RegisterAttributeTemplate(numtypes.Complex128.Name, &typing.ClassAttrTemplate{
		OwnerKey: numtypes.Complex128.Name,
		Attrs: map[string]numtypes.Type{
			"real": numtypes.Float64,
			"imag": numtypes.Float64,
		},
	})
}
