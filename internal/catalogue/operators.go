package catalogue

import (
	"github.com/Postur/numba/internal/numtypes"
	"github.com/Postur/numba/internal/typing"
)

// binOpCases builds the "(T, T) -> T" tower every ordinary binary
// arithmetic operator shares (spec.md section 4.5): every unsigned, every
// signed, float32, float64, complex64, complex128.
func binOpCases() []typing.Signature {
	cases := make([]typing.Signature, 0, 12)
	for _, t := range numtypes.UnsignedDomain {
		cases = append(cases, typing.NewSignature(t, t, t))
	}
	for _, t := range numtypes.SignedDomain {
		cases = append(cases, typing.NewSignature(t, t, t))
	}
	for _, t := range numtypes.FloatDomain {
		cases = append(cases, typing.NewSignature(t, t, t))
	}
	for _, t := range numtypes.ComplexDomain {
		cases = append(cases, typing.NewSignature(t, t, t))
	}
	return cases
}

// modCases is the binOp tower minus complex (spec.md section 4.5: "% (mod):
// same tower minus complex").
func modCases() []typing.Signature {
	cases := make([]typing.Signature, 0, 10)
	for _, t := range numtypes.UnsignedDomain {
		cases = append(cases, typing.NewSignature(t, t, t))
	}
	for _, t := range numtypes.SignedDomain {
		cases = append(cases, typing.NewSignature(t, t, t))
	}
	for _, t := range numtypes.FloatDomain {
		cases = append(cases, typing.NewSignature(t, t, t))
	}
	return cases
}

// trueDivCases: integer pairs widen to float64; float and complex pairs
// stay same-type (spec.md section 4.5, "/ (true-div)").
func trueDivCases() []typing.Signature {
	var cases []typing.Signature
	for _, t := range numtypes.IntegerDomain {
		cases = append(cases, typing.NewSignature(numtypes.Float64, t, t))
	}
	for _, t := range numtypes.FloatDomain {
		cases = append(cases, typing.NewSignature(t, t, t))
	}
	for _, t := range numtypes.ComplexDomain {
		cases = append(cases, typing.NewSignature(t, t, t))
	}
	return cases
}

// floorDivCases: integer pairs stay integer; float pairs produce integer of
// matching width (spec.md section 4.5, "// (floor-div)").
func floorDivCases() []typing.Signature {
	var cases []typing.Signature
	for _, t := range numtypes.IntegerDomain {
		cases = append(cases, typing.NewSignature(t, t, t))
	}
	cases = append(cases, typing.NewSignature(numtypes.Int32, numtypes.Float32, numtypes.Float32))
	cases = append(cases, typing.NewSignature(numtypes.Int64, numtypes.Float64, numtypes.Float64))
	return cases
}

// powCases: (float64, int_any) -> float64; (T, T) -> T for floats and
// complex (spec.md section 4.5, "** (pow)").
func powCases() []typing.Signature {
	var cases []typing.Signature
	for _, t := range numtypes.IntegerDomain {
		cases = append(cases, typing.NewSignature(numtypes.Float64, numtypes.Float64, t))
	}
	for _, t := range numtypes.FloatDomain {
		cases = append(cases, typing.NewSignature(t, t, t))
	}
	for _, t := range numtypes.ComplexDomain {
		cases = append(cases, typing.NewSignature(t, t, t))
	}
	return cases
}

// cmpOpCases: (T, T) -> boolean for every real numeric width (spec.md
// section 4.5, comparisons).
func cmpOpCases() []typing.Signature {
	var cases []typing.Signature
	for _, t := range numtypes.RealDomain {
		cases = append(cases, typing.NewSignature(numtypes.Boolean, t, t))
	}
	return cases
}

// registerOperators installs every binary operator template from spec.md
// section 4.5's "Binary arithmetic" and "Comparisons" groups.
func registerOperators(reg registrar) {
	for _, key := range []string{"+", "-", "*", "/?"} {
		reg.RegisterFunctionTemplate(key, &typing.ConcreteTemplate{OpKey: key, Cases: binOpCases()})
	}
	reg.RegisterFunctionTemplate("%", &typing.ConcreteTemplate{OpKey: "%", Cases: modCases()})
	reg.RegisterFunctionTemplate("/", &typing.ConcreteTemplate{OpKey: "/", Cases: trueDivCases()})
	reg.RegisterFunctionTemplate("//", &typing.ConcreteTemplate{OpKey: "//", Cases: floorDivCases()})
	reg.RegisterFunctionTemplate("**", &typing.ConcreteTemplate{OpKey: "**", Cases: powCases()})

	for _, key := range []string{"<", "<=", ">", ">=", "==", "!="} {
		reg.RegisterFunctionTemplate(key, &typing.ConcreteTemplate{OpKey: key, Cases: cmpOpCases()})
	}
}
