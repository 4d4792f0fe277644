package typing

import (
	"github.com/Postur/numba/internal/compat"
)

// Context is the compiler context every template carries: a handle on the
// type-compatibility oracle (spec.md section 4: "Carries a context (the
// compiler context, holds the type-compatibility oracle)"). It is read-only
// once constructed and safe to share across concurrent resolutions run by
// an embedding compiler that typechecks multiple compilation units in
// parallel (spec.md section 5).
type Context struct {
	Oracle compat.Oracle
}

// NewContext builds a Context around the given oracle.
func NewContext(oracle compat.Oracle) *Context {
	return &Context{Oracle: oracle}
}
