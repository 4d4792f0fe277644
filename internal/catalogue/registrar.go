package catalogue

import (
	"github.com/Postur/numba/internal/numtypes"
	"github.com/Postur/numba/internal/typing"
)

// registrar is the subset of *registry.Registry the catalogue needs to
// populate. Declaring it here, at the point of use, lets every file in
// this package stay agnostic of the registry package's own lifecycle
// (locking, sealing) — bootstrap.go is the only place that touches a real
// *registry.Registry.
type registrar interface {
	RegisterFunctionTemplate(opKey string, tmpl typing.FunctionTemplate)
	RegisterAttributeTemplate(ownerKey string, tmpl typing.AttributeResolver)
	RegisterGlobal(identity string, t numtypes.Type)
}
