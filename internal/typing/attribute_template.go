package typing

import (
	"github.com/Postur/numba/internal/numtypes"
)

// AttributeResolver resolves one named attribute of an owning type to
// either a value type or a bound-method type (spec.md section 4.4).
type AttributeResolver interface {
	Resolve(owner numtypes.Type, name string) (numtypes.Type, error)
}

// AttributeHandler computes the type of a single named attribute.
type AttributeHandler func(ctx *Context, owner numtypes.Type) (numtypes.Type, error)

// AttributeTemplate dispatches by attribute name to a small handler map
// built at registration time — the Go rendering of the original's
// getattr(self, "resolve_"+attr) name-introspection (spec.md section 9:
// "No runtime name-introspection is required if the handler map is
// populated at registration").
type AttributeTemplate struct {
	Ctx      *Context
	OwnerKey string
	handlers map[string]AttributeHandler
}

// NewAttributeTemplate returns an AttributeTemplate with no handlers
// registered; call Register to add them before use.
func NewAttributeTemplate(ctx *Context, ownerKey string) *AttributeTemplate {
	return &AttributeTemplate{Ctx: ctx, OwnerKey: ownerKey, handlers: make(map[string]AttributeHandler)}
}

// Register adds the handler for the given attribute name.
func (a *AttributeTemplate) Register(name string, h AttributeHandler) {
	a.handlers[name] = h
}

func (a *AttributeTemplate) Resolve(owner numtypes.Type, name string) (numtypes.Type, error) {
	h, ok := a.handlers[name]
	if !ok {
		return nil, &UnknownAttribute{Owner: owner, Name: name}
	}
	return h(a.Ctx, owner)
}

// ClassAttrTemplate resolves by direct lookup in an explicit
// attr_name -> Type mapping, for owners whose attributes are all plain
// value types with no per-call computation (spec.md section 4.4).
type ClassAttrTemplate struct {
	OwnerKey string
	Attrs    map[string]numtypes.Type
}

func (c *ClassAttrTemplate) Resolve(owner numtypes.Type, name string) (numtypes.Type, error) {
	t, ok := c.Attrs[name]
	if !ok {
		return nil, &UnknownAttribute{Owner: owner, Name: name}
	}
	return t, nil
}
