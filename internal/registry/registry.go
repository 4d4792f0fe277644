// Package registry implements spec.md section 3's Registry: the
// process-wide, read-mostly tables of function templates, attribute
// templates, and global value->type bindings, populated once during
// bootstrap and sealed before first use (spec.md section 5).
//
// The registration pattern mirrors the teacher repo's
// internal/analyzer/builtins.go: a sync.Once-guarded populate function
// feeding an explicit init phase, not decorator-time side effects.
package registry

import (
	"sync"

	"github.com/Postur/numba/internal/numtypes"
	"github.com/Postur/numba/internal/typing"
)

// Registry holds the three tables spec.md section 3 describes. It is safe
// for concurrent reads once Seal has been called; Register* methods are
// init-time only and panic if called after sealing, matching the "sealed
// before first use" lifecycle rather than silently corrupting a table a
// concurrent reader might be iterating.
type Registry struct {
	mu     sync.RWMutex
	sealed bool

	functionTemplates  map[string][]typing.FunctionTemplate
	attributeTemplates map[string][]typing.AttributeResolver
	globals            map[string]numtypes.Type
}

// New returns an empty, unsealed Registry.
func New() *Registry {
	return &Registry{
		functionTemplates:  make(map[string][]typing.FunctionTemplate),
		attributeTemplates: make(map[string][]typing.AttributeResolver),
		globals:            make(map[string]numtypes.Type),
	}
}

func (r *Registry) checkUnsealed(what string) {
	if r.sealed {
		panic("registry: " + what + " called after Seal; registration is init-time only")
	}
}

// RegisterFunctionTemplate appends a template under opKey. Multiple
// templates may share a key (e.g. "getiter" has both a ConcreteTemplate
// over range states and an AbstractTemplate over uniform tuples); they are
// tried in registration order until one reports a match.
func (r *Registry) RegisterFunctionTemplate(opKey string, tmpl typing.FunctionTemplate) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkUnsealed("RegisterFunctionTemplate")
	r.functionTemplates[opKey] = append(r.functionTemplates[opKey], tmpl)
}

// RegisterAttributeTemplate appends an attribute resolver under ownerKey
// (see OwnerKey for how a Type maps to that key).
func (r *Registry) RegisterAttributeTemplate(ownerKey string, tmpl typing.AttributeResolver) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkUnsealed("RegisterAttributeTemplate")
	r.attributeTemplates[ownerKey] = append(r.attributeTemplates[ownerKey], tmpl)
}

// RegisterGlobal binds a runtime value identity (e.g. "range", "math",
// "math.fabs") to its Type, for LookupGlobal.
func (r *Registry) RegisterGlobal(identity string, t numtypes.Type) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkUnsealed("RegisterGlobal")
	r.globals[identity] = t
}

// Seal freezes the registry. Subsequent Register* calls panic; reads are
// safe for concurrent use from that point on.
func (r *Registry) Seal() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sealed = true
}

// ResolveFunction is the propagation pass's entry point (spec.md section 6,
// "Exposed"). It tries every template registered under opKey in order and
// returns the first match. A nil, nil result is NoMatchingOverload — an
// absent result the caller may recover from by trying a different
// operation key, not an error (spec.md section 7).
func (r *Registry) ResolveFunction(ctx *typing.Context, opKey string, args []numtypes.Type) (*typing.Signature, error) {
	r.mu.RLock()
	templates := r.functionTemplates[opKey]
	r.mu.RUnlock()

	for _, tmpl := range templates {
		sig, err := tmpl.Apply(ctx, args)
		if err != nil {
			return nil, err
		}
		if sig != nil {
			return sig, nil
		}
	}
	return nil, nil
}

// ResolveAttribute is the propagation pass's entry point for attribute
// access. It looks up owner's attribute-owner key, then tries every
// resolver registered for it in order, returning the first match.
// UnknownAttribute from one resolver does not stop the search; any other
// error does.
func (r *Registry) ResolveAttribute(owner numtypes.Type, name string) (numtypes.Type, error) {
	key, ok := OwnerKey(owner)
	if !ok {
		return nil, &typing.UnknownAttribute{Owner: owner, Name: name}
	}

	r.mu.RLock()
	resolvers := r.attributeTemplates[key]
	r.mu.RUnlock()

	for _, resolver := range resolvers {
		t, err := resolver.Resolve(owner, name)
		if err == nil {
			return t, nil
		}
		if !isUnknownAttribute(err) {
			return nil, err
		}
	}
	return nil, &typing.UnknownAttribute{Owner: owner, Name: name}
}

// LookupModuleAttr resolves an attribute on a module value — the "getattr
// fallback key" from SPEC_FULL.md section D.5, used for module members
// like math.fabs or the array module's ufuncs. It is a thin wrapper over
// ResolveAttribute, whose OwnerKey maps a module to "module:<identity>".
func (r *Registry) LookupModuleAttr(module numtypes.Module, name string) (numtypes.Type, error) {
	return r.ResolveAttribute(module, name)
}

// LookupGlobal recognises references to builtin callables/modules in the
// bytecode stream (spec.md section 6).
func (r *Registry) LookupGlobal(identity string) (numtypes.Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.globals[identity]
	return t, ok
}

func isUnknownAttribute(err error) bool {
	_, ok := err.(*typing.UnknownAttribute)
	return ok
}

// OwnerKey maps a Type to the attribute-template table key spec.md section
// 3 calls "owning type": a family identifier, not a concrete instantiation
// (every 2-D float32 array shares the same "Array" attribute templates
// regardless of layout).
func OwnerKey(t numtypes.Type) (string, bool) {
	switch v := t.(type) {
	case numtypes.Array:
		return "Array", true
	case numtypes.Basic:
		return v.Name, true
	case numtypes.Module:
		return "module:" + v.Identity, true
	default:
		return "", false
	}
}
