// Package numjit is the public embeddable API for the typing template and
// overload resolution core (spec.md section 6, "Exposed"): resolve_function,
// resolve_attribute, and the registration calls a host compiler uses to
// extend the builtin catalogue before first use. The shape mirrors the
// teacher repo's pkg/embed.VM: a thin wrapper that owns the heavier internal
// machinery and exposes only the calls an embedder needs.
package numjit

import (
	"fmt"
	"sync"

	"github.com/Postur/numba/internal/cache"
	"github.com/Postur/numba/internal/catalogue"
	"github.com/Postur/numba/internal/compat"
	"github.com/Postur/numba/internal/config"
	"github.com/Postur/numba/internal/numtypes"
	"github.com/Postur/numba/internal/registry"
	"github.com/Postur/numba/internal/trace"
	"github.com/Postur/numba/internal/typing"
)

// defaultConfigPath is the YAML file New loads at bootstrap, the same way
// the teacher's internal/ext/config.go reads its own file at startup
// (SPEC_FULL.md section A). A missing file is not an error; WithFlags or
// WithConfigPath both override whatever it loaded.
const defaultConfigPath = "numjit.yaml"

// Resolver is the compiler-facing contract this package implements; a host
// that wants to substitute its own resolution strategy (e.g. for testing)
// can depend on this instead of *VM.
type Resolver interface {
	ResolveFunction(opKey string, args []numtypes.Type) (*typing.Signature, error)
	ResolveAttribute(owner numtypes.Type, name string) (numtypes.Type, error)
	LookupGlobal(identity string) (numtypes.Type, bool)
}

// VM owns a bootstrapped registry, its context, and the optional resolution
// cache. It is the top-level handle an embedder constructs once per
// compilation process.
type VM struct {
	reg      *registry.Registry
	ctx      *typing.Context
	cache    *cache.Cache
	sealOnce sync.Once
}

// Option configures New.
type Option func(*vmConfig)

type vmConfig struct {
	oracle     compat.Oracle
	flags      config.Flags
	flagsSet   bool
	cachePath  string
	configPath string
}

// WithOracle overrides the default NumericOracle, for embedders typing a
// different value domain.
func WithOracle(oracle compat.Oracle) Option {
	return func(c *vmConfig) { c.oracle = oracle }
}

// WithFlags overrides the default (conservative) feature flags, taking
// precedence over numjit.yaml (or whatever WithConfigPath names).
func WithFlags(flags config.Flags) Option {
	return func(c *vmConfig) { c.flags = flags; c.flagsSet = true }
}

// WithConfigPath overrides the YAML file New loads its default Flags from
// (defaultConfigPath, "numjit.yaml", otherwise). Has no effect if WithFlags
// is also given.
func WithConfigPath(path string) Option {
	return func(c *vmConfig) { c.configPath = path }
}

// WithCachePath enables the on-disk resolution cache at path; an empty
// path (the default) runs with an in-memory cache.
func WithCachePath(path string) Option {
	return func(c *vmConfig) { c.cachePath = path }
}

// New builds a VM with the registry populated from spec.md section 4.5's
// builtin catalogue, but not yet sealed: a host compiler that needs to
// extend the catalogue (register_function_template / register_attribute_
// template / register_global in spec.md section 6) calls RegisterXxx on
// the returned VM before its first resolution, then Seal. Calling Seal is
// optional — the first ResolveFunction/ResolveAttribute call seals
// implicitly, matching the teacher's lazily-finalized builtins table.
//
// Unless WithFlags is given, New loads its Flags from numjit.yaml (or
// WithConfigPath's override) at bootstrap, same as the teacher's own
// internal/ext/config.go-style startup config file; a missing file just
// means the conservative defaults apply.
func New(opts ...Option) (*VM, error) {
	cfg := vmConfig{oracle: compat.NumericOracle{}, configPath: defaultConfigPath}
	for _, opt := range opts {
		opt(&cfg)
	}

	if !cfg.flagsSet {
		loaded, err := config.Load(cfg.configPath)
		if err != nil {
			return nil, fmt.Errorf("numjit: loading %s: %w", cfg.configPath, err)
		}
		cfg.flags = loaded
	}

	reg := registry.New()
	catalogue.Populate(reg, cfg.oracle, cfg.flags)

	c, err := cache.Open(cfg.cachePath)
	if err != nil {
		return nil, err
	}

	return &VM{
		reg:   reg,
		ctx:   catalogue.NewContext(cfg.oracle),
		cache: c,
	}, nil
}

// RegisterFunctionTemplate extends the catalogue with a host-supplied
// template. Init-time only: panics if called after Seal (or after the
// first resolution, which seals implicitly).
func (v *VM) RegisterFunctionTemplate(opKey string, tmpl typing.FunctionTemplate) {
	v.reg.RegisterFunctionTemplate(opKey, tmpl)
}

// RegisterAttributeTemplate extends the catalogue with a host-supplied
// attribute resolver. Init-time only, same lifecycle as
// RegisterFunctionTemplate.
func (v *VM) RegisterAttributeTemplate(ownerKey string, tmpl typing.AttributeResolver) {
	v.reg.RegisterAttributeTemplate(ownerKey, tmpl)
}

// RegisterGlobal binds a runtime value identity to a Type. Init-time only,
// same lifecycle as RegisterFunctionTemplate.
func (v *VM) RegisterGlobal(identity string, t numtypes.Type) {
	v.reg.RegisterGlobal(identity, t)
}

// Seal freezes the registry. A host that does not call this explicitly
// gets it for free on the first ResolveFunction or ResolveAttribute call.
func (v *VM) Seal() {
	v.sealOnce.Do(v.reg.Seal)
}

// Close releases the cache's underlying handle.
func (v *VM) Close() error {
	return v.cache.Close()
}

// ResolveFunction resolves opKey against args, the same entry point
// spec.md section 6 describes. Every call is tagged with a fresh trace.ID
// so a failed resolution's AmbiguousOverload can be correlated by the
// caller with its own logging. It first consults the resolution cache —
// purely for hit/miss accounting and warm-start hinting, per cache.go's
// own contract that the real resolver's result always wins when present —
// then resolves for real and memoizes the outcome for the next call shaped
// exactly like this one.
func (v *VM) ResolveFunction(opKey string, args []numtypes.Type) (*typing.Signature, error) {
	v.Seal()
	id := trace.New()

	v.cache.Lookup(opKey, args)

	sig, err := v.reg.ResolveFunction(v.ctx, opKey, args)
	if err != nil {
		if ambiguous, ok := err.(*typing.AmbiguousOverload); ok {
			return nil, &TracedAmbiguity{Trace: id, AmbiguousOverload: ambiguous}
		}
		return nil, err
	}
	if sig != nil {
		_ = v.cache.Store(opKey, args, sig.Describe())
	}
	return sig, nil
}

// ResolveAttribute resolves a named attribute on owner.
func (v *VM) ResolveAttribute(owner numtypes.Type, name string) (numtypes.Type, error) {
	v.Seal()
	return v.reg.ResolveAttribute(owner, name)
}

// LookupGlobal recognises a builtin value identity (spec.md section 6).
func (v *VM) LookupGlobal(identity string) (numtypes.Type, bool) {
	return v.reg.LookupGlobal(identity)
}

// CacheStats reports the resolution cache's hit/miss counters.
func (v *VM) CacheStats() cache.Stats {
	return v.cache.Stats()
}

// TracedAmbiguity wraps an AmbiguousOverload with the trace ID minted for
// the call that produced it, so a host compiler can log the two together.
type TracedAmbiguity struct {
	Trace ID
	*typing.AmbiguousOverload
}

// ID re-exports trace.ID so callers of this package never need to import
// internal/trace directly.
type ID = trace.ID
