// Package trace supplies the resolution trace ID pkg/numjit mints for every
// resolve_function call, so an embedding compiler that logs its own call
// sites can correlate an AmbiguousOverload with a specific piece of
// bytecode. resolve_attribute calls carry no trace ID. This is a
// domain-stack addition (SPEC_FULL.md section B); the resolution algorithm
// itself is unaware of trace IDs.
package trace

import "github.com/google/uuid"

// ID identifies one resolve_function call.
type ID string

// New mints a fresh trace ID.
func New() ID {
	return ID(uuid.NewString())
}

// Zero reports whether id is the unset value.
func (id ID) Zero() bool {
	return id == ""
}

func (id ID) String() string {
	return string(id)
}
