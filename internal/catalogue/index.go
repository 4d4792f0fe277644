// Package catalogue is the builtin catalogue from spec.md section 4.5: one
// file per semantic group, each a table of FunctionTemplate/
// AttributeTemplate registrations, mirroring how the teacher repo's
// internal/modules/virtual_packages_*.go splits its builtin module
// catalogue one file per virtual package.
package catalogue

import "github.com/Postur/numba/internal/numtypes"

// normalizeIndex implements spec.md section 4.5's index normalisation,
// used by both getitem and setitem over arrays and tuples:
//   - UniTuple(_, n)      -> UniTuple(intp, n)
//   - slice2_type/slice3_type -> themselves
//   - anything else       -> intp
//
// Testable property 6 (idempotence) holds by construction: every branch
// maps into a fixed point of itself.
func normalizeIndex(idx numtypes.Type) numtypes.Type {
	if tup, ok := numtypes.IsUniTuple(idx); ok {
		return numtypes.UniTuple{Dtype: numtypes.Intp, Count: tup.Count}
	}
	if idx.Equal(numtypes.Slice2Type) {
		return numtypes.Slice2Type
	}
	if idx.Equal(numtypes.Slice3Type) {
		return numtypes.Slice3Type
	}
	return numtypes.Intp
}
