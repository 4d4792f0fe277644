package typing

// Rating ranks a candidate signature's implicit conversions. Comparison is
// lexicographic with the worst field first: unsafe conversions dominate
// because they can lose information, then safe conversions, then
// promotions are the last-resort tie-break (spec.md section 4.2).
type Rating struct {
	Unsafe  int
	Safe    int
	Promote int
}

// Less reports whether r ranks strictly better than o.
func (r Rating) Less(o Rating) bool {
	if r.Unsafe != o.Unsafe {
		return r.Unsafe < o.Unsafe
	}
	if r.Safe != o.Safe {
		return r.Safe < o.Safe
	}
	return r.Promote < o.Promote
}

// Equal reports a tie: identical score on every field.
func (r Rating) Equal(o Rating) bool {
	return r == o
}

// IsExact is the zero rating: every argument matched exactly.
func (r Rating) IsExact() bool {
	return r == Rating{}
}
