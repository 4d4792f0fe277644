package typing

import (
	"sort"

	"github.com/Postur/numba/internal/compat"
	"github.com/Postur/numba/internal/numtypes"
)

// resolve implements spec.md section 4.3's shared resolver:
//  1. filter candidates by arity,
//  2. rate each surviving candidate per-argument, dropping any with an
//     incompatible argument,
//  3. sort survivors ascending by score,
//  4. fail with AmbiguousOverload if the best two tie,
//  5. return the single best candidate, or (nil, nil) if none survived.
func resolve(ctx *Context, key string, args []numtypes.Type, cases []Signature) (*Signature, error) {
	type candidate struct {
		sig    Signature
		rating Rating
	}

	var candidates []candidate
	for _, c := range cases {
		if len(c.Args) != len(args) {
			continue
		}
		rating, matched, err := rateArgs(ctx, args, c.Args)
		if err != nil {
			return nil, err
		}
		if !matched {
			continue
		}
		candidates = append(candidates, candidate{sig: c, rating: rating})
	}

	if len(candidates) == 0 {
		return nil, nil
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].rating.Less(candidates[j].rating)
	})

	if len(candidates) > 1 && candidates[0].rating.Equal(candidates[1].rating) {
		best := candidates[0].rating
		var tied []Signature
		for _, c := range candidates {
			if c.rating.Equal(best) {
				tied = append(tied, c.sig)
			}
		}
		return nil, &AmbiguousOverload{Key: key, Args: args, Candidates: tied}
	}

	best := candidates[0].sig
	return &best, nil
}

// rateArgs scores one candidate's formal parameters against the actual
// argument types. It returns matched=false (not an error) the moment any
// pair is incompatible, per spec.md's table in section 4.2.
func rateArgs(ctx *Context, actuals, formals []numtypes.Type) (Rating, bool, error) {
	var r Rating
	for i, actual := range actuals {
		formal := formals[i]
		switch ctx.Oracle.TypeCompatibility(actual, formal) {
		case compat.Exact:
		case compat.Promote:
			r.Promote++
		case compat.Safe:
			r.Safe++
		case compat.Unsafe:
			r.Unsafe++
		case compat.Incompatible:
			return Rating{}, false, nil
		default:
			return Rating{}, false, &InternalInvariant{Detail: "oracle returned an unrecognised verdict"}
		}
	}
	return r, true, nil
}
