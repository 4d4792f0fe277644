// Package config holds process-wide toggles set once at startup, the same
// role internal/config plays in the teacher repo (config.IsTestMode,
// config.IsLSPMode there). Nothing in internal/typing or internal/registry
// reads this package directly — it's consumed by internal/catalogue, which
// decides what to register based on it.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// IsTestMode mirrors the teacher's analogous flag: set once by test setup
// to get deterministic behavior where the catalogue would otherwise vary
// (none of the catalogue currently varies by it, but the hook exists for
// future normalization the way typesystem.TVar.String() uses it today).
var IsTestMode = false

// Flags are the feature toggles a deployment can override via YAML. The
// zero value is the default, conservative catalogue described in spec.md.
type Flags struct {
	// EnableArrayBroadcasting turns on a relaxed array ufunc dtype check
	// that allows vx.dtype, wy.dtype and out.dtype to differ as long as the
	// oracle considers them mutually compatible, instead of requiring the
	// guard in spec.md section 4.5/9 verbatim. Default false: the shipped
	// catalogue preserves the source's guard exactly, per the Open
	// Question in spec.md section 9.
	EnableArrayBroadcasting bool `yaml:"enable_array_broadcasting"`
}

// Load reads Flags from a YAML file. A missing file is not an error — it
// just means the defaults apply, the same way an embedder who never writes
// numjit.yaml gets spec.md's catalogue unchanged.
func Load(path string) (Flags, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Flags{}, nil
		}
		return Flags{}, fmt.Errorf("config: reading %s: %w", path, err)
	}
	var flags Flags
	if err := yaml.Unmarshal(data, &flags); err != nil {
		return Flags{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return flags, nil
}
