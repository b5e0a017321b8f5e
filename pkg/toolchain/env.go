package toolchain

import (
	"sort"
	"strings"
)

// Env is a set of environment variable overrides applied to the child
// processes a toolchain spawns. Overrides are merged over the inherited
// environment instead of mutating the ambient process state, so their
// effect stays scoped to the commands they are passed to.
type Env map[string]string

// Merge returns a copy of base with the overrides applied. A variable
// present in both keeps the override's value. Overrides are appended in
// sorted key order so the result is deterministic.
func (e Env) Merge(base []string) []string {
	if len(e) == 0 {
		return base
	}

	merged := make([]string, 0, len(base)+len(e))

	for _, kv := range base {
		key, _, ok := strings.Cut(kv, "=")
		if ok {
			if _, overridden := e[key]; overridden {
				continue
			}
		}

		merged = append(merged, kv)
	}

	keys := make([]string, 0, len(e))
	for key := range e {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		merged = append(merged, key+"="+e[key])
	}

	return merged
}
