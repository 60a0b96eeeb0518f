package env

import (
	"os"
	"strings"
)

// LookupFunc retrieves the value of the environment variable named by key.
// It reports whether the variable is present, with the same contract as
// os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// OS returns a LookupFunc backed by the live process environment.
func OS() LookupFunc {
	return os.LookupEnv
}

// FromMap returns a LookupFunc backed by a copy of vars.
func FromMap(vars map[string]string) LookupFunc {
	snapshot := make(map[string]string, len(vars))
	for k, v := range vars {
		snapshot[k] = v
	}
	return func(key string) (string, bool) {
		v, ok := snapshot[key]
		return v, ok
	}
}

// Snapshot returns a LookupFunc over environ-style "KEY=value" entries, such
// as the result of os.Environ. Entries without '=' are ignored and later
// entries win over earlier ones.
func Snapshot(environ []string) LookupFunc {
	vars := make(map[string]string, len(environ))
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			continue
		}
		vars[key] = value
	}
	return FromMap(vars)
}
