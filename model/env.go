package model

import (
	"strconv"
	"strings"
)

// Lookup reads a named environment variable, reporting whether it is set.
// os.LookupEnv satisfies it. Injecting the lookup keeps resolution testable
// without mutating process state.
type Lookup func(name string) (string, bool)

// lookupLimit reads an environment variable as a non-negative integer.
// Unset, malformed, or negative values report false.
func lookupLimit(env Lookup, name string) (int, bool) {
	v, ok := env(name)
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseUint(v, 10, 63)
	if err != nil {
		return 0, false
	}
	return int(n), true
}

// lookupFloat reads an environment variable as a float. Unset or malformed
// values (including empty strings) report false.
func lookupFloat(env Lookup, name string) (float64, bool) {
	v, ok := env(name)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// lookupBool reads an environment flag. Only "1" and case-insensitive
// "true" are truthy; everything else, including absence, is false.
func lookupBool(env Lookup, name string) bool {
	v, ok := env(name)
	if !ok {
		return false
	}
	return v == "1" || strings.EqualFold(v, "true")
}
