package imui

import "fmt"

// Version is the library version string. Backends compiled against a
// different core must not be mixed with it, so every backend calls
// AssertVersion from its Init.
const Version = "1.4.0"

// CheckVersion panics if the caller was compiled against a different
// library version than the one linked in. Call it once at startup,
// before Init.
func CheckVersion(expected string) {
	if expected != Version {
		panic(fmt.Sprintf("imui: version mismatch: compiled against %q, linked %q", expected, Version))
	}
}

// AssertVersion is the backend-side counterpart of CheckVersion.
// Backend packages call it during their Init so a stale backend build
// fails loudly instead of corrupting frame state.
func AssertVersion(backendName, expected string) error {
	if expected != Version {
		return fmt.Errorf("imui: backend %s built against version %q, core is %q", backendName, expected, Version)
	}
	return nil
}
