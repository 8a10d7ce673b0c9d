//go:build rips_debug

package rips

import "fmt"

// invariantViolation reports an internal invariant failure. In debug
// builds (tag rips_debug) it panics immediately so the failure surfaces
// at the call site instead of propagating as a plain error; release
// builds use invariantViolation's twin in invariant_release.go, which
// just wraps and returns.
func invariantViolation(format string, args ...any) error {
	panic(fmt.Sprintf("rips: internal invariant violated: "+format, args...))
}
