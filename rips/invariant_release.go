//go:build !rips_debug

package rips

import "fmt"

// invariantViolation reports an internal invariant failure as a wrapped
// error. See invariant_debug.go for the debug-build (rips_debug tag)
// variant, which panics instead.
func invariantViolation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInternalInvariant, fmt.Sprintf(format, args...))
}
