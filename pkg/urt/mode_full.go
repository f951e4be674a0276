//go:build !urt_minimal

package urt

// Minimal reports whether the package was built for a constrained runtime.
const Minimal = false
