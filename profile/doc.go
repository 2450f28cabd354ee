// Package profile wires optional runtime profiling behind the pprof build
// tag.
//
// Build with -tags pprof to enable the --pprof-mode and --pprof-dir flags of
// the iskierka command. Without the tag every operation here is a no-op, so
// callers never need their own conditional compilation.
package profile
