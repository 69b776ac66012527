// Package capi exposes the SQLite C API surface this module depends on.
// It is a mechanical binding: one Go function per C entry point, native
// handles as uintptr values, and raw integer status codes with no error
// interpretation. Ownership, error raising, and iteration protocols live
// one layer up, in the root package.
//
// The engine itself is the pure Go translation of the SQLite amalgamation
// from modernc.org/sqlite/lib, driven through a modernc.org/libc thread
// state.
//
//   - https://www.sqlite.org/cintro.html
//   - https://www.sqlite.org/c3ref/intro.html
package capi
