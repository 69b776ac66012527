package capi

import (
	"unsafe"

	"modernc.org/libc"
)

// cFuncPointer converts a Go function into a C function pointer the
// engine can call back. It relies on the libc calling convention where a
// function value is a pointer to a struct whose first field is the code
// pointer.
func cFuncPointer[T any](f T) uintptr {
	// This assumes the memory representation described in
	// https://golang.org/s/go11func.
	//
	// cFuncPointer does not panic if memory organization changes, but
	// the pointer will be wrong.
	fn := f
	return *(*uintptr)(unsafe.Pointer(&fn))
}

// freeFuncPtr is passed to the engine as a bound value destructor so the
// engine frees the copies we hand it once it is done with them.
var freeFuncPtr = cFuncPointer(libc.Xfree)
