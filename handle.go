package sqlitekit

// CloseFunc releases the native resource behind a handle.
type CloseFunc func(ptr uintptr)

// Handle owns one native pointer. Its close strategy runs exactly once,
// when Reset is called on a non-zero pointer; transferring ownership out
// (Release, Swap) leaves the source empty so the strategy never runs for
// a pointer that moved away.
//
// The zero Handle is valid and empty. Handle is not safe for concurrent
// use; neither are the native objects it guards.
type Handle struct {
	ptr   uintptr
	close CloseFunc
}

// NewHandle returns an empty handle that will release its future pointer
// with close.
func NewHandle(close CloseFunc) Handle {
	return Handle{close: close}
}

// Set releases the current pointer, if any, and returns the address of
// the now-empty slot so a native out-parameter can write straight into
// it.
func (h *Handle) Set() *uintptr {
	h.Reset(0)
	return &h.ptr
}

// Get returns the owned pointer without transferring ownership.
func (h *Handle) Get() uintptr {
	return h.ptr
}

// Valid reports whether the handle currently owns a pointer.
func (h *Handle) Valid() bool {
	return h.ptr != 0
}

// Reset replaces the owned pointer with ptr, running the close strategy
// on the old pointer first. Reset(0) just releases.
func (h *Handle) Reset(ptr uintptr) {
	if h.ptr != 0 && h.close != nil {
		h.close(h.ptr)
	}
	h.ptr = ptr
}

// Release transfers the pointer out of the handle. The close strategy
// does not run; the caller owns the result.
func (h *Handle) Release() uintptr {
	p := h.ptr
	h.ptr = 0
	return p
}

// Swap moves other's pointer and close strategy into h, releasing
// whatever h held. other is left empty.
func (h *Handle) Swap(other *Handle) {
	if h.ptr != 0 && h.close != nil {
		h.close(h.ptr)
	}
	h.ptr = other.ptr
	h.close = other.close
	other.ptr = 0
}
