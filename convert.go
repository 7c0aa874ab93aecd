package sso

import "unsafe"

func same[A, B Array](a *String[A], b *String[B]) bool {
	return unsafe.Pointer(a) == unsafe.Pointer(b)
}

// Convert returns an independent copy of src with the inline capacity of A.
func Convert[A, B Array](src *String[B]) (*String[A], error) {
	return New[A](src.Bytes())
}

// AssignFrom replaces the content of dst with a copy of src. Assigning a
// String to itself is a no-op.
func AssignFrom[A, B Array](dst *String[A], src *String[B]) error {
	if same(dst, src) {
		return nil
	}
	return dst.Assign(src.Bytes())
}

// AppendFrom adds the content of src after the content of dst. src may be dst.
func AppendFrom[A, B Array](dst *String[A], src *String[B]) error {
	return dst.Append(src.Bytes())
}

// MoveFrom transfers the content of src into dst and leaves src empty and
// inline. A heap buffer of src changes owner without copying, and the old
// heap buffer of dst is released. Inline content is copied by the capacity
// rule of dst, which only allocates when len(B) > len(A). On error both
// strings are unchanged. Moving a String into itself is a no-op.
func MoveFrom[A, B Array](dst *String[A], src *String[B]) error {
	if same(dst, src) {
		return nil
	}
	if src.mode == modeHeap {
		release(dst.setHeap(src.setInline()))
		dst.length = src.length
	} else if err := dst.Assign(src.Bytes()); err != nil {
		return err
	}
	src.length = 0
	src.terminate()
	return nil
}
