// Package sso implements a small-string-optimized byte container.
//
// A String keeps short content in an inline array that lives inside the
// String value and moves it to a heap buffer from the package Allocator once
// the content (plus a trailing zero byte) no longer fits. Every mutation keeps
// a zero byte right after the content, so CString can be handed to consumers
// of null-terminated strings without copying.
//
// The zero value is an empty, inline String ready to use. A String must not be
// copied by value after first use; use Clone, Convert or MoveFrom instead.
package sso

import (
	"unsafe"
)

// Array is the set of inline array types a String can be parameterized with.
// The array length is the inline capacity, terminator included.
type Array interface {
	~[8]byte | ~[10]byte | ~[12]byte | ~[16]byte | ~[20]byte | ~[24]byte |
		~[32]byte | ~[40]byte | ~[48]byte | ~[64]byte | ~[128]byte | ~[256]byte
}

type mode uint8

const (
	modeInline mode = iota
	modeHeap
)

// String is a growable byte sequence with inline storage of len(A) bytes.
// Inline capacities are limited to the array sizes listed in Array; add a
// case there to support another one.
type String[A Array] struct {
	mode   mode
	length int
	inline A
	heap   []byte // nil unless mode == modeHeap, len(heap) is the heap capacity.
}

// InlineCap returns the inline capacity of String[A], terminator included.
func InlineCap[A Array]() int {
	var a A
	return len(a)
}

// New returns a String holding a copy of b.
func New[A Array](b []byte) (*String[A], error) {
	s := new(String[A])
	if err := s.Assign(b); err != nil {
		return nil, err
	}
	return s, nil
}

// NewString returns a String holding a copy of str.
func NewString[A Array](str string) (*String[A], error) {
	return New[A](s2b(str))
}

func (s *String[A]) inlineBuf() []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(&s.inline)), len(s.inline))
}

// buf returns the active storage.
func (s *String[A]) buf() []byte {
	if s.mode == modeHeap {
		return s.heap
	}
	return s.inlineBuf()
}

// setInline switches to inline storage and returns the heap buffer to release.
func (s *String[A]) setInline() (old []byte) {
	old = s.heap
	s.mode = modeInline
	s.heap = nil
	return old
}

// setHeap installs b as heap storage and returns the previous heap buffer.
func (s *String[A]) setHeap(b []byte) (old []byte) {
	old = s.heap
	s.mode = modeHeap
	s.heap = b
	return old
}

func (s *String[A]) terminate() {
	s.buf()[s.length] = 0
}

// Len returns the number of content bytes.
func (s *String[A]) Len() int { return s.length }

// Empty reports whether the String has no content.
func (s *String[A]) Empty() bool { return s.length == 0 }

// Cap returns the size of the active storage, terminator slot included.
func (s *String[A]) Cap() int { return len(s.buf()) }

// Inline reports whether the content lives in the inline array.
func (s *String[A]) Inline() bool { return s.mode == modeInline }

// Bytes returns the content. The view is never nil and stays valid until the
// next mutation.
func (s *String[A]) Bytes() []byte {
	return s.buf()[:s.length:s.length]
}

// CString returns the content followed by its zero terminator.
func (s *String[A]) CString() []byte {
	return s.buf()[: s.length+1 : s.length+1]
}

// At returns the byte at index i. It panics if i is out of [0, Len()).
func (s *String[A]) At(i int) byte {
	return s.Bytes()[i]
}

// SetAt replaces the byte at index i. It panics if i is out of [0, Len()).
func (s *String[A]) SetAt(i int, c byte) {
	s.Bytes()[i] = c
}

// Front returns the first byte. It panics on an empty String.
func (s *String[A]) Front() byte {
	return s.Bytes()[0]
}

// Back returns the last byte. It panics on an empty String.
func (s *String[A]) Back() byte {
	return s.Bytes()[s.length-1]
}

// Assign replaces the content with a copy of b. b may alias the receiver.
func (s *String[A]) Assign(b []byte) error {
	required := len(b) + 1

	if required <= len(s.inline) {
		copy(s.inlineBuf(), b)
		release(s.setInline())

	} else if s.mode == modeHeap && len(s.heap) >= required {
		copy(s.heap, b)

	} else {
		nb, err := alloc(required)
		if err != nil {
			return err
		}
		copy(nb, b)
		release(s.setHeap(nb))
	}

	s.length = len(b)
	s.terminate()
	return nil
}

// AssignString replaces the content with a copy of str.
func (s *String[A]) AssignString(str string) error {
	return s.Assign(s2b(str))
}

// Append adds b after the current content. b may alias the receiver.
// Heap growth is exact-fit; call Reserve beforehand for amortized growth.
func (s *String[A]) Append(b []byte) error {
	required := s.length + len(b) + 1

	switch {
	case s.mode == modeInline && required <= len(s.inline):
		copy(s.inlineBuf()[s.length:], b)

	case s.mode == modeHeap && len(s.heap) >= required:
		copy(s.heap[s.length:], b)

	case required <= len(s.inline):
		// heap buffer smaller than the inline array, e.g. moved in from a
		// String with a smaller inline capacity.
		ib := s.inlineBuf()
		copy(ib, s.heap[:s.length])
		copy(ib[s.length:], b)
		release(s.setInline())

	default:
		nb, err := alloc(required)
		if err != nil {
			return err
		}
		copy(nb, s.buf()[:s.length])
		copy(nb[s.length:], b)
		release(s.setHeap(nb))
	}

	s.length += len(b)
	s.terminate()
	return nil
}

// AppendString adds str after the current content.
func (s *String[A]) AppendString(str string) error {
	return s.Append(s2b(str))
}

// AppendByte adds c after the current content.
func (s *String[A]) AppendByte(c byte) error {
	return s.Append([]byte{c})
}

// Reserve makes room for n bytes, terminator included. It only ever grows a
// heap buffer; sizes within the inline capacity are a no-op.
func (s *String[A]) Reserve(n int) error {
	if n <= len(s.inline) || n <= s.Cap() {
		return nil
	}
	nb, err := alloc(n)
	if err != nil {
		return err
	}
	copy(nb, s.CString())
	release(s.setHeap(nb))
	return nil
}

// ShrinkToFit releases unused heap space. Content that fits the inline array
// is moved back into it and the heap buffer is released.
func (s *String[A]) ShrinkToFit() error {
	if s.mode != modeHeap {
		return nil
	}
	required := s.length + 1

	if required <= len(s.inline) {
		copy(s.inlineBuf(), s.heap[:required])
		release(s.setInline())
		return nil
	}
	if len(s.heap) == required {
		return nil
	}
	nb, err := alloc(required)
	if err != nil {
		return err
	}
	copy(nb, s.heap[:required])
	release(s.setHeap(nb))
	return nil
}

// Release frees the heap buffer, if any, and leaves an empty inline String.
// It is safe to call more than once.
func (s *String[A]) Release() {
	release(s.setInline())
	s.length = 0
	s.terminate()
}

// Clone returns an independent copy of s.
func (s *String[A]) Clone() (*String[A], error) {
	return New[A](s.Bytes())
}

// Move returns a new String that takes over the content of s and leaves s
// empty. A heap buffer changes owner without copying.
func (s *String[A]) Move() *String[A] {
	dst := new(String[A])
	// same capacity and an empty destination: MoveFrom never allocates here.
	if err := MoveFrom(dst, s); err != nil {
		panic(err)
	}
	return dst
}

// Concat returns a new String holding the content of s followed by b.
func (s *String[A]) Concat(b []byte) (*String[A], error) {
	dst := new(String[A])
	if err := dst.Reserve(s.length + len(b) + 1); err != nil {
		return nil, err
	}
	if err := dst.Append(s.Bytes()); err != nil {
		return nil, err
	}
	if err := dst.Append(b); err != nil {
		dst.Release()
		return nil, err
	}
	return dst, nil
}

// ConcatString returns a new String holding the content of s followed by str.
func (s *String[A]) ConcatString(str string) (*String[A], error) {
	return s.Concat(s2b(str))
}
