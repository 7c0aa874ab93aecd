package sso

import (
	"bytes"
	"strings"
)

// Compare orders two strings of any inline capacity byte-wise. The result is
// 0 if a == b, -1 if a < b, and +1 if a > b.
func Compare[A, B Array](a *String[A], b *String[B]) int {
	if same(a, b) {
		return 0
	}
	return bytes.Compare(a.Bytes(), b.Bytes())
}

// Equal reports whether a and b hold the same bytes.
func Equal[A, B Array](a *String[A], b *String[B]) bool {
	if a.length != b.length {
		return false
	}
	return same(a, b) || bytes.Equal(a.Bytes(), b.Bytes())
}

// Less reports whether a orders before b.
func Less[A, B Array](a *String[A], b *String[B]) bool {
	return Compare(a, b) < 0
}

// Compare orders the content of s against b.
func (s *String[A]) Compare(b []byte) int {
	return bytes.Compare(s.Bytes(), b)
}

// CompareString orders the content of s against str.
func (s *String[A]) CompareString(str string) int {
	return strings.Compare(b2s(s.Bytes()), str)
}

// Equal reports whether s holds exactly b.
func (s *String[A]) Equal(b []byte) bool {
	return bytes.Equal(s.Bytes(), b)
}

// EqualString reports whether s holds exactly str.
func (s *String[A]) EqualString(str string) bool {
	return b2s(s.Bytes()) == str
}
