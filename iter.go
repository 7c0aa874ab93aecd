package sso

import "iter"

// All yields index and byte pairs from the first byte to the last.
func (s *String[A]) All() iter.Seq2[int, byte] {
	return func(yield func(int, byte) bool) {
		for i, c := range s.Bytes() {
			if !yield(i, c) {
				return
			}
		}
	}
}

// Backward yields index and byte pairs from the last byte to the first.
func (s *String[A]) Backward() iter.Seq2[int, byte] {
	return func(yield func(int, byte) bool) {
		b := s.Bytes()
		for i := len(b) - 1; i >= 0; i-- {
			if !yield(i, b[i]) {
				return
			}
		}
	}
}
