package sso

import "io"

// String returns a copy of the content.
func (s *String[A]) String() string {
	return string(s.Bytes())
}

// WriteTo writes the content to w.
func (s *String[A]) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(s.Bytes())
	return int64(n), err
}
