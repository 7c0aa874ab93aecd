package sso

import "unsafe"

func s2b(str string) []byte {
	return unsafe.Slice(unsafe.StringData(str), len(str))
}

func b2s(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}
