package sso

import (
	"github.com/xgzlucario/sso/internal/pkg"
)

// DefaultMaxAlloc is the largest heap buffer the default Allocator hands out.
const DefaultMaxAlloc = 1 << 30

// Allocator supplies heap buffers to strings that outgrow their inline array.
//
// Alloc must return a buffer of exactly n bytes or an error wrapping
// ErrAllocation. Free receives every buffer exactly once, when its String no
// longer uses it.
type Allocator interface {
	Alloc(n int) ([]byte, error)
	Free(b []byte)
}

var allocator Allocator = pkg.NewAllocator(DefaultMaxAlloc)

// SetAllocator replaces the package allocator and returns the previous one.
// It must not run concurrently with String operations.
func SetAllocator(a Allocator) (prev Allocator) {
	prev, allocator = allocator, a
	return prev
}

func alloc(n int) ([]byte, error) {
	return allocator.Alloc(n)
}

func release(b []byte) {
	if b != nil {
		allocator.Free(b)
	}
}
