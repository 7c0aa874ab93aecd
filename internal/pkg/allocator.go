package pkg

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
)

// ErrAllocation is returned when a buffer request cannot be served.
var ErrAllocation = errors.New("allocation failure")

// Allocator is a pooled byte buffer allocator with an upper size limit.
type Allocator struct {
	pool      *sync.Pool
	limit     int
	miss, hit atomic.Uint64
}

// NewAllocator creates an allocator that refuses requests above limit bytes.
func NewAllocator(limit int) *Allocator {
	return &Allocator{
		pool: &sync.Pool{
			New: func() interface{} { return new([]byte) },
		},
		limit: limit,
	}
}

// maxWaste bounds the backing array of a reused buffer to maxWaste*want bytes.
const maxWaste = 2

// Alloc returns a buffer with length of want. A pooled buffer is reused only
// when its backing array is at most maxWaste times want.
func (p *Allocator) Alloc(want int) ([]byte, error) {
	if want <= 0 || want > p.limit {
		return nil, fmt.Errorf("%w: %d bytes (limit %d)", ErrAllocation, want, p.limit)
	}
	buf := p.pool.Get().(*[]byte)

	if cap(*buf) > maxWaste*want {
		p.pool.Put(buf)
		buf = new([]byte)
	}

	if cap(*buf) < want {
		*buf = make([]byte, want)
		p.miss.Add(1)

	} else {
		*buf = (*buf)[:want]
		p.hit.Add(1)
	}

	return *buf, nil
}

// Free adds given buffer back to the pool.
func (p *Allocator) Free(b []byte) {
	if cap(b) == 0 {
		return
	}
	p.pool.Put(&b)
}

// Limit returns the largest request Alloc serves.
func (p *Allocator) Limit() int {
	return p.limit
}

func (p *Allocator) Miss() uint64 {
	return p.miss.Load()
}

func (p *Allocator) Hit() uint64 {
	return p.hit.Load()
}
