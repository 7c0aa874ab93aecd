package pkg

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllocator(t *testing.T) {
	assert := assert.New(t)

	t.Run("alloc", func(t *testing.T) {
		p := NewAllocator(1024)
		for _, n := range []int{1, 7, 64, 1024} {
			buf, err := p.Alloc(n)
			assert.Nil(err)
			assert.Equal(n, len(buf))
			p.Free(buf)
		}
		assert.Equal(uint64(4), p.Hit()+p.Miss())
		assert.Equal(1024, p.Limit())
	})

	t.Run("limit", func(t *testing.T) {
		p := NewAllocator(16)
		for _, n := range []int{-1, 0, 17, 1 << 20} {
			buf, err := p.Alloc(n)
			assert.Nil(buf)
			assert.True(errors.Is(err, ErrAllocation))
		}
		assert.Equal(uint64(0), p.Hit()+p.Miss())
	})

	t.Run("oversized", func(t *testing.T) {
		p := NewAllocator(1 << 20)
		big, err := p.Alloc(1 << 20)
		assert.Nil(err)
		p.Free(big)

		for _, n := range []int{1, 32, 1000} {
			buf, err := p.Alloc(n)
			assert.Nil(err)
			assert.Equal(n, len(buf))
			assert.LessOrEqual(cap(buf), maxWaste*n)
			p.Free(buf)
		}
	})

	t.Run("free-empty", func(t *testing.T) {
		p := NewAllocator(16)
		p.Free(nil)
		buf, err := p.Alloc(8)
		assert.Nil(err)
		assert.Equal(8, len(buf))
	})
}
