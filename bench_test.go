package sso

import (
	"fmt"
	"strings"
	"testing"
)

func genKey(i int) string {
	return fmt.Sprintf("%08x", i)
}

func BenchmarkNew(b *testing.B) {
	for _, n := range []int{4, 9, 19, 40} {
		str := strings.Repeat("x", n)
		b.Run(fmt.Sprintf("sso10/%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				s, _ := NewString[[10]byte](str)
				s.Release()
			}
		})
		b.Run(fmt.Sprintf("sso20/%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				s, _ := NewString[[20]byte](str)
				s.Release()
			}
		})
		b.Run(fmt.Sprintf("bytes/%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = []byte(str)
			}
		})
	}
}

func BenchmarkAppend(b *testing.B) {
	const N = 16
	b.Run("sso16", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var s String[[16]byte]
			for j := 0; j < N; j++ {
				s.AppendString(genKey(j))
			}
			s.Release()
		}
	})
	b.Run("sso16-reserve", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var s String[[16]byte]
			s.Reserve(N*8 + 1)
			for j := 0; j < N; j++ {
				s.AppendString(genKey(j))
			}
			s.Release()
		}
	})
	b.Run("builder", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var sb strings.Builder
			for j := 0; j < N; j++ {
				sb.WriteString(genKey(j))
			}
		}
	})
}

func BenchmarkCompare(b *testing.B) {
	x, _ := NewString[[16]byte]("key-0000000001")
	y, _ := NewString[[32]byte]("key-0000000002")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Compare(x, y)
	}
}
