package workload

import (
	"testing"

	"github.com/xgzlucario/sso/internal/corpus"
)

func BenchmarkWorkload(b *testing.B) {
	words := corpus.Generate(20000, 1)
	for _, w := range Workloads {
		for _, name := range []string{"string", "bytes", "sso10", "sso20"} {
			b.Run(string(w)+"/"+name, func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					RunKind(name, w, SkipList, words)
				}
			})
		}
	}
}
