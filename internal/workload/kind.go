package workload

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/xgzlucario/sso"
)

// Kind adapts a string representation to the workloads.
type Kind[T any] struct {
	Name    string
	Make    func(b []byte) (T, error)
	Append  func(t T, b []byte) (T, error)
	SetAt   func(t T, i int, c byte) T
	Len     func(t T) int
	At      func(t T, i int) byte
	Compare func(a, b T) int
	Key     func(t T) string
	Release func(t T)
}

// Std is Go's immutable string.
func Std() Kind[string] {
	return Kind[string]{
		Name: "string",
		Make: func(b []byte) (string, error) { return string(b), nil },
		Append: func(t string, b []byte) (string, error) {
			return t + string(b), nil
		},
		SetAt: func(t string, i int, c byte) string {
			b := []byte(t)
			b[i] = c
			return string(b)
		},
		Len:     func(t string) int { return len(t) },
		At:      func(t string, i int) byte { return t[i] },
		Compare: strings.Compare,
		Key:     func(t string) string { return t },
		Release: func(string) {},
	}
}

// Bytes is a heap-only growable byte slice.
func Bytes() Kind[[]byte] {
	return Kind[[]byte]{
		Name: "bytes",
		Make: func(b []byte) ([]byte, error) {
			return append(make([]byte, 0, len(b)), b...), nil
		},
		Append: func(t []byte, b []byte) ([]byte, error) { return append(t, b...), nil },
		SetAt: func(t []byte, i int, c byte) []byte {
			t[i] = c
			return t
		},
		Len:     func(t []byte) int { return len(t) },
		At:      func(t []byte, i int) byte { return t[i] },
		Compare: bytes.Compare,
		Key:     func(t []byte) string { return string(t) },
		Release: func([]byte) {},
	}
}

// SSO is sso.String with inline capacity len(A).
func SSO[A sso.Array]() Kind[*sso.String[A]] {
	return Kind[*sso.String[A]]{
		Name: fmt.Sprintf("sso%d", sso.InlineCap[A]()),
		Make: sso.New[A],
		Append: func(t *sso.String[A], b []byte) (*sso.String[A], error) {
			return t, t.Append(b)
		},
		SetAt: func(t *sso.String[A], i int, c byte) *sso.String[A] {
			t.SetAt(i, c)
			return t
		},
		Len:     (*sso.String[A]).Len,
		At:      (*sso.String[A]).At,
		Compare: sso.Compare[A, A],
		Key:     (*sso.String[A]).String,
		Release: (*sso.String[A]).Release,
	}
}

// runners instantiates every workload for each string kind.
var runners = map[string]func(w Workload, idx IndexKind, words []string) (int, error){
	"string": runner(Std()),
	"bytes":  runner(Bytes()),
	"sso8":   runner(SSO[[8]byte]()),
	"sso10":  runner(SSO[[10]byte]()),
	"sso16":  runner(SSO[[16]byte]()),
	"sso20":  runner(SSO[[20]byte]()),
	"sso32":  runner(SSO[[32]byte]()),
	"sso64":  runner(SSO[[64]byte]()),
}

func runner[T any](k Kind[T]) func(Workload, IndexKind, []string) (int, error) {
	return func(w Workload, idx IndexKind, words []string) (int, error) {
		return Run(k, w, idx, words)
	}
}

// Kinds returns the registered string kind names.
func Kinds() []string {
	names := make([]string, 0, len(runners))
	for name := range runners {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RunKind runs workload w over the string kind registered under name.
func RunKind(name string, w Workload, idx IndexKind, words []string) (int, error) {
	run, ok := runners[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
	return run(w, idx, words)
}
