// Package workload runs word-counting workloads over interchangeable string
// representations so their allocation behavior can be compared.
package workload

import (
	"errors"
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
)

var (
	ErrUnknownKind     = errors.New("unknown string kind")
	ErrUnknownWorkload = errors.New("unknown workload")
	ErrUnknownIndex    = errors.New("unknown index")
)

// Workload names a key derivation from the word list.
type Workload string

const (
	// Word counts every word as is.
	Word Workload = "word"
	// Increased counts each word with "ab" appended and its middle byte
	// replaced by the byte at one third.
	Increased Workload = "increased"
	// Sum counts concatenations of five consecutive words with two bytes
	// patched from the first and fourth word.
	Sum Workload = "sum"
)

// Workloads lists all workloads.
var Workloads = []Workload{Word, Increased, Sum}

func mid(w string) byte {
	if w == "" {
		return 0
	}
	return w[len(w)/2]
}

// Run executes w over words with string kind k and returns the number of
// distinct keys. Keys the index does not keep are released immediately, the
// rest when the run ends.
func Run[T any](k Kind[T], w Workload, kind IndexKind, words []string) (int, error) {
	ix, err := newIndex(k, kind)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", err, kind)
	}
	defer ix.Each(k.Release)

	count := func(key T) {
		if !ix.Inc(key) {
			k.Release(key)
		}
	}
	var buf []byte

	switch w {
	case Word:
		for _, word := range words {
			buf = append(buf[:0], word...)
			key, err := k.Make(buf)
			if err != nil {
				return ix.Len(), err
			}
			count(key)
		}

	case Increased:
		for _, word := range words {
			buf = append(append(buf[:0], word...), "ab"...)
			buf[len(buf)/2] = buf[len(buf)/3]
			key, err := k.Make(buf)
			if err != nil {
				return ix.Len(), err
			}
			count(key)
		}

	case Sum:
		for i := 0; i+4 < len(words); i += 5 {
			v1, v2 := mid(words[i]), mid(words[i+3])

			buf = append(buf[:0], words[i]...)
			key, err := k.Make(buf)
			if err != nil {
				return ix.Len(), err
			}
			for _, word := range words[i+1 : i+5] {
				buf = append(buf[:0], word...)
				if key, err = k.Append(key, buf); err != nil {
					k.Release(key)
					return ix.Len(), err
				}
			}
			if n := k.Len(key); n > 0 {
				key = k.SetAt(key, n/3, v1)
				key = k.SetAt(key, n/4, v2)
			}
			count(key)
		}

	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownWorkload, w)
	}

	return ix.Len(), nil
}

// Expect computes the distinct key count of w over words with plain byte
// slices and a set, independently of any string kind.
func Expect(w Workload, words []string) (int, error) {
	set := mapset.NewThreadUnsafeSetWithSize[string](len(words)/4 + 1)
	var buf []byte

	switch w {
	case Word:
		for _, word := range words {
			set.Add(word)
		}

	case Increased:
		for _, word := range words {
			buf = append(append(buf[:0], word...), "ab"...)
			buf[len(buf)/2] = buf[len(buf)/3]
			set.Add(string(buf))
		}

	case Sum:
		for i := 0; i+4 < len(words); i += 5 {
			buf = buf[:0]
			for _, word := range words[i : i+5] {
				buf = append(buf, word...)
			}
			if n := len(buf); n > 0 {
				buf[n/3] = mid(words[i])
				buf[n/4] = mid(words[i+3])
			}
			set.Add(string(buf))
		}

	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownWorkload, w)
	}

	return set.Cardinality(), nil
}
