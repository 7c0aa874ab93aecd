// Package corpus loads and generates word lists for the benchmark workloads.
package corpus

import (
	"bufio"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/xgzlucario/sso/internal/sstring"
)

const (
	minWordLen = 1
	maxWordLen = 24
)

// ReadLines reads r line by line.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1<<20)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// Words splits lines on single spaces. One trailing non-alphanumeric byte is
// dropped from each token and empty tokens are skipped. Equal words share
// storage.
func Words(lines []string) []string {
	tb := sstring.New(1024)
	var words []string
	for _, line := range lines {
		for _, tok := range strings.Split(line, " ") {
			if n := len(tok); n > 0 && !isAlnum(tok[n-1]) {
				tok = tok[:n-1]
			}
			if tok == "" {
				continue
			}
			_, w := tb.Store(tok)
			words = append(words, w)
		}
	}
	return words
}

func isAlnum(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// Load reads the text file at path and returns its words.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus: %w", err)
	}
	defer f.Close()

	lines, err := ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("read corpus %s: %w", path, err)
	}
	return Words(lines), nil
}

// Generate returns n pseudo-random lowercase words drawn from a vocabulary of
// at most n/8+1 distinct entries. The same seed always yields the same words.
func Generate(n int, seed uint64) []string {
	rd := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	tb := sstring.New(n/8 + 1)

	for i := 0; i < n/8+1; i++ {
		b := make([]byte, minWordLen+rd.IntN(maxWordLen-minWordLen+1))
		for j := range b {
			b[j] = 'a' + byte(rd.IntN(26))
		}
		tb.Store(string(b))
	}

	words := make([]string, n)
	for i := range words {
		words[i] = tb.Load(rd.IntN(tb.Len()))
	}
	return words
}
