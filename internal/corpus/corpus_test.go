package corpus

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const text = `Litwo! Ojczyzno moja! ty jestes jak zdrowie.
Ile cie trzeba cenic, ten tylko sie dowie,

Kto cie stracil.  Dzis pieknosc twa w calej ozdobie
`

func TestWords(t *testing.T) {
	assert := assert.New(t)

	lines, err := ReadLines(strings.NewReader(text))
	assert.Nil(err)
	assert.Equal(4, len(lines))

	words := Words(lines)
	assert.Equal([]string{
		"Litwo", "Ojczyzno", "moja", "ty", "jestes", "jak", "zdrowie",
		"Ile", "cie", "trzeba", "cenic", "ten", "tylko", "sie", "dowie",
		"Kto", "cie", "stracil", "Dzis", "pieknosc", "twa", "w", "calej", "ozdobie",
	}, words)

	assert.Empty(Words([]string{"", " ", ", ,"}))
}

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "corpus.txt")
	assert.Nil(os.WriteFile(path, []byte(text), 0644))

	words, err := Load(path)
	assert.Nil(err)
	assert.Equal(24, len(words))

	_, err = Load(filepath.Join(t.TempDir(), "missing.txt"))
	assert.NotNil(err)
}

func TestGenerate(t *testing.T) {
	assert := assert.New(t)

	a := Generate(1000, 1)
	b := Generate(1000, 1)
	c := Generate(1000, 2)
	assert.Equal(1000, len(a))
	assert.Equal(a, b)
	assert.NotEqual(a, c)

	for _, w := range a {
		assert.GreaterOrEqual(len(w), minWordLen)
		assert.LessOrEqual(len(w), maxWordLen)
	}
	distinct := map[string]bool{}
	for _, w := range a {
		distinct[w] = true
	}
	assert.LessOrEqual(len(distinct), 1000/8+1)
	assert.Empty(Generate(0, 1))
}
