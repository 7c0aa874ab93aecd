// package sstring is shared strings.

package sstring

import (
	"strings"

	"github.com/cockroachdb/swiss"
)

// Table interns strings so that equal words share one backing array.
type Table struct {
	nums *swiss.Map[string, int]
	strs []string
}

func New(size int) *Table {
	return &Table{nums: swiss.New[string, int](size)}
}

// Load a shared string from its number.
func (t *Table) Load(num int) (str string) {
	if num >= 0 && num < len(t.strs) {
		return t.strs[num]
	}
	panic("string not found")
}

// Store a shared string and returns its number and the shared copy.
func (t *Table) Store(str string) (int, string) {
	num, ok := t.nums.Get(str)
	if !ok {
		str = strings.Clone(str)
		num = len(t.strs)
		t.strs = append(t.strs, str)
		t.nums.Put(str, num)
	}
	return num, t.strs[num]
}

// Len returns the number of shared strings.
func (t *Table) Len() int {
	return len(t.strs)
}
