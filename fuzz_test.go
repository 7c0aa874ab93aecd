package sso

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func FuzzString(f *testing.F) {
	f.Add(0, []byte("abc"))
	f.Add(1, []byte("defghij"))
	f.Add(2, []byte("a longer piece of content"))

	var s String[[16]byte]
	var model []byte

	f.Fuzz(func(t *testing.T, op int, data []byte) {
		ast := assert.New(t)
		switch uint(op) % 8 {
		case 0: // Assign
			ast.Nil(s.Assign(data))
			model = append(model[:0], data...)

		case 1, 2: // Append
			ast.Nil(s.Append(data))
			model = append(model, data...)

		case 3: // Reserve
			ast.Nil(s.Reserve(len(data) * 4))

		case 4: // ShrinkToFit
			ast.Nil(s.ShrinkToFit())
			ast.Equal(s.Len()+1 <= 16, s.Inline())

		case 5: // Move round trip through a smaller capacity
			var tmp String[[8]byte]
			ast.Nil(MoveFrom(&tmp, &s))
			ast.True(s.Empty())
			ast.Nil(MoveFrom(&s, &tmp))
			ast.True(tmp.Empty())

		case 6: // Clone independence
			c, err := s.Clone()
			ast.Nil(err)
			ast.Nil(c.Append(data))
			ast.Equal(0, s.Compare(model))
			c.Release()

		case 7: // Release
			s.Release()
			model = model[:0]
		}

		ast.True(bytes.Equal(model, s.Bytes()))
		ast.Equal(byte(0), s.CString()[s.Len()])
		if s.Inline() {
			ast.LessOrEqual(s.Len()+1, 16)
		} else {
			ast.LessOrEqual(s.Len()+1, s.Cap())
		}
	})
}
