package fixedarr_test

import (
	"bytes"
	"testing"

	"github.com/hasbyte1/go-array-utils/fixedarr"
)

// FuzzSplitConcat checks the round-trip law Concat(Split(a, pos)) == a for
// arbitrary input and split positions.
//
// Run with: go test -fuzz=FuzzSplitConcat ./fixedarr/
func FuzzSplitConcat(f *testing.F) {
	f.Add([]byte{}, 0)
	f.Add([]byte{1}, 0)
	f.Add([]byte{1, 2, 3}, 2)
	f.Add(bytes.Repeat([]byte{0xAA}, 64), 17)

	f.Fuzz(func(t *testing.T, data []byte, pos int) {
		// Clamp pos into the valid [0, len] range; out-of-range faults are
		// covered by the unit tests.
		if pos < 0 {
			pos = -pos
		}
		pos %= len(data) + 1

		head, tail := fixedarr.Split(data, pos)
		if len(head) != pos || len(tail) != len(data)-pos {
			t.Fatalf("Split lengths: got %d+%d, want %d+%d", len(head), len(tail), pos, len(data)-pos)
		}
		if got := fixedarr.Concat(head, tail); !bytes.Equal(got, data) {
			t.Fatalf("round-trip mismatch at pos=%d: got %v want %v", pos, got, data)
		}
	})
}

// FuzzReverseInvolution checks that reversing twice reproduces the input
// and that single reversal follows the index law.
func FuzzReverseInvolution(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{1})
	f.Add([]byte{1, 2, 3})
	f.Add(bytes.Repeat([]byte{0x01, 0x02}, 32))

	f.Fuzz(func(t *testing.T, data []byte) {
		rev := fixedarr.Reverse(data)
		n := len(data)
		for i := range data {
			if rev[i] != data[n-1-i] {
				t.Fatalf("Reverse[%d] = %d, want %d", i, rev[i], data[n-1-i])
			}
		}
		if got := fixedarr.Reverse(rev); !bytes.Equal(got, data) {
			t.Fatalf("double reverse mismatch: got %v want %v", got, data)
		}
	})
}

// FuzzRemoveInsert checks that Insert undoes Remove at the same index for
// arbitrary input.
func FuzzRemoveInsert(f *testing.F) {
	f.Add([]byte{1}, 0)
	f.Add([]byte{1, 2, 3}, 1)
	f.Add(bytes.Repeat([]byte{7}, 16), 9)

	f.Fuzz(func(t *testing.T, data []byte, index int) {
		if len(data) == 0 {
			return
		}
		if index < 0 {
			index = -index
		}
		index %= len(data)

		removed := fixedarr.Remove(data, index)
		if len(removed) != len(data)-1 {
			t.Fatalf("Remove length: got %d, want %d", len(removed), len(data)-1)
		}
		if got := fixedarr.Insert(removed, index, data[index]); !bytes.Equal(got, data) {
			t.Fatalf("Insert after Remove at %d: got %v want %v", index, got, data)
		}
	})
}
