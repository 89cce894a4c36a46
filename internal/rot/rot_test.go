package rot

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLeft(t *testing.T) {
	for _, tc := range []struct {
		in   []byte
		n    int
		want []byte
	}{
		{in: nil, n: 1, want: []byte{}},
		{in: []byte{1}, n: 1, want: []byte{1}},
		{in: []byte{1, 2, 3, 4}, n: 0, want: []byte{1, 2, 3, 4}},
		{in: []byte{1, 2, 3, 4}, n: 1, want: []byte{2, 3, 4, 1}},
		{in: []byte{1, 2, 3, 4}, n: 3, want: []byte{4, 1, 2, 3}},
		{in: []byte{1, 2, 3, 4}, n: 4, want: []byte{1, 2, 3, 4}},
		{in: []byte{1, 2, 3, 4}, n: 9, want: []byte{2, 3, 4, 1}},
	} {
		t.Run(fmt.Sprintf("%x/%d", tc.in, tc.n), func(t *testing.T) {
			if diff := cmp.Diff(tc.want, Left(tc.in, tc.n)); diff != "" {
				t.Fatalf("Left mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// right rotates b right by n positions in terms of Left.
func right(b []byte, n int) []byte {
	if len(b) == 0 {
		return Left(b, 0)
	}
	return Left(b, len(b)-n%len(b))
}

func TestRightUndoesLeft(t *testing.T) {
	in := []byte{0xde, 0xad, 0xbe, 0xef, 0x00}
	for n := range 12 {
		if diff := cmp.Diff(in, right(Left(in, n), n)); diff != "" {
			t.Fatalf("right(Left(in, %d)) mismatch (-want +got):\n%s", n, diff)
		}
	}
}

func TestPure(t *testing.T) {
	in := []byte{1, 2, 3, 4}
	Left(in, 1)
	right(in, 1)

	if diff := cmp.Diff([]byte{1, 2, 3, 4}, in); diff != "" {
		t.Fatalf("input changed (-want +got):\n%s", diff)
	}
}

func TestNegative(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for negative n")
		}
	}()
	Left([]byte{1, 2}, -1)
}
