package geomerr

import (
	"errors"
	"fmt"
	"testing"
)

func TestKinds(t *testing.T) {
	cases := []struct {
		err  error
		kind error
		name string
	}{
		{Invalid("mathutil.dot", "length %d != %d", 3, 4), ErrInvalidInput, "InvalidInput"},
		{Degenerate("mathutil.normalize", "zero length"), ErrDegenerate, "DegenerateInput"},
		{Unsolvable("symsolve.solve", "singular"), ErrUnsolvable, "Unsolvable"},
	}
	for _, c := range cases {
		if !errors.Is(c.err, c.kind) {
			t.Fatalf("errors.Is(%v, %v) = false", c.err, c.kind)
		}
		wrapped := fmt.Errorf("outer: %w", c.err)
		if !errors.Is(wrapped, c.kind) {
			t.Fatalf("wrapped error lost its kind: %v", wrapped)
		}
		if n := KindName(wrapped); n != c.name {
			t.Fatalf("KindName\nhave %q\nwant %q", n, c.name)
		}
	}
}

func TestErrorString(t *testing.T) {
	err := Invalid("mathutil.dot", "length %d != %d", 3, 4)
	if s := err.Error(); s != "mathutil.dot: invalid input: length 3 != 4" {
		t.Fatalf("Error\nhave %q", s)
	}
	err = &Error{Op: "camera.project", Kind: ErrDegenerate}
	if s := err.Error(); s != "camera.project: degenerate input" {
		t.Fatalf("Error\nhave %q", s)
	}
	if KindName(errors.New("other")) != "" {
		t.Fatal("KindName of a plain error should be empty")
	}
}
