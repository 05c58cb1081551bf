package sunmao

import (
	"errors"
	"testing"
)

func TestAllocateTilesParent(t *testing.T) {
	parent := Region{X: 1, Y: 2, W: 4, H: 3}

	cases := []struct {
		name       string
		dir        Direction
		size       float64
		child, rem Region
	}{
		{"top", Top, 1, Region{X: 1, Y: 4, W: 4, H: 1}, Region{X: 1, Y: 2, W: 4, H: 2}},
		{"bottom", Bottom, 1, Region{X: 1, Y: 2, W: 4, H: 1}, Region{X: 1, Y: 3, W: 4, H: 2}},
		{"left", Left, 1.5, Region{X: 1, Y: 2, W: 1.5, H: 3}, Region{X: 2.5, Y: 2, W: 2.5, H: 3}},
		{"right", Right, 1.5, Region{X: 3.5, Y: 2, W: 1.5, H: 3}, Region{X: 1, Y: 2, W: 2.5, H: 3}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			child, rem, err := Allocate(parent, tc.dir, tc.size)
			if err != nil {
				t.Fatalf("Allocate(%s, %g): %v", tc.dir, tc.size, err)
			}
			if child != tc.child {
				t.Errorf("child = %+v, want %+v", child, tc.child)
			}
			if rem != tc.rem {
				t.Errorf("remainder = %+v, want %+v", rem, tc.rem)
			}
			// Child and remainder tile the parent: no overlap, no gap.
			if got := child.W*child.H + rem.W*rem.H; got != parent.W*parent.H {
				t.Errorf("areas sum to %g, want %g", got, parent.W*parent.H)
			}
			for _, r := range []Region{child, rem} {
				if r.X < parent.X || r.Y < parent.Y ||
					r.X+r.W > parent.X+parent.W || r.Y+r.H > parent.Y+parent.H {
					t.Errorf("region %+v escapes parent %+v", r, parent)
				}
			}
		})
	}
}

func TestAllocateDoesNotMutateParent(t *testing.T) {
	parent := Region{X: 0, Y: 0, W: 2, H: 2}
	before := parent
	if _, _, err := Allocate(parent, Top, 1); err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	if parent != before {
		t.Errorf("parent mutated: %+v", parent)
	}
}

func TestAllocateInvalidSize(t *testing.T) {
	parent := Region{X: 0, Y: 0, W: 4, H: 3}

	for _, size := range []float64{0, -1, 3, 5} {
		if _, _, err := Allocate(parent, Top, size); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("Allocate(top, %g) = %v, want ErrInvalidSize", size, err)
		}
	}
	// The limit is the width for lateral allocations: 3.5 is fine
	// vertically but fails horizontally only when >= 4.
	if _, _, err := Allocate(parent, Left, 3.5); err != nil {
		t.Errorf("Allocate(left, 3.5): %v", err)
	}
	if _, _, err := Allocate(parent, Left, 4); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Allocate(left, 4) = %v, want ErrInvalidSize", err)
	}
}

func TestAllocateInvalidDirection(t *testing.T) {
	parent := Region{X: 0, Y: 0, W: 2, H: 2}
	for _, dir := range []Direction{Direction(-1), Direction(4), Direction(99)} {
		if _, _, err := Allocate(parent, dir, 1); !errors.Is(err, ErrInvalidDirection) {
			t.Errorf("Allocate(%d) = %v, want ErrInvalidDirection", int(dir), err)
		}
	}
}
