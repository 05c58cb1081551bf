package sunmao

import (
	"strings"
	"testing"
)

func TestStructure(t *testing.T) {
	tree, _ := newTestTree(t, 2, 2)
	root := tree.Root()
	top, err := root.Tenon(Top, 1, WithTitle("overview"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := top.Tenon(Left, 1); err != nil {
		t.Fatal(err)
	}

	got := root.Structure()
	for _, want := range []string{
		"mortise[0] 2 x 1 at (0, 0)", // root shrunk by the top tenon
		"top:",
		`"overview"`,
		"left:",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Structure() missing %q:\n%s", want, got)
		}
	}
	if !strings.HasPrefix(got, "mortise[0]") {
		t.Errorf("Structure() starts with %q", strings.SplitN(got, "\n", 2)[0])
	}
	// Nesting shows as growing indentation.
	if !strings.Contains(got, "\n    mortise[1]") {
		t.Errorf("top tenon not indented:\n%s", got)
	}
}
