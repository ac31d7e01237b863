package thunk

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func runSource(src string) (string, error) {
	tree, err := ParseString(src)
	if err != nil {
		return "", err
	}
	v, err := Eval(tree)
	if err != nil {
		return "", err
	}
	return v.String() + "\n", nil
}

func TestPrograms(t *testing.T) {
	fns, err := filepath.Glob("testdata/*.thk")
	if err != nil {
		t.Fatal(err)
	}
	if len(fns) == 0 {
		t.Fatal("no programs in testdata")
	}

	for _, fn := range fns {
		t.Log(fn)
		b, err := os.ReadFile(fn)
		if err != nil {
			t.Fatal(err)
		}
		base := fn[:len(fn)-len(".thk")]
		got, err := runSource(string(b))
		if err != nil {
			b, err2 := os.ReadFile(base + ".err")
			if err2 != nil || err.Error() != strings.TrimSpace(string(b)) {
				t.Errorf("%s: %v", fn, err)
			}
			continue
		}
		b, err = os.ReadFile(base + ".out")
		if err != nil {
			t.Fatalf("%s: succeeded with %q but has no .out file", fn, got)
		}
		if diff := cmp.Diff(string(b), got); diff != "" {
			t.Errorf("%s: %s", fn, diff)
		}
	}
}
