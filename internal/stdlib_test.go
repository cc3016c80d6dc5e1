package stdlib_test

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

const modulePath = "github.com/comalice/airportfta"

// The automaton engine and the layout data it is built from import only
// the standard library and each other.
func TestStdlibOnlyCore(t *testing.T) {
	files := []string{
		"../airport.go",
		"../builder.go",
		"../errors.go",
		"../terminals.go",
		"../validate.go",
	}
	for _, dir := range []string{"primitives", "layouts"} {
		matches, err := filepath.Glob(filepath.Join(dir, "*.go"))
		if err != nil {
			t.Fatal(err)
		}
		for _, m := range matches {
			if !strings.HasSuffix(m, "_test.go") {
				files = append(files, m)
			}
		}
	}

	fset := token.NewFileSet()
	for _, fn := range files {
		f, err := parser.ParseFile(fset, fn, nil, parser.ImportsOnly)
		if err != nil {
			t.Fatalf("Failed to parse %s: %v", fn, err)
		}
		for _, imp := range f.Imports {
			path, err := strconv.Unquote(imp.Path.Value)
			if err != nil {
				t.Fatal(err)
			}
			if imp.Name != nil && imp.Name.Name == "." {
				t.Errorf("%s: dot import of %s", fn, path)
			}
			if strings.HasPrefix(path, modulePath+"/") {
				continue
			}
			// Standard library paths have no dot in their first element.
			if first, _, _ := strings.Cut(path, "/"); strings.Contains(first, ".") {
				t.Errorf("%s: non-stdlib import %s", fn, path)
			}
		}
	}
}

// Files derived from vice keep its copyright notice.
func TestDerivedFilesKeepNotice(t *testing.T) {
	for _, fn := range []string{"log/log.go", "log/stack.go", "util/error.go"} {
		data, err := os.ReadFile(fn)
		if err != nil {
			t.Fatal(err)
		}
		for _, want := range []string{"vice contributors", "SPDX: GPL-3.0-only"} {
			if !strings.Contains(string(data), want) {
				t.Errorf("%s: missing %q", fn, want)
			}
		}
	}
}
