package cst

import (
	"go/ast"
	"strings"
)

// TestFunc is one collected test declaration.
type TestFunc struct {
	Name string
	decl *ast.FuncDecl
}

// Collect maps every function declaration whose name starts with prefix to
// its node. Methods qualify the same way plain functions do and are keyed by
// their bare name. When a name repeats, the later declaration in file order
// overwrites the earlier one, so the mapping holds the last definition.
// Collect does not mutate the tree and is deterministic for a given tree.
func (t *Tree) Collect(prefix string) map[string]TestFunc {
	tests := make(map[string]TestFunc)

	for _, decl := range t.file.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || fn.Name == nil {
			continue
		}
		if !strings.HasPrefix(fn.Name.Name, prefix) {
			continue
		}
		tests[fn.Name.Name] = TestFunc{Name: fn.Name.Name, decl: fn}
	}

	return tests
}

// Snippet renders a collected declaration as it appears in the source,
// doc comment included, so it can be shown standalone with its original
// indentation and structure.
func (t *Tree) Snippet(fn TestFunc) string {
	start := t.declStart(fn.decl)
	end := t.offset(fn.decl.End())
	return string(t.src[start:end])
}
