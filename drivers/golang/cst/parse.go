package cst

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
)

// Tree is a format-preserving parse of one Go source file. The original bytes
// are kept alongside the AST, so rendering the unmodified tree reproduces the
// input exactly and removals only touch the excised byte ranges.
type Tree struct {
	filename string
	src      []byte
	fset     *token.FileSet
	file     *ast.File
}

// Parse builds a Tree from src. Comments are retained so a declaration's doc
// comment travels with it through collection and removal.
func Parse(filename string, src []byte) (*Tree, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filename, err)
	}

	return &Tree{
		filename: filename,
		src:      src,
		fset:     fset,
		file:     file,
	}, nil
}

// Render reproduces the original source text byte for byte.
func (t *Tree) Render() string {
	return string(t.src)
}

// Filename returns the name the tree was parsed under.
func (t *Tree) Filename() string {
	return t.filename
}

// offset converts a token position into a byte offset in src.
func (t *Tree) offset(pos token.Pos) int {
	return t.fset.Position(pos).Offset
}

// declStart returns the byte offset where a declaration begins, including its
// doc comment when present.
func (t *Tree) declStart(decl *ast.FuncDecl) int {
	if decl.Doc != nil {
		return t.offset(decl.Doc.Pos())
	}
	return t.offset(decl.Pos())
}
