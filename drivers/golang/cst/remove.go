package cst

import (
	"bytes"
	"go/ast"
	"sort"
)

// span is a half-open byte range [start, end) scheduled for deletion.
type span struct {
	start int
	end   int
}

// Remove excises every function declaration whose name is in names and
// returns the reconstructed source plus the number of declarations removed.
// Names with no matching declaration are silently ignored: the removal set
// may have been computed against a different file's mapping. Every
// declaration carrying a matched name is excised, so a duplicated name
// counts once per declaration.
//
// Trivia ownership: the doc comment and the blank lines directly above a
// declaration belong to it and are deleted with it, along with the newline
// that terminates its last line. Blank lines below it belong to the next
// declaration and survive. Everything outside the excised spans is
// byte-identical to the input.
func (t *Tree) Remove(names map[string]struct{}) (string, int) {
	var spans []span

	for _, decl := range t.file.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || fn.Name == nil {
			continue
		}
		if _, marked := names[fn.Name.Name]; !marked {
			continue
		}
		spans = append(spans, t.declSpan(fn))
	}

	if len(spans) == 0 {
		return string(t.src), 0
	}

	sort.Slice(spans, func(i, j int) bool {
		return spans[i].start < spans[j].start
	})

	var out bytes.Buffer
	out.Grow(len(t.src))

	prev := 0
	for _, s := range spans {
		// Adjacent removals can overlap through shared leading trivia.
		if s.start < prev {
			s.start = prev
		}
		out.Write(t.src[prev:s.start])
		prev = s.end
	}
	out.Write(t.src[prev:])

	return out.String(), len(spans)
}

// declSpan widens a declaration's byte range to the trivia it owns: backward
// over its doc comment, its indentation, and any whole blank lines directly
// above it; forward through the newline terminating its closing brace.
func (t *Tree) declSpan(decl *ast.FuncDecl) span {
	src := t.src
	start := t.declStart(decl)
	end := t.offset(decl.End())

	// Indentation on the declaration's own line.
	for start > 0 && (src[start-1] == ' ' || src[start-1] == '\t') {
		start--
	}

	// Whole blank lines above the declaration.
	for start > 0 && src[start-1] == '\n' {
		lineStart := start - 1
		for lineStart > 0 && src[lineStart-1] != '\n' {
			lineStart--
		}
		if len(bytes.TrimSpace(src[lineStart:start-1])) != 0 {
			// The previous line has content; its terminating newline stays.
			break
		}
		start = lineStart
	}

	// The line terminator after the closing brace.
	for end < len(src) && (src[end] == ' ' || src[end] == '\t') {
		end++
	}
	if end < len(src) && src[end] == '\n' {
		end++
	}

	return span{start: start, end: end}
}
