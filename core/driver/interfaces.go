package driver

// TestCase is one extracted test declaration: its name and its standalone
// rendering, suitable for showing to a reviewer.
type TestCase struct {
	Name    string
	Snippet string
}

// TestDriver is the interface each source language must implement to support
// test extraction and format-preserving removal.
type TestDriver interface {
	// ExtractTests parses src and returns every test declaration whose name
	// starts with prefix, keyed by name. The last declaration wins when a
	// name repeats. A parse failure returns an error and no mapping.
	ExtractTests(filename string, src []byte, prefix string) (map[string]TestCase, error)

	// RemoveTests parses src and excises every test declaration whose name is
	// in names, returning the rewritten source and the number of declarations
	// removed. Names with no matching declaration are ignored. All content
	// outside the removed declarations is byte-identical to src.
	RemoveTests(filename string, src []byte, names map[string]struct{}) (string, int, error)
}
