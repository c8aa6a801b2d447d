package golang

import (
	"github.com/emenda-labs/testprune/core/driver"
	"github.com/emenda-labs/testprune/drivers/golang/cst"
)

var _ driver.TestDriver = (*Driver)(nil)

// Driver implements driver.TestDriver for Go source files.
type Driver struct{}

// NewDriver creates a Driver.
func NewDriver() *Driver {
	return &Driver{}
}

// ExtractTests parses src and collects every function declaration whose name
// starts with prefix, rendered as standalone snippets.
func (d *Driver) ExtractTests(filename string, src []byte, prefix string) (map[string]driver.TestCase, error) {
	tree, err := cst.Parse(filename, src)
	if err != nil {
		return nil, err
	}

	collected := tree.Collect(prefix)
	tests := make(map[string]driver.TestCase, len(collected))
	for name, fn := range collected {
		tests[name] = driver.TestCase{Name: name, Snippet: tree.Snippet(fn)}
	}

	return tests, nil
}

// RemoveTests parses src and excises every function declaration whose name is
// in names, preserving all other formatting exactly.
func (d *Driver) RemoveTests(filename string, src []byte, names map[string]struct{}) (string, int, error) {
	tree, err := cst.Parse(filename, src)
	if err != nil {
		return "", 0, err
	}

	out, removed := tree.Remove(names)
	return out, removed, nil
}
