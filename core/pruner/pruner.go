package pruner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/emenda-labs/testprune/core/driver"
	"github.com/emenda-labs/testprune/core/report"
	"github.com/emenda-labs/testprune/core/review"
)

// Options configures a single prune run.
type Options struct {
	// FileA is the file the confirmed-equivalent tests are removed from.
	FileA string
	// FileB is the file compared against.
	FileB string
	// Output is the path the rewritten FileA is written to. Derived from
	// FileA when empty; see DeriveOutputPath.
	Output string
	// Prefix selects test declarations by name prefix.
	Prefix string
}

// Pruner sequences extraction, review, and removal over two source files.
type Pruner struct {
	driver driver.TestDriver
	oracle review.Oracle
}

// New creates a Pruner using the given language driver and equivalence oracle.
func New(d driver.TestDriver, o review.Oracle) *Pruner {
	return &Pruner{driver: d, oracle: o}
}

// Run executes the full pipeline: read and parse both files, collect test
// mappings, query the oracle once per common name in sorted order, excise the
// confirmed-equivalent declarations from the first file, and write the result.
//
// Phases are strictly sequential and non-retryable. A parse failure in either
// file halts the run before any comparison, and nothing is written unless at
// least one test was confirmed equivalent. Both inputs are fully read before
// any write begins, so writing over the first input path is safe. An oracle
// that aborts ends the review early; decisions already made stand.
func (p *Pruner) Run(ctx context.Context, opts Options) (report.Summary, error) {
	sum := report.Summary{FileA: opts.FileA, FileB: opts.FileB}

	srcA, err := os.ReadFile(opts.FileA)
	if err != nil {
		return sum, fmt.Errorf("reading %s: %w", opts.FileA, err)
	}
	srcB, err := os.ReadFile(opts.FileB)
	if err != nil {
		return sum, fmt.Errorf("reading %s: %w", opts.FileB, err)
	}

	testsA, err := p.driver.ExtractTests(opts.FileA, srcA, opts.Prefix)
	if err != nil {
		return sum, fmt.Errorf("extracting tests from %s: %w", opts.FileA, err)
	}
	testsB, err := p.driver.ExtractTests(opts.FileB, srcB, opts.Prefix)
	if err != nil {
		return sum, fmt.Errorf("extracting tests from %s: %w", opts.FileB, err)
	}

	sum.TestsA = len(testsA)
	sum.TestsB = len(testsB)
	sum.Common = commonNames(testsA, testsB)

	removal := make(map[string]struct{})
	for _, name := range sum.Common {
		if err := ctx.Err(); err != nil {
			return sum, err
		}

		equivalent, err := p.oracle.Decide(name, testsA[name].Snippet, testsB[name].Snippet)
		if err != nil {
			if errors.Is(err, review.ErrAborted) {
				sum.Aborted = true
				break
			}
			return sum, fmt.Errorf("deciding %s: %w", name, err)
		}

		sum.Decisions = append(sum.Decisions, report.Decision{Name: name, Equivalent: equivalent})
		if equivalent {
			removal[name] = struct{}{}
			sum.Equivalent = append(sum.Equivalent, name)
		}
	}

	if len(removal) == 0 {
		// Nothing confirmed equivalent: no output file is created.
		return sum, nil
	}

	out, removed, err := p.driver.RemoveTests(opts.FileA, srcA, removal)
	if err != nil {
		return sum, fmt.Errorf("removing tests from %s: %w", opts.FileA, err)
	}
	sum.Removed = removed

	sum.OutputPath = opts.Output
	if sum.OutputPath == "" {
		sum.OutputPath = DeriveOutputPath(opts.FileA)
	}

	if err := os.WriteFile(sum.OutputPath, []byte(out), 0o644); err != nil {
		return sum, fmt.Errorf("writing %s: %w", sum.OutputPath, err)
	}
	sum.Wrote = true

	return sum, nil
}

// commonNames returns the names present in both mappings, sorted so the
// review order is stable and reproducible across runs.
func commonNames(a, b map[string]driver.TestCase) []string {
	var names []string
	for name := range a {
		if _, ok := b[name]; ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// DeriveOutputPath maps the first input's name to the default output name:
// "foo.go" becomes "foo_pruned.go". A name without the .go extension gets a
// literal ".pruned" appended.
func DeriveOutputPath(path string) string {
	if rest, ok := strings.CutSuffix(path, ".go"); ok {
		return rest + "_pruned.go"
	}
	return path + ".pruned"
}
