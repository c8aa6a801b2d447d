package cli

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emenda-labs/testprune/core/report"
)

func newTestPruneCmd(runFunc PruneRunFunc) (*bytes.Buffer, *bytes.Buffer, func(args ...string) error) {
	cmd := NewPruneCmd(runFunc)
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	return out, errOut, func(args ...string) error {
		cmd.SetArgs(args)
		return cmd.Execute()
	}
}

func writeTempSource(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("package x\n\nfunc TestX(t *T) {}\n"), 0o644))
	return path
}

func noopRun(ctx context.Context, opts PruneOptions) (report.Summary, error) {
	return report.Summary{FileA: opts.FileA, FileB: opts.FileB}, nil
}

func TestPruneCmd_RequiresTwoArgs(t *testing.T) {
	InitConfig()

	_, _, execute := newTestPruneCmd(noopRun)
	err := execute("only-one.go")
	require.Error(t, err)
}

func TestPruneCmd_MissingInputFile(t *testing.T) {
	InitConfig()

	dir := t.TempDir()
	fileA := writeTempSource(t, dir, "a.go")
	missing := filepath.Join(dir, "missing.go")

	_, _, execute := newTestPruneCmd(noopRun)
	err := execute(fileA, missing)
	require.Error(t, err)
	assert.Contains(t, err.Error(), missing)
}

func TestPruneCmd_RejectsDirectoryInput(t *testing.T) {
	InitConfig()

	dir := t.TempDir()
	fileA := writeTempSource(t, dir, "a.go")

	_, _, execute := newTestPruneCmd(noopRun)
	err := execute(fileA, dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "directory")
}

func TestPruneCmd_PassesOptionsAndPrintsSummary(t *testing.T) {
	InitConfig()

	dir := t.TempDir()
	fileA := writeTempSource(t, dir, "a.go")
	fileB := writeTempSource(t, dir, "b.go")

	var got PruneOptions
	run := func(ctx context.Context, opts PruneOptions) (report.Summary, error) {
		got = opts
		return report.Summary{
			FileA:      opts.FileA,
			FileB:      opts.FileB,
			TestsA:     3,
			TestsB:     2,
			Common:     []string{"TestAdd", "TestSub"},
			Decisions:  []report.Decision{{Name: "TestAdd", Equivalent: false}, {Name: "TestSub", Equivalent: true}},
			Equivalent: []string{"TestSub"},
			Removed:    1,
			OutputPath: "a_pruned.go",
			Wrote:      true,
		}, nil
	}

	out, _, execute := newTestPruneCmd(run)
	require.NoError(t, execute(fileA, fileB, "--prefix", "Test", "-o", "custom.go"))

	assert.Equal(t, fileA, got.FileA)
	assert.Equal(t, fileB, got.FileB)
	assert.Equal(t, "Test", got.Prefix)
	assert.Equal(t, "custom.go", got.Output)

	output := out.String()
	assert.Contains(t, output, "3 test(s)")
	assert.Contains(t, output, "2 test(s)")
	assert.Contains(t, output, "Compared 2 common test name(s).")
	assert.Contains(t, output, "TestSub")
	assert.Contains(t, output, "Removed 1 test(s)")
	assert.Contains(t, output, "Wrote a_pruned.go")
}

func TestPruneCmd_WriteLogFlag(t *testing.T) {
	InitConfig()

	dir := t.TempDir()
	fileA := writeTempSource(t, dir, "a.go")
	fileB := writeTempSource(t, dir, "b.go")

	var got PruneOptions
	run := func(ctx context.Context, opts PruneOptions) (report.Summary, error) {
		got = opts
		return report.Summary{FileA: opts.FileA, FileB: opts.FileB}, nil
	}

	_, _, execute := newTestPruneCmd(run)
	require.NoError(t, execute(fileA, fileB, "--write-log"))
	defer viper.Set(writeLogFlagName, defaultWriteLog)

	assert.True(t, got.WriteLog)
	assert.True(t, viper.GetBool(writeLogFlagName))
}

func TestPruneCmd_WriteLogDefaultsOff(t *testing.T) {
	InitConfig()

	dir := t.TempDir()
	fileA := writeTempSource(t, dir, "a.go")
	fileB := writeTempSource(t, dir, "b.go")

	var got PruneOptions
	run := func(ctx context.Context, opts PruneOptions) (report.Summary, error) {
		got = opts
		return report.Summary{FileA: opts.FileA, FileB: opts.FileB}, nil
	}

	_, _, execute := newTestPruneCmd(run)
	require.NoError(t, execute(fileA, fileB))

	assert.False(t, got.WriteLog)
}

func TestPruneCmd_PassesCommandStreams(t *testing.T) {
	InitConfig()

	dir := t.TempDir()
	fileA := writeTempSource(t, dir, "a.go")
	fileB := writeTempSource(t, dir, "b.go")

	run := func(ctx context.Context, opts PruneOptions) (report.Summary, error) {
		// Echo one answer from the injected streams, the way the interactive
		// reviewer does.
		answer, err := bufio.NewReader(opts.In).ReadString('\n')
		if err != nil {
			return report.Summary{}, err
		}
		fmt.Fprintf(opts.Out, "answer was %s", answer)
		return report.Summary{FileA: opts.FileA, FileB: opts.FileB}, nil
	}

	cmd := NewPruneCmd(run)
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader("y\n"))
	cmd.SetArgs([]string{fileA, fileB})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "answer was y")
}

func TestPruneCmd_NoCommonNamesSummary(t *testing.T) {
	InitConfig()

	dir := t.TempDir()
	fileA := writeTempSource(t, dir, "a.go")
	fileB := writeTempSource(t, dir, "b.go")

	run := func(ctx context.Context, opts PruneOptions) (report.Summary, error) {
		return report.Summary{FileA: opts.FileA, FileB: opts.FileB, TestsA: 1, TestsB: 1}, nil
	}

	out, _, execute := newTestPruneCmd(run)
	require.NoError(t, execute(fileA, fileB))

	assert.Contains(t, out.String(), "No common test names found")
}

func TestPruneCmd_NothingConfirmedSummary(t *testing.T) {
	InitConfig()

	dir := t.TempDir()
	fileA := writeTempSource(t, dir, "a.go")
	fileB := writeTempSource(t, dir, "b.go")

	run := func(ctx context.Context, opts PruneOptions) (report.Summary, error) {
		return report.Summary{
			FileA:     opts.FileA,
			FileB:     opts.FileB,
			TestsA:    1,
			TestsB:    1,
			Common:    []string{"TestX"},
			Decisions: []report.Decision{{Name: "TestX", Equivalent: false}},
		}, nil
	}

	out, _, execute := newTestPruneCmd(run)
	require.NoError(t, execute(fileA, fileB))

	assert.Contains(t, out.String(), "No equivalent tests confirmed; nothing written.")
}
