package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/emenda-labs/testprune/core/report"
)

// PruneOptions holds the parsed arguments and flags for "prune".
type PruneOptions struct {
	FileA    string
	FileB    string
	Output   string
	Prefix   string
	WriteLog bool

	// In and Out are the command's streams; the interactive reviewer reads
	// and writes through them so tests can capture the exchange.
	In  io.Reader
	Out io.Writer
}

// PruneRunFunc is the function signature for the prune command handler.
// It is injected by the wiring layer (cmd/testprune/main.go).
type PruneRunFunc func(ctx context.Context, opts PruneOptions) (report.Summary, error)

// NewPruneCmd creates the "prune" command.
func NewPruneCmd(runFunc PruneRunFunc) *cobra.Command {
	var opts PruneOptions

	cmd := &cobra.Command{
		Use:   "prune <file1> <file2>",
		Short: "Remove tests from file1 that duplicate tests in file2",
		Long: "Extract all matching test functions from both files, review each common name\n" +
			"interactively, and write file1 with the confirmed-equivalent tests removed.",
		Args: cobra.ExactArgs(2),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			opts.FileA = args[0]
			opts.FileB = args[1]
			return validatePruneArgs(opts)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.In = cmd.InOrStdin()
			opts.Out = cmd.OutOrStdout()

			sum, err := runFunc(cmd.Context(), opts)
			if err != nil {
				return err
			}
			printSummary(cmd, sum)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Output, outputFlagName, "o", viper.GetString(outputFlagName), "output path (default: <file1> with a _pruned suffix)")
	bindFlagToConfig(cmd.Flags().Lookup(outputFlagName), outputFlagName)

	cmd.Flags().StringVar(&opts.Prefix, prefixFlagName, viper.GetString(prefixFlagName), "test function name prefix")
	bindFlagToConfig(cmd.Flags().Lookup(prefixFlagName), prefixFlagName)

	cmd.Flags().BoolVar(&opts.WriteLog, writeLogFlagName, viper.GetBool(writeLogFlagName), "write run diagnostics to the rotating log file")
	bindFlagToConfig(cmd.Flags().Lookup(writeLogFlagName), writeLogFlagName)

	return cmd
}

func validatePruneArgs(opts PruneOptions) error {
	if opts.Prefix == "" {
		return fmt.Errorf("--%s must not be empty", prefixFlagName)
	}

	for _, path := range []string{opts.FileA, opts.FileB} {
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				return fmt.Errorf("input file does not exist: %s", path)
			}
			return fmt.Errorf("cannot access %s: %w", path, err)
		}
		if info.IsDir() {
			return fmt.Errorf("input is a directory: %s", path)
		}
	}

	return nil
}

// printSummary reports the run to stdout. The counts come straight from the
// pruner state so scripted callers can rely on them.
func printSummary(cmd *cobra.Command, sum report.Summary) {
	cmd.Printf("%s: %d test(s)\n", sum.FileA, sum.TestsA)
	cmd.Printf("%s: %d test(s)\n", sum.FileB, sum.TestsB)

	if len(sum.Common) == 0 {
		cmd.Println("No common test names found between the two files.")
		return
	}
	cmd.Printf("Compared %d common test name(s).\n", len(sum.Common))

	if sum.Aborted {
		cmd.Println("Review ended early; decisions made so far were kept.")
	}

	if len(sum.Decisions) > 0 {
		cmd.Print(renderDecisionTable(sum.Decisions))
	}

	if !sum.Wrote {
		cmd.Println("No equivalent tests confirmed; nothing written.")
		return
	}

	cmd.Printf("Removed %d test(s) from %s\n", sum.Removed, sum.FileA)
	cmd.Printf("Wrote %s\n", sum.OutputPath)
}

func renderDecisionTable(decisions []report.Decision) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Test", "Verdict"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	equivalent := 0
	for _, d := range decisions {
		verdict := "kept"
		if d.Equivalent {
			verdict = "equivalent"
			equivalent++
		}
		table.Append([]string{d.Name, verdict})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Equivalent %d", equivalent),
		fmt.Sprintf("of %d", len(decisions)),
	})

	table.Render()

	return buf.String()
}
