package report

// Decision records the oracle's verdict for one common test name.
type Decision struct {
	Name       string `json:"name"`
	Equivalent bool   `json:"equivalent"`
}

// Summary is the full accounting of one prune run. The CLI prints these
// counts verbatim, so they must mirror the pruner's internal state exactly.
type Summary struct {
	FileA      string     `json:"file_a"`
	FileB      string     `json:"file_b"`
	TestsA     int        `json:"tests_a"`
	TestsB     int        `json:"tests_b"`
	Common     []string   `json:"common,omitempty"`
	Decisions  []Decision `json:"decisions,omitempty"`
	Equivalent []string   `json:"equivalent,omitempty"`
	Removed    int        `json:"removed"`
	OutputPath string     `json:"output_path,omitempty"`
	Wrote      bool       `json:"wrote"`
	Aborted    bool       `json:"aborted,omitempty"`
}
