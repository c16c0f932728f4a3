package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"bidkit/internal/bidding"
	"bidkit/internal/compiler"
)

// CompileOptions holds flags for the compile command.
type CompileOptions struct {
	*RootOptions
}

type compileData struct {
	File        string `json:"file"`
	ID          string `json:"id"`
	Description string `json:"description,omitempty"`
	Decisions   int    `json:"decisions"`
	Outcomes    int    `json:"outcomes"`
	DeadEnds    int    `json:"dead_ends"`
}

// NewCompileCommand creates the compile command.
func NewCompileCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CompileOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "compile <file.cue>...",
		Short: "Compile and validate CUE rule-set files",
		Long: `Compile CUE rule-set files without evaluating anything. Reports
structural defects with source positions.

Examples:
  bidkit compile ./openings.cue
  bidkit compile ./openings.cue ./responses.cue --format json`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(opts, args, cmd)
		},
	}

	return cmd
}

func runCompile(opts *CompileOptions, files []string, cmd *cobra.Command) error {
	out := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	var data []compileData
	var b strings.Builder
	for _, path := range files {
		rs, err := compiler.LoadFile(path)
		if err != nil {
			if ferr := out.Error(ErrCodeCompile, err.Error(), nil); ferr != nil {
				return ferr
			}
			return NewExitError(ExitFailure, fmt.Sprintf("compilation failed: %s", path))
		}

		d := compileData{File: path, ID: rs.ID, Description: rs.Description}
		countNodes(rs.Root, &d)
		data = append(data, d)
		fmt.Fprintf(&b, "%s: rule set %q (%d decisions, %d outcomes, %d dead ends)\n",
			path, rs.ID, d.Decisions, d.Outcomes, d.DeadEnds)
	}
	return out.SuccessText(b.String(), data)
}

func countNodes(n bidding.Node, d *compileData) {
	switch node := n.(type) {
	case *bidding.Decision:
		d.Decisions++
		countNodes(node.Yes, d)
		countNodes(node.No, d)
	case *bidding.Outcome:
		d.Outcomes++
	case *bidding.DeadEnd:
		d.DeadEnds++
	}
}
