package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// RuleSetsOptions holds flags for the rulesets command.
type RuleSetsOptions struct {
	*RootOptions
	Rules []string
}

type ruleSetData struct {
	ID          string `json:"id"`
	Description string `json:"description,omitempty"`
	Source      string `json:"source,omitempty"`
}

// NewRuleSetsCommand creates the rulesets command.
func NewRuleSetsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RuleSetsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "rulesets",
		Short: "List available rule sets",
		Long: `List the built-in rule sets plus any loaded from CUE files.

Examples:
  bidkit rulesets
  bidkit rulesets --rules ./myrules.cue --format json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRuleSets(opts, cmd)
		},
	}

	cmd.Flags().StringArrayVar(&opts.Rules, "rules", nil, "CUE rule-set file to load (repeatable)")

	return cmd
}

func runRuleSets(opts *RuleSetsOptions, cmd *cobra.Command) error {
	out := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	reg, err := buildRegistry(opts.Rules)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load rule sets", err)
	}

	var data []ruleSetData
	var b strings.Builder
	for _, entry := range reg.List() {
		data = append(data, ruleSetData{
			ID:          entry.ID,
			Description: entry.Meta.Description,
			Source:      entry.Meta.Source,
		})
		fmt.Fprintf(&b, "%-16s %s\n", entry.ID, entry.Meta.Description)
	}
	return out.SuccessText(b.String(), data)
}
