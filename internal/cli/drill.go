package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"bidkit/internal/harness"
)

// DrillOptions holds flags for the drill command.
type DrillOptions struct {
	*RootOptions
	Rules []string
}

type drillData struct {
	Scenario string          `json:"scenario"`
	RuleSet  string          `json:"rule_set"`
	Passed   bool            `json:"passed"`
	Deals    []drillDealData `json:"deals"`
}

type drillDealData struct {
	Hand     string   `json:"hand"`
	Matched  string   `json:"matched,omitempty"`
	Call     string   `json:"call,omitempty"`
	Passed   bool     `json:"passed"`
	Failures []string `json:"failures,omitempty"`
}

// NewDrillCommand creates the drill command.
func NewDrillCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DrillOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "drill <scenario.yaml>...",
		Short: "Run drill scenarios against the rule sets",
		Long: `Run YAML drill scenarios: each deal is evaluated and compared to its
expected outcome. Exits 1 when any deal misses its expectation.

Examples:
  bidkit drill ./drills/openings-basics.yaml
  bidkit drill ./drills/*.yaml --rules ./myrules.cue`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDrill(opts, args, cmd)
		},
	}

	cmd.Flags().StringArrayVar(&opts.Rules, "rules", nil, "CUE rule-set file to load (repeatable)")

	return cmd
}

func runDrill(opts *DrillOptions, files []string, cmd *cobra.Command) error {
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

	allPassed := true
	var data []drillData
	var b strings.Builder
	for _, path := range files {
		scenario, err := harness.LoadScenario(path)
		if err != nil {
			return WrapExitError(ExitCommandError, fmt.Sprintf("failed to load %s", path), err)
		}

		result, err := harness.Run(scenario, reg)
		if err != nil {
			return WrapExitError(ExitCommandError, fmt.Sprintf("failed to run %s", path), err)
		}

		data = append(data, toDrillData(result))
		renderDrill(&b, result)
		if !result.Passed {
			allPassed = false
		}
	}

	if err := out.SuccessText(b.String(), data); err != nil {
		return err
	}
	if !allPassed {
		return NewExitError(ExitFailure, "drill failed")
	}
	return nil
}

func toDrillData(r *harness.Result) drillData {
	d := drillData{
		Scenario: r.Scenario,
		RuleSet:  r.RuleSet,
		Passed:   r.Passed,
		Deals:    make([]drillDealData, 0, len(r.Deals)),
	}
	for _, deal := range r.Deals {
		d.Deals = append(d.Deals, drillDealData{
			Hand:     deal.Hand,
			Matched:  deal.Matched,
			Call:     deal.Call,
			Passed:   deal.Passed,
			Failures: deal.Failures,
		})
	}
	return d
}

func renderDrill(b *strings.Builder, r *harness.Result) {
	status := "PASS"
	if !r.Passed {
		status = "FAIL"
	}
	fmt.Fprintf(b, "%s %s (%s)\n", status, r.Scenario, r.RuleSet)
	for _, deal := range r.Deals {
		if deal.Passed {
			continue
		}
		fmt.Fprintf(b, "  %s\n", deal.Hand)
		for _, f := range deal.Failures {
			fmt.Fprintf(b, "    %s\n", f)
		}
	}
}
