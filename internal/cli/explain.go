package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"bidkit/internal/bidding"
)

// ExplainOptions holds flags for the explain command.
type ExplainOptions struct {
	*RootOptions
	evalInput
}

// explainData is the JSON payload for an explanation.
type explainData struct {
	RuleSet  string        `json:"rule_set"`
	Hand     string        `json:"hand"`
	Seat     string        `json:"seat"`
	Auction  string        `json:"auction,omitempty"`
	Matched  string        `json:"matched"`
	Call     string        `json:"call"`
	Siblings []siblingData `json:"siblings"`
}

type siblingData struct {
	Outcome string       `json:"outcome"`
	Label   string       `json:"label,omitempty"`
	Call    string       `json:"call,omitempty"`
	Failed  []failedData `json:"failed"`
}

type failedData struct {
	Condition   string `json:"condition"`
	Category    string `json:"category"`
	Required    bool   `json:"required"`
	Description string `json:"description"`
}

// NewExplainCommand creates the explain command.
func NewExplainCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExplainOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "explain <hand>",
		Short: "Explain why the alternatives to the chosen call lost",
		Long: `Evaluate a hand, then show every sibling outcome the rule set could
have reached in the same auction context and the conditions that ruled
each one out.

Examples:
  bidkit explain "AJ3.KJ9.7654.432" --rule-set 1nt-responses --auction "1NT Pass"
  bidkit explain "AKQ2.KJ9.Q75.432" --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExplain(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.RuleSet, "rule-set", "openings", "rule set to evaluate against")
	cmd.Flags().StringVar(&opts.Auction, "auction", "", "prior calls, space separated")
	cmd.Flags().StringVar(&opts.Dealer, "dealer", "", "dealer seat (N|E|S|W)")
	cmd.Flags().StringVar(&opts.Seat, "seat", "", "acting seat (N|E|S|W)")
	cmd.Flags().StringArrayVar(&opts.Rules, "rules", nil, "CUE rule-set file to load (repeatable)")

	return cmd
}

func runExplain(opts *ExplainOptions, handStr string, cmd *cobra.Command) error {
	out := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	ctx, root, err := buildEvalContext(opts.evalInput, handStr)
	if err != nil {
		return err
	}

	trail := bidding.Evaluate(root, ctx)
	if trail.Matched == nil {
		return NewExitError(ExitFailure, "no outcome matched; nothing to explain")
	}

	siblings, err := bidding.FindSiblings(root, trail.Matched.Name, ctx)
	if err != nil {
		if bidding.IsCategoryOrderError(err) {
			return WrapExitError(ExitCommandError, "rule set breaks category ordering", err)
		}
		return WrapExitError(ExitCommandError, "failed to find siblings", err)
	}

	data := explainData{
		RuleSet:  opts.RuleSet,
		Hand:     ctx.Hand.String(),
		Seat:     ctx.Seat.String(),
		Auction:  ctx.History.String(),
		Matched:  trail.Matched.Name,
		Call:     trail.Matched.Call.String(),
		Siblings: make([]siblingData, 0, len(siblings)),
	}
	for _, s := range siblings {
		sd := siblingData{
			Outcome: s.OutcomeName,
			Label:   s.Label,
			Call:    s.Call.String(),
			Failed:  make([]failedData, 0, len(s.Failed)),
		}
		for _, f := range s.Failed {
			sd.Failed = append(sd.Failed, failedData{
				Condition:   f.Name,
				Category:    string(f.Category),
				Required:    f.Required,
				Description: f.Description,
			})
		}
		data.Siblings = append(data.Siblings, sd)
	}

	return emitExplanation(out, data)
}

func emitExplanation(out *OutputFormatter, data explainData) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Hand %s (seat %s)", data.Hand, data.Seat)
	if data.Auction != "" {
		fmt.Fprintf(&b, " after %s", data.Auction)
	}
	fmt.Fprintf(&b, ": %s bids %s\n\n", data.RuleSet, data.Call)
	fmt.Fprintf(&b, "Chosen: %s\n", data.Matched)

	if len(data.Siblings) == 0 {
		b.WriteString("No alternatives in this auction context.\n")
		return out.SuccessText(b.String(), data)
	}

	b.WriteString("Not chosen:\n")
	for _, s := range data.Siblings {
		fmt.Fprintf(&b, "  %s (%s)\n", s.Outcome, s.Call)
		for _, f := range s.Failed {
			want := "needed"
			if !f.Required {
				want = "blocked by"
			}
			fmt.Fprintf(&b, "    %s %s: %s\n", want, f.Condition, f.Description)
		}
	}
	return out.SuccessText(b.String(), data)
}
