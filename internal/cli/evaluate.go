package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"bidkit/internal/bidding"
	"bidkit/internal/store"
)

// EvaluateOptions holds flags for the evaluate command.
type EvaluateOptions struct {
	*RootOptions
	evalInput
	Fast     bool
	Database string
}

// evaluateData is the JSON payload for an evaluation.
type evaluateData struct {
	RuleSet  string     `json:"rule_set"`
	Hand     string     `json:"hand"`
	Seat     string     `json:"seat"`
	Auction  string     `json:"auction,omitempty"`
	Matched  string     `json:"matched,omitempty"`
	Label    string     `json:"label,omitempty"`
	Call     string     `json:"call,omitempty"`
	Path     []stepData `json:"path,omitempty"`
	Rejected []stepData `json:"rejected,omitempty"`
	RecordID string     `json:"record_id,omitempty"`
}

type stepData struct {
	Decision    string `json:"decision"`
	Passed      bool   `json:"passed"`
	Description string `json:"description,omitempty"`
}

// NewEvaluateCommand creates the evaluate command.
func NewEvaluateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EvaluateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "evaluate <hand>",
		Short: "Evaluate a hand against a rule set",
		Long: `Evaluate a hand against a rule set and show the decision trail.

The hand uses dotted notation, spades first: "AKQ2.T98.765.432".

Examples:
  bidkit evaluate "AKQ2.KJ9.Q75.432"
  bidkit evaluate "A43.KJ982.765.43" --rule-set 1nt-responses --auction "1NT Pass"
  bidkit evaluate "AKQ2.KJ9.Q75.432" --fast
  bidkit evaluate "AKQ2.KJ9.Q75.432" --db ./bidkit.db`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEvaluate(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.RuleSet, "rule-set", "openings", "rule set to evaluate against")
	cmd.Flags().StringVar(&opts.Auction, "auction", "", "prior calls, space separated")
	cmd.Flags().StringVar(&opts.Dealer, "dealer", "", "dealer seat (N|E|S|W)")
	cmd.Flags().StringVar(&opts.Seat, "seat", "", "acting seat (N|E|S|W)")
	cmd.Flags().StringArrayVar(&opts.Rules, "rules", nil, "CUE rule-set file to load (repeatable)")
	cmd.Flags().BoolVar(&opts.Fast, "fast", false, "skip the decision trail")
	cmd.Flags().StringVar(&opts.Database, "db", "", "persist the evaluation to this SQLite database")

	return cmd
}

func runEvaluate(opts *EvaluateOptions, handStr string, cmd *cobra.Command) error {
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

	data := evaluateData{
		RuleSet: opts.RuleSet,
		Hand:    ctx.Hand.String(),
		Seat:    ctx.Seat.String(),
		Auction: ctx.History.String(),
	}

	if opts.Fast {
		match := bidding.EvaluateFast(root, ctx)
		if match != nil {
			data.Matched = match.Name
			data.Label = match.Label
			data.Call = match.Call.String()
		}
		return emitEvaluation(out, data)
	}

	trail := bidding.Evaluate(root, ctx)
	if trail.ProduceErr != nil {
		return WrapExitError(ExitCommandError, "outcome failed to produce a call", trail.ProduceErr)
	}
	if trail.Matched != nil {
		data.Matched = trail.Matched.Name
		data.Label = trail.Matched.Label
		data.Call = trail.Matched.Call.String()
	}
	data.Path = toStepData(trail.Path)
	data.Rejected = toStepData(trail.Rejected)

	if opts.Database != "" {
		id, err := persistEvaluation(opts.Database, opts.RuleSet, ctx, trail)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to persist evaluation", err)
		}
		data.RecordID = id
		out.VerboseLog("stored evaluation %s", id)
	}

	return emitEvaluation(out, data)
}

func toStepData(steps []bidding.Step) []stepData {
	out := make([]stepData, len(steps))
	for i, s := range steps {
		out[i] = stepData{
			Decision:    s.Decision.Name,
			Passed:      s.Passed,
			Description: s.Description,
		}
	}
	return out
}

// persistEvaluation writes the evaluation to the store, allocating the
// next sequence number. Rewriting an identical evaluation is a no-op.
func persistEvaluation(dbPath, ruleSet string, ctx *bidding.Context, trail *bidding.Trail) (string, error) {
	st, err := store.Open(dbPath)
	if err != nil {
		return "", err
	}
	defer st.Close()

	bg := context.Background()
	seq, err := st.NextSeq(bg)
	if err != nil {
		return "", err
	}

	rec, err := store.NewRecord(store.UUIDv7Generator{}, ruleSet, ctx, trail, seq)
	if err != nil {
		return "", err
	}

	inserted, err := st.WriteEvaluation(bg, rec)
	if err != nil {
		return "", err
	}
	if !inserted {
		existing, err := st.GetEvaluationByHash(bg, rec.ContentHash)
		if err != nil {
			return "", err
		}
		return existing.ID, nil
	}
	return rec.ID, nil
}

func emitEvaluation(out *OutputFormatter, data evaluateData) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Rule set: %s\n", data.RuleSet)
	fmt.Fprintf(&b, "Hand:     %s (seat %s)\n", data.Hand, data.Seat)
	if data.Auction != "" {
		fmt.Fprintf(&b, "Auction:  %s\n", data.Auction)
	}
	b.WriteString("\n")

	for _, s := range data.Path {
		fmt.Fprintf(&b, "  PASS %s\n", s.Decision)
	}
	for _, s := range data.Rejected {
		fmt.Fprintf(&b, "  FAIL %s: %s\n", s.Decision, s.Description)
	}
	if len(data.Path)+len(data.Rejected) > 0 {
		b.WriteString("\n")
	}

	if data.Matched == "" {
		b.WriteString("No outcome matched.\n")
		if err := out.SuccessText(b.String(), data); err != nil {
			return err
		}
		return NewExitError(ExitFailure, "no outcome matched")
	}

	fmt.Fprintf(&b, "Outcome: %s (%s)\n", data.Matched, data.Label)
	fmt.Fprintf(&b, "Call:    %s\n", data.Call)
	if data.RecordID != "" {
		fmt.Fprintf(&b, "Record:  %s\n", data.RecordID)
	}
	return out.SuccessText(b.String(), data)
}
