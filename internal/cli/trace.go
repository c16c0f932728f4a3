package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"bidkit/internal/store"
)

// TraceOptions holds flags for the trace command.
type TraceOptions struct {
	*RootOptions
	Database string
	RuleSet  string
	ID       string
}

type traceRecordData struct {
	ID        string `json:"id"`
	RuleSet   string `json:"rule_set"`
	Seat      string `json:"seat"`
	Hand      string `json:"hand"`
	Auction   string `json:"auction,omitempty"`
	Matched   string `json:"matched,omitempty"`
	Call      string `json:"call,omitempty"`
	Seq       int64  `json:"seq"`
	Hash      string `json:"content_hash"`
	Trail     any    `json:"trail,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// NewTraceCommand creates the trace command.
func NewTraceCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TraceOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Query stored evaluation records",
		Long: `Query evaluation records written by evaluate --db.

Without --id, lists records in sequence order. With --id, shows one
record including its full decision trail.

Examples:
  bidkit trace --db ./bidkit.db
  bidkit trace --db ./bidkit.db --rule-set openings
  bidkit trace --db ./bidkit.db --id 0190c7a2-...`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrace(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	_ = cmd.MarkFlagRequired("db")
	cmd.Flags().StringVar(&opts.RuleSet, "rule-set", "", "filter to one rule set")
	cmd.Flags().StringVar(&opts.ID, "id", "", "show a single record with its trail")

	return cmd
}

func runTrace(opts *TraceOptions, cmd *cobra.Command) error {
	out := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	st, err := store.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer st.Close()

	ctx := context.Background()

	if opts.ID != "" {
		rec, err := st.GetEvaluation(ctx, opts.ID)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to get record", err)
		}
		return emitTraceRecord(out, rec)
	}

	recs, err := st.ListEvaluations(ctx, opts.RuleSet)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to list records", err)
	}

	data := make([]traceRecordData, 0, len(recs))
	var b strings.Builder
	for _, rec := range recs {
		data = append(data, toTraceData(rec, false))
		matched := rec.Matched
		if matched == "" {
			matched = "(no match)"
		}
		fmt.Fprintf(&b, "%4d  %s  %-14s %-18s %-8s %s\n",
			rec.Seq, rec.ID, rec.RuleSet, rec.Hand, rec.Call, matched)
	}
	if len(recs) == 0 {
		b.WriteString("No records.\n")
	}
	return out.SuccessText(b.String(), data)
}

func toTraceData(rec store.Record, withTrail bool) traceRecordData {
	d := traceRecordData{
		ID:      rec.ID,
		RuleSet: rec.RuleSet,
		Seat:    rec.Seat,
		Hand:    rec.Hand,
		Auction: rec.History,
		Matched: rec.Matched,
		Call:    rec.Call,
		Seq:     rec.Seq,
		Hash:    rec.ContentHash,
	}
	if !rec.CreatedAt.IsZero() {
		d.CreatedAt = rec.CreatedAt.UTC().Format("2006-01-02T15:04:05Z")
	}
	if withTrail {
		var trail any
		if err := json.Unmarshal([]byte(rec.TrailJSON), &trail); err == nil {
			d.Trail = trail
		}
	}
	return d
}

func emitTraceRecord(out *OutputFormatter, rec store.Record) error {
	data := toTraceData(rec, true)

	var b strings.Builder
	fmt.Fprintf(&b, "Record:   %s (seq %d)\n", data.ID, data.Seq)
	fmt.Fprintf(&b, "Rule set: %s\n", data.RuleSet)
	fmt.Fprintf(&b, "Hand:     %s (seat %s)\n", data.Hand, data.Seat)
	if data.Auction != "" {
		fmt.Fprintf(&b, "Auction:  %s\n", data.Auction)
	}
	if data.Matched != "" {
		fmt.Fprintf(&b, "Outcome:  %s -> %s\n", data.Matched, data.Call)
	} else {
		b.WriteString("Outcome:  (no match)\n")
	}
	fmt.Fprintf(&b, "Hash:     %s\n", data.Hash)
	fmt.Fprintf(&b, "Trail:    %s\n", rec.TrailJSON)
	return out.SuccessText(b.String(), data)
}
