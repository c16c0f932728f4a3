package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"bidkit/internal/bidding"
	"bidkit/internal/canonical"
)

// toCanonicalMap renders a result for golden comparison. Canonical JSON
// keeps the byte form deterministic across runs.
func (r *Result) toCanonicalMap() map[string]any {
	deals := make([]any, len(r.Deals))
	for i, d := range r.Deals {
		m := map[string]any{
			"hand":   d.Hand,
			"passed": d.Passed,
		}
		if d.Matched != "" {
			m["matched"] = d.Matched
		}
		if d.Call != "" {
			m["call"] = d.Call
		}
		if len(d.Failures) > 0 {
			failures := make([]any, len(d.Failures))
			for j, f := range d.Failures {
				failures[j] = f
			}
			m["failures"] = failures
		}
		deals[i] = m
	}
	return map[string]any{
		"scenario": r.Scenario,
		"rule_set": r.RuleSet,
		"passed":   r.Passed,
		"deals":    deals,
	}
}

// RunWithGolden runs a scenario and compares the result against a golden
// file at testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, scenario *Scenario, reg *bidding.Registry) error {
	t.Helper()

	result, err := Run(scenario, reg)
	if err != nil {
		return err
	}
	return AssertGolden(t, scenario.Name, result)
}

// AssertGolden compares an already-computed result against its golden file.
func AssertGolden(t *testing.T, name string, result *Result) error {
	t.Helper()

	data, err := canonical.Marshal(result.toCanonicalMap())
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, data)
	return nil
}
