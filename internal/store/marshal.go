package store

import (
	"encoding/json"
	"fmt"

	"bidkit/internal/bidding"
)

// trailStep is the stored form of one decision step.
type trailStep struct {
	Decision    string `json:"decision"`
	Passed      bool   `json:"passed"`
	Description string `json:"description,omitempty"`
}

// trailDoc is the stored form of a full decision trail.
type trailDoc struct {
	Matched    string      `json:"matched,omitempty"`
	Label      string      `json:"label,omitempty"`
	Call       string      `json:"call,omitempty"`
	ProduceErr string      `json:"produce_error,omitempty"`
	Path       []trailStep `json:"path"`
	Rejected   []trailStep `json:"rejected"`
}

func toTrailSteps(steps []bidding.Step) []trailStep {
	out := make([]trailStep, len(steps))
	for i, s := range steps {
		out[i] = trailStep{
			Decision:    s.Decision.Name,
			Passed:      s.Passed,
			Description: s.Description,
		}
	}
	return out
}

// marshalTrail serializes a trail for storage. This is display data;
// content-addressed identity is computed over the inputs, not the trail.
func marshalTrail(trail *bidding.Trail) (string, error) {
	doc := trailDoc{
		Path:     toTrailSteps(trail.Path),
		Rejected: toTrailSteps(trail.Rejected),
	}
	if trail.Matched != nil {
		doc.Matched = trail.Matched.Name
		doc.Label = trail.Matched.Label
		doc.Call = trail.Matched.Call.String()
	}
	if trail.ProduceErr != nil {
		doc.ProduceErr = trail.ProduceErr.Error()
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("marshal trail: %w", err)
	}
	return string(data), nil
}
