package canonical

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Domain prefix for content-addressed evaluation identity. The version
// suffix leaves room for an algorithm migration later.
const DomainEvaluation = "bidkit/evaluation/v1"

// hashWithDomain computes SHA-256 over domain + 0x00 + data. The null
// separator prevents domain/data boundary ambiguity.
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// EvaluationHash computes the content-addressed identity of an evaluation:
// the rule set, seat, hand and auction that produced a result. The hash is
// stable across restarts given the same inputs; log position is excluded
// so re-evaluating a position collides with its original record.
func EvaluationHash(ruleSet, seat, hand, history string) (string, error) {
	obj := map[string]any{
		"rule_set": ruleSet,
		"seat":     seat,
		"hand":     hand,
		"history":  history,
	}

	data, err := Marshal(obj)
	if err != nil {
		return "", fmt.Errorf("EvaluationHash: failed to marshal: %w", err)
	}
	return hashWithDomain(DomainEvaluation, data), nil
}

// MustEvaluationHash is like EvaluationHash but panics on error. Use only
// in tests or when inputs are known to be valid.
func MustEvaluationHash(ruleSet, seat, hand, history string) string {
	id, err := EvaluationHash(ruleSet, seat, hand, history)
	if err != nil {
		panic(err)
	}
	return id
}
