package compiler

import (
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// LoadString compiles a rule set from CUE source. The name is used for
// error positions.
func LoadString(name, src string) (*RuleSet, error) {
	ctx := cuecontext.New()
	v := ctx.CompileString(src, cue.Filename(name))
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	rsVal := v.LookupPath(cue.ParsePath("rule_set"))
	if !rsVal.Exists() {
		return nil, &CompileError{
			Field:   "rule_set",
			Message: "no rule_set declaration found",
			Pos:     v.Pos(),
		}
	}
	return CompileRuleSet(rsVal)
}

// LoadFile compiles a rule set from a CUE file on disk.
func LoadFile(path string) (*RuleSet, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load rule set: %w", err)
	}
	return LoadString(path, string(src))
}
