package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDrill(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "drill.yaml")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestDrill_Pass(t *testing.T) {
	path := writeDrill(t, `name: openers
description: basic openings
rule_set: openings
deals:
  - hand: "AKQ2.KJ9.Q75.432"
    expect:
      outcome: open-1nt
      call: 1NT
  - hand: "5432.5432.543.32"
    expect:
      outcome: pass
`)

	out, err := execute(t, "drill", path)
	require.NoError(t, err)
	assert.Contains(t, out, "PASS openers")
}

func TestDrill_Fail(t *testing.T) {
	path := writeDrill(t, `name: wrong
description: a deliberate miss
rule_set: openings
deals:
  - hand: "AKQ2.KJ9.Q75.432"
    expect:
      outcome: weak-2s
`)

	out, err := execute(t, "drill", path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "FAIL wrong")
	assert.Contains(t, out, `want "weak-2s"`)
}

func TestDrill_BadScenario(t *testing.T) {
	path := writeDrill(t, `name: broken`)

	_, err := execute(t, "drill", path)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestDrill_WithLoadedRules(t *testing.T) {
	rules := writeRules(t, probeRulesCUE)
	path := writeDrill(t, `name: probe-drill
description: loaded rule set
rule_set: probe
deals:
  - hand: "AKQ2.KJ9.Q75.432"
    expect:
      outcome: pass
      call: Pass
`)

	out, err := execute(t, "drill", path, "--rules", rules)
	require.NoError(t, err)
	assert.Contains(t, out, "PASS probe-drill")
}
