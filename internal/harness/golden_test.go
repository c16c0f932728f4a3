package harness

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGolden_Openings(t *testing.T) {
	s, err := LoadScenario("testdata/scenarios/openings-basics.yaml")
	require.NoError(t, err)
	require.NoError(t, RunWithGolden(t, s, testRegistry(t)))
}

func TestGolden_OneNTResponses(t *testing.T) {
	s, err := LoadScenario("testdata/scenarios/one-nt-responses.yaml")
	require.NoError(t, err)
	require.NoError(t, RunWithGolden(t, s, testRegistry(t)))
}
