package cmd

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	berrors "github.com/mouse-blink/buildmatrix/internal/errors"
)

func requireMake(t *testing.T) {
	t.Helper()

	if _, err := exec.LookPath("make"); err != nil {
		t.Skip("make not available")
	}
}

func TestIntegration_BasicMatrix(t *testing.T) {
	requireMake(t)
	clearEnv(t)
	withWorkflow(t, nil)

	report := filepath.Join(t.TempDir(), "reports", "run.yaml")

	t.Setenv("BUILDMATRIX_DIR", filepath.Join("..", "examples", "basic"))
	t.Setenv("BUILDMATRIX_UI", "simple")
	t.Setenv("BUILDMATRIX_REPORT", report)

	cmd, out := newTestRootCmd()
	cmd.SetArgs([]string{"run", "BOARD=evb"})

	err := cmd.Execute()

	// make reports a failed recipe with exit status 2
	require.Error(t, err)
	assert.True(t, berrors.IsExecution(err))
	assert.Equal(t, 2, berrors.ExitCode(err))

	text := out.String()
	assert.Contains(t, text, "Make add arguments: BOARD=evb")
	assert.Contains(t, text, `SEL_CLOCK="8MHZ" SEL_LIN="ON"`)
	assert.Contains(t, text, "building clock=16MHZ lin=ON evb")
	assert.Contains(t, text, "make -f CompilationTest.mk clean all SEL_CLOCK=8MHZ SEL_LIN=ON BOARD=evb")
	assert.Contains(t, text, "error: LIN cannot be disabled at 16MHZ")
	assert.Contains(t, text, "=== Configurations build summary ===")

	raw, err := os.ReadFile(report)
	require.NoError(t, err)

	var doc struct {
		Summary struct {
			Total    int `yaml:"total"`
			Passed   int `yaml:"passed"`
			Failed   int `yaml:"failed"`
			ExitCode int `yaml:"exit_code"`
		} `yaml:"summary"`
		Results []struct {
			Configuration string `yaml:"configuration"`
			Outcome       string `yaml:"outcome"`
		} `yaml:"results"`
	}
	require.NoError(t, yaml.Unmarshal(raw, &doc))

	assert.Equal(t, 4, doc.Summary.Total)
	assert.Equal(t, 3, doc.Summary.Passed)
	assert.Equal(t, 1, doc.Summary.Failed)
	assert.Equal(t, 2, doc.Summary.ExitCode)
	require.Len(t, doc.Results, 4)
	assert.Equal(t, `SEL_CLOCK="16MHZ" SEL_LIN="OFF"`, doc.Results[3].Configuration)
	assert.Equal(t, "FAILED", doc.Results[3].Outcome)
}

func TestIntegration_List(t *testing.T) {
	requireMake(t)
	clearEnv(t)
	withWorkflow(t, nil)

	t.Setenv("BUILDMATRIX_DIR", filepath.Join("..", "examples", "basic"))
	t.Setenv("BUILDMATRIX_UI", "simple")

	cmd, out := newTestRootCmd()
	cmd.SetArgs([]string{"list"})

	require.NoError(t, cmd.Execute())

	text := out.String()
	assert.Contains(t, text, "OPT_CLOCK")
	assert.Contains(t, text, "8MHZ 16MHZ")
	assert.Contains(t, text, "OPT_UNUSED")
	assert.NotContains(t, text, "building")
}

func TestIntegration_MissingTool(t *testing.T) {
	clearEnv(t)
	withWorkflow(t, nil)

	t.Setenv("BUILDMATRIX_DIR", filepath.Join("..", "examples", "basic"))
	t.Setenv("BUILDMATRIX_UI", "simple")
	t.Setenv("BUILDMATRIX_COMMAND", "buildmatrix-no-such-tool")

	cmd, _ := newTestRootCmd()
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.True(t, berrors.IsConfig(err))
}
