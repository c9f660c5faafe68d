package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/buildmatrix/internal/domain"
	domainmocks "github.com/mouse-blink/buildmatrix/internal/domain/mocks"
	berrors "github.com/mouse-blink/buildmatrix/internal/errors"
)

func TestListCmd(t *testing.T) {
	clearEnv(t)

	mockWorkflow := domainmocks.NewMockWorkflow(t)
	withWorkflow(t, mockWorkflow)

	mockWorkflow.EXPECT().
		List(mock.Anything, domain.ListArgs{Passthrough: []string{"BOARD=evb"}}).
		Return(nil)

	cmd, _ := newTestRootCmd()
	cmd.SetArgs([]string{"list", "BOARD=evb"})

	require.NoError(t, cmd.Execute())
}

func TestListCmd_DiscoveryError(t *testing.T) {
	clearEnv(t)

	mockWorkflow := domainmocks.NewMockWorkflow(t)
	withWorkflow(t, mockWorkflow)

	mockWorkflow.EXPECT().
		List(mock.Anything, mock.Anything).
		Return(berrors.ConfigWrap(errors.New("exit status 2"), "option discovery failed"))

	cmd, _ := newTestRootCmd()
	cmd.SetArgs([]string{"list"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, berrors.ExitConfigError, berrors.ExitCode(err))
}

func TestListCmd_Metadata(t *testing.T) {
	cmd := newListCmd()

	assert.Equal(t, "list [make arguments...]", cmd.Use)
	assert.Equal(t, listLongDescription, cmd.Long)
}
