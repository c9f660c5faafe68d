package domain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	adaptermocks "github.com/mouse-blink/buildmatrix/internal/adapter/mocks"
	berrors "github.com/mouse-blink/buildmatrix/internal/errors"
	m "github.com/mouse-blink/buildmatrix/internal/model"
)

func TestDiscover(t *testing.T) {
	source := adaptermocks.NewMockOptionSource(t)
	passthrough := []string{"BOARD=evb"}

	source.EXPECT().ListOptionNames(mock.Anything, passthrough).Return([]string{"OPT_A", "OPT_EMPTY", "OPT_B"}, nil)
	source.EXPECT().ListOptionValues(mock.Anything, "OPT_A", passthrough).Return([]string{"x", "y"}, nil)
	source.EXPECT().ListOptionValues(mock.Anything, "OPT_EMPTY", passthrough).Return(nil, nil)
	source.EXPECT().ListOptionValues(mock.Anything, "OPT_B", passthrough).Return([]string{"1"}, nil)

	set, err := Discover(context.Background(), source, passthrough)
	require.NoError(t, err)

	assert.Equal(t, m.OptionSet{
		{Name: "OPT_A", Values: []string{"x", "y"}},
		{Name: "OPT_EMPTY"},
		{Name: "OPT_B", Values: []string{"1"}},
	}, set)
	assert.Equal(t, 2, set.Count())
}

func TestDiscover_NoOptions(t *testing.T) {
	source := adaptermocks.NewMockOptionSource(t)
	source.EXPECT().ListOptionNames(mock.Anything, mock.Anything).Return([]string{}, nil)

	_, err := Discover(context.Background(), source, nil)
	require.Error(t, err)
	assert.True(t, berrors.IsConfig(err))
	assert.Equal(t, berrors.ExitConfigError, berrors.ExitCode(err))
}

func TestDiscover_QueryErrors(t *testing.T) {
	boom := errors.New("make: *** No rule to make target 'get_var'")

	t.Run("names", func(t *testing.T) {
		source := adaptermocks.NewMockOptionSource(t)
		source.EXPECT().ListOptionNames(mock.Anything, mock.Anything).Return(nil, boom)

		_, err := Discover(context.Background(), source, nil)
		require.Error(t, err)
		assert.True(t, berrors.IsConfig(err))
		assert.ErrorIs(t, err, boom)
	})

	t.Run("values", func(t *testing.T) {
		source := adaptermocks.NewMockOptionSource(t)
		source.EXPECT().ListOptionNames(mock.Anything, mock.Anything).Return([]string{"OPT_A", "OPT_B"}, nil)
		source.EXPECT().ListOptionValues(mock.Anything, "OPT_A", mock.Anything).Return(nil, boom)

		_, err := Discover(context.Background(), source, nil)
		require.Error(t, err)
		assert.True(t, berrors.IsConfig(err))
		assert.ErrorIs(t, err, boom)
	})
}
