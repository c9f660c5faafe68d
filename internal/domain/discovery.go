package domain

import (
	"context"

	"github.com/mouse-blink/buildmatrix/internal/adapter"
	"github.com/mouse-blink/buildmatrix/internal/ctxlog"
	berrors "github.com/mouse-blink/buildmatrix/internal/errors"
	m "github.com/mouse-blink/buildmatrix/internal/model"
)

// Discover asks the option source for every option and its values. Any
// failure here is fatal: a partial matrix is meaningless.
func Discover(ctx context.Context, source adapter.OptionSource, passthrough []string) (m.OptionSet, error) {
	names, err := source.ListOptionNames(ctx, passthrough)
	if err != nil {
		return nil, berrors.ConfigWrap(err, "option discovery failed")
	}

	if len(names) == 0 {
		return nil, berrors.Config("option list is empty, nothing to build")
	}

	set := make(m.OptionSet, 0, len(names))

	for _, name := range names {
		values, err := source.ListOptionValues(ctx, name, passthrough)
		if err != nil {
			return nil, berrors.ConfigWrap(err, "option discovery failed")
		}

		set = append(set, m.Option{Name: name, Values: values})
	}

	ctxlog.FromContext(ctx).Info("options discovered", "options", len(set), "combinations", set.Count())

	return set, nil
}
