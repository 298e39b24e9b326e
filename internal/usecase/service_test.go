package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/gridsolver/internal/domain"
)

func TestUnconfiguredDependenciesError(t *testing.T) {
	u := &Service{}
	ctx := context.Background()

	_, _, err := u.Solve(ctx, &domain.Board{})
	require.ErrorIs(t, err, errNotConfigured)

	_, _, err = u.Validate(ctx, &domain.Board{})
	require.ErrorIs(t, err, errNotConfigured)

	_, _, err = u.Hint(ctx, &domain.Board{}, domain.StrategySingles)
	require.ErrorIs(t, err, errNotConfigured)

	require.ErrorIs(t, u.Save(ctx, &domain.Puzzle{ID: "x"}), errNotConfigured)

	_, err = u.Load(ctx, "x")
	require.ErrorIs(t, err, errNotConfigured)

	_, err = u.List(ctx)
	require.ErrorIs(t, err, errNotConfigured)
}
