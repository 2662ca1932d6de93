package usecases

import (
	"context"
	"fmt"

	apperrors "github.com/cragbase/cragbase/internal/shared/errors"
)

// AreaChecker is the slice of area.Repository the boulder use cases need.
type AreaChecker interface {
	Exists(ctx context.Context, id uint) (bool, error)
}

func ensureArea(ctx context.Context, areas AreaChecker, areaID uint) error {
	ok, err := areas.Exists(ctx, areaID)
	if err != nil {
		return fmt.Errorf("failed to check area: %w", err)
	}
	if !ok {
		return apperrors.NewNotFoundError("area not found")
	}
	return nil
}
