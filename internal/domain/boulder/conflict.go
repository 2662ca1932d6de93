package boulder

import (
	"context"
	"fmt"
	"strings"

	"github.com/cragbase/cragbase/internal/shared/errors"
)

// ConflictChecker is consulted before a boulder is created or updated.
// A non-nil error aborts the write.
type ConflictChecker interface {
	CheckConflict(ctx context.Context, b *Boulder) error
}

// ConflictCheckerFunc adapts a function to ConflictChecker.
type ConflictCheckerFunc func(ctx context.Context, b *Boulder) error

func (f ConflictCheckerFunc) CheckConflict(ctx context.Context, b *Boulder) error {
	return f(ctx, b)
}

// NormalizeName is the form names are compared in.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// DuplicateNameChecker rejects a boulder whose name matches another boulder
// in the same area, ignoring case and surrounding whitespace. Unnamed
// boulders never conflict.
type DuplicateNameChecker struct {
	index NameIndex
}

func NewDuplicateNameChecker(index NameIndex) *DuplicateNameChecker {
	return &DuplicateNameChecker{index: index}
}

func (c *DuplicateNameChecker) CheckConflict(ctx context.Context, b *Boulder) error {
	if !b.HasName() {
		return nil
	}

	exists, err := c.index.ExistsByName(ctx, b.AreaID(), NormalizeName(b.Name()), b.ID())
	if err != nil {
		return fmt.Errorf("failed to check boulder name: %w", err)
	}
	if exists {
		return errors.NewConflictError(
			"a boulder with this name already exists in the area",
			fmt.Sprintf("name=%q area_id=%d", strings.TrimSpace(b.Name()), b.AreaID()),
		)
	}
	return nil
}
