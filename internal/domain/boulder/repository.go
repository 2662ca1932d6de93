package boulder

import "context"

type Repository interface {
	Create(ctx context.Context, b *Boulder) error
	// Update fails with a conflict error when b's lock version is stale.
	Update(ctx context.Context, b *Boulder) error
	Delete(ctx context.Context, b *Boulder) error
	GetByID(ctx context.Context, id uint) (*Boulder, error)
	ListByArea(ctx context.Context, areaID uint, limit, offset int) ([]*Boulder, int64, error)
}

// NameIndex answers duplicate-name queries within an area.
type NameIndex interface {
	// ExistsByName reports whether a boulder other than excludeID in areaID
	// has a name equal to normalizedName after NormalizeName.
	ExistsByName(ctx context.Context, areaID uint, normalizedName string, excludeID uint) (bool, error)
}
