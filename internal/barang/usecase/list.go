package usecase

import (
	"context"
	"fmt"

	"backoffice-dashboard/internal/barang"
)

// List returns every item, served from the cache until the next mutation.
func (uc *implUseCase) List(ctx context.Context) (barang.ListOutput, error) {
	if items, ok := uc.cache.Get(cacheKey); ok {
		return barang.ListOutput{Items: items}, nil
	}

	items, err := uc.repo.ListBarangs(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "barang/usecase.List ListBarangs: %v", err)
		return barang.ListOutput{}, fmt.Errorf("%w: %w", barang.ErrListFailed, err)
	}

	uc.cache.Set(cacheKey, items)
	return barang.ListOutput{Items: items}, nil
}
