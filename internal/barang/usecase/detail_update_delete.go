package usecase

import (
	"context"
	"errors"
	"fmt"

	"backoffice-dashboard/internal/barang"
	repo "backoffice-dashboard/internal/barang/repository"
)

// Detail retrieves a single item. Returns ErrBarangNotFound when the API answers 404.
func (uc *implUseCase) Detail(ctx context.Context, id int64) (barang.DetailOutput, error) {
	b, err := uc.repo.GetBarang(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "barang/usecase.Detail GetBarang: %v", err)
		if errors.Is(err, repo.ErrNotFound) {
			return barang.DetailOutput{}, fmt.Errorf("%w: %w", barang.ErrBarangNotFound, err)
		}
		return barang.DetailOutput{}, fmt.Errorf("%w: %w", barang.ErrLoadFailed, err)
	}
	return barang.DetailOutput{Barang: b}, nil
}

// Update validates the draft and replaces the item.
func (uc *implUseCase) Update(ctx context.Context, input barang.UpdateInput) (barang.UpdateOutput, error) {
	if err := input.Draft.Validate().Err(); err != nil {
		return barang.UpdateOutput{}, err
	}

	b, err := uc.repo.UpdateBarang(ctx, input.ID, toSaveOptions(input.Draft))
	uc.cache.Invalidate(cacheKey)
	if err != nil {
		uc.l.Errorf(ctx, "barang/usecase.Update UpdateBarang: %v", err)
		return barang.UpdateOutput{}, fmt.Errorf("%w: %w", barang.ErrUpdateFailed, err)
	}
	return barang.UpdateOutput{Barang: b}, nil
}

// Delete removes an item. The list cache is dropped even when the call fails,
// so the next render shows whatever the server now holds.
func (uc *implUseCase) Delete(ctx context.Context, id int64) error {
	err := uc.repo.DeleteBarang(ctx, id)
	uc.cache.Invalidate(cacheKey)
	if err != nil {
		uc.l.Errorf(ctx, "barang/usecase.Delete DeleteBarang: %v", err)
		return fmt.Errorf("%w: %w", barang.ErrDeleteFailed, err)
	}
	return nil
}
