package usecase

import (
	"context"
	"errors"
	"fmt"

	"backoffice-dashboard/internal/penjualan"
	repo "backoffice-dashboard/internal/penjualan/repository"
)

// List returns every sales order, cached until the next mutation.
func (uc *implUseCase) List(ctx context.Context) (penjualan.ListOutput, error) {
	if items, ok := uc.cache.Get(cacheKey); ok {
		return penjualan.ListOutput{Items: items}, nil
	}

	items, err := uc.repo.ListPenjualans(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "penjualan/usecase.List ListPenjualans: %v", err)
		return penjualan.ListOutput{}, fmt.Errorf("%w: %w", penjualan.ErrListFailed, err)
	}

	uc.cache.Set(cacheKey, items)
	return penjualan.ListOutput{Items: items}, nil
}

// Detail fetches one order with its nested customer and lines.
func (uc *implUseCase) Detail(ctx context.Context, id int64) (penjualan.DetailOutput, error) {
	p, err := uc.repo.GetPenjualan(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "penjualan/usecase.Detail GetPenjualan: %v", err)
		return penjualan.DetailOutput{}, mapLoadError(err)
	}
	return penjualan.DetailOutput{Penjualan: p}, nil
}

func mapLoadError(err error) error {
	if errors.Is(err, repo.ErrNotFound) {
		return fmt.Errorf("%w: %w", penjualan.ErrPenjualanNotFound, err)
	}
	return fmt.Errorf("%w: %w", penjualan.ErrLoadFailed, err)
}
