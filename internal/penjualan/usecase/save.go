package usecase

import (
	"context"
	"fmt"

	"backoffice-dashboard/internal/penjualan"
)

// Create commits every quantity buffer, validates and posts the order.
func (uc *implUseCase) Create(ctx context.Context, input penjualan.CreateInput) (penjualan.CreateOutput, error) {
	draft := input.Draft.Clone()
	draft.BlurAll()
	if err := draft.Validate().Err(); err != nil {
		return penjualan.CreateOutput{}, err
	}

	p, err := uc.repo.CreatePenjualan(ctx, draft.Payload())
	uc.cache.Invalidate(cacheKey)
	if err != nil {
		uc.l.Errorf(ctx, "penjualan/usecase.Create CreatePenjualan: %v", err)
		return penjualan.CreateOutput{}, fmt.Errorf("%w: %w", penjualan.ErrCreateFailed, err)
	}
	return penjualan.CreateOutput{Penjualan: p}, nil
}

// Update commits every quantity buffer, validates and replaces the order.
func (uc *implUseCase) Update(ctx context.Context, input penjualan.UpdateInput) (penjualan.UpdateOutput, error) {
	draft := input.Draft.Clone()
	draft.BlurAll()
	if err := draft.Validate().Err(); err != nil {
		return penjualan.UpdateOutput{}, err
	}

	p, err := uc.repo.UpdatePenjualan(ctx, input.ID, draft.Payload())
	uc.cache.Invalidate(cacheKey)
	if err != nil {
		uc.l.Errorf(ctx, "penjualan/usecase.Update UpdatePenjualan: %v", err)
		return penjualan.UpdateOutput{}, fmt.Errorf("%w: %w", penjualan.ErrUpdateFailed, err)
	}
	return penjualan.UpdateOutput{Penjualan: p}, nil
}

func (uc *implUseCase) Delete(ctx context.Context, id int64) error {
	err := uc.repo.DeletePenjualan(ctx, id)
	uc.cache.Invalidate(cacheKey)
	if err != nil {
		uc.l.Errorf(ctx, "penjualan/usecase.Delete DeletePenjualan: %v", err)
		return fmt.Errorf("%w: %w", penjualan.ErrDeleteFailed, err)
	}
	return nil
}
