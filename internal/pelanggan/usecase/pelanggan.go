package usecase

import (
	"context"
	"errors"
	"fmt"

	"backoffice-dashboard/internal/pelanggan"
	repo "backoffice-dashboard/internal/pelanggan/repository"
)

// List returns every customer, cached until the next mutation.
func (uc *implUseCase) List(ctx context.Context) (pelanggan.ListOutput, error) {
	if items, ok := uc.cache.Get(cacheKey); ok {
		return pelanggan.ListOutput{Items: items}, nil
	}

	items, err := uc.repo.ListPelanggans(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "pelanggan/usecase.List ListPelanggans: %v", err)
		return pelanggan.ListOutput{}, fmt.Errorf("%w: %w", pelanggan.ErrListFailed, err)
	}

	uc.cache.Set(cacheKey, items)
	return pelanggan.ListOutput{Items: items}, nil
}

func (uc *implUseCase) Detail(ctx context.Context, id int64) (pelanggan.DetailOutput, error) {
	p, err := uc.repo.GetPelanggan(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "pelanggan/usecase.Detail GetPelanggan: %v", err)
		if errors.Is(err, repo.ErrNotFound) {
			return pelanggan.DetailOutput{}, fmt.Errorf("%w: %w", pelanggan.ErrPelangganNotFound, err)
		}
		return pelanggan.DetailOutput{}, fmt.Errorf("%w: %w", pelanggan.ErrLoadFailed, err)
	}
	return pelanggan.DetailOutput{Pelanggan: p}, nil
}

// Create validates the draft and posts it.
func (uc *implUseCase) Create(ctx context.Context, input pelanggan.CreateInput) (pelanggan.CreateOutput, error) {
	if err := input.Draft.Validate().Err(); err != nil {
		return pelanggan.CreateOutput{}, err
	}

	p, err := uc.repo.CreatePelanggan(ctx, toSaveOptions(input.Draft))
	uc.cache.Invalidate(cacheKey)
	if err != nil {
		uc.l.Errorf(ctx, "pelanggan/usecase.Create CreatePelanggan: %v", err)
		return pelanggan.CreateOutput{}, fmt.Errorf("%w: %w", pelanggan.ErrCreateFailed, err)
	}
	return pelanggan.CreateOutput{Pelanggan: p}, nil
}

// Update validates the draft and replaces the customer.
func (uc *implUseCase) Update(ctx context.Context, input pelanggan.UpdateInput) (pelanggan.UpdateOutput, error) {
	if err := input.Draft.Validate().Err(); err != nil {
		return pelanggan.UpdateOutput{}, err
	}

	p, err := uc.repo.UpdatePelanggan(ctx, input.ID, toSaveOptions(input.Draft))
	uc.cache.Invalidate(cacheKey)
	if err != nil {
		uc.l.Errorf(ctx, "pelanggan/usecase.Update UpdatePelanggan: %v", err)
		return pelanggan.UpdateOutput{}, fmt.Errorf("%w: %w", pelanggan.ErrUpdateFailed, err)
	}
	return pelanggan.UpdateOutput{Pelanggan: p}, nil
}

func (uc *implUseCase) Delete(ctx context.Context, id int64) error {
	err := uc.repo.DeletePelanggan(ctx, id)
	uc.cache.Invalidate(cacheKey)
	if err != nil {
		uc.l.Errorf(ctx, "pelanggan/usecase.Delete DeletePelanggan: %v", err)
		return fmt.Errorf("%w: %w", pelanggan.ErrDeleteFailed, err)
	}
	return nil
}

func toSaveOptions(d pelanggan.Draft) repo.SavePelangganOptions {
	return repo.SavePelangganOptions{
		Nama:         d.Nama,
		Domisili:     d.Domisili,
		JenisKelamin: d.JenisKelamin,
	}
}
