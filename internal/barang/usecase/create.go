package usecase

import (
	"context"
	"fmt"

	"backoffice-dashboard/internal/barang"
	repo "backoffice-dashboard/internal/barang/repository"
)

// Create validates the draft and posts it. Nothing is sent when validation fails.
func (uc *implUseCase) Create(ctx context.Context, input barang.CreateInput) (barang.CreateOutput, error) {
	if err := input.Draft.Validate().Err(); err != nil {
		return barang.CreateOutput{}, err
	}

	b, err := uc.repo.CreateBarang(ctx, toSaveOptions(input.Draft))
	uc.cache.Invalidate(cacheKey)
	if err != nil {
		uc.l.Errorf(ctx, "barang/usecase.Create CreateBarang: %v", err)
		return barang.CreateOutput{}, fmt.Errorf("%w: %w", barang.ErrCreateFailed, err)
	}

	return barang.CreateOutput{Barang: b}, nil
}

func toSaveOptions(d barang.Draft) repo.SaveBarangOptions {
	return repo.SaveBarangOptions{
		Nama:     d.Nama,
		Kategori: d.Kategori,
		Harga:    d.Harga(),
	}
}
