package usecase

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"backoffice-dashboard/internal/model"
	"backoffice-dashboard/internal/penjualan"
)

// FormOptions fetches customers and items concurrently and waits for both.
// On error the output still holds whichever list arrived.
func (uc *implUseCase) FormOptions(ctx context.Context) (penjualan.FormOptions, error) {
	var opts penjualan.FormOptions
	var g errgroup.Group
	g.Go(func() error {
		items, err := uc.fetchPelanggans(ctx)
		opts.Pelanggans = items
		return err
	})
	g.Go(func() error {
		items, err := uc.fetchBarangs(ctx)
		opts.Barangs = items
		return err
	})
	if err := g.Wait(); err != nil {
		uc.l.Errorf(ctx, "penjualan/usecase.FormOptions: %v", err)
		return opts, fmt.Errorf("%w: %w", penjualan.ErrOptionsFailed, err)
	}
	return opts, nil
}

// LoadEdit fetches the order and both dropdown lists concurrently, then seeds the draft.
// Any failure leaves the draft blank; the options that loaded are still returned.
func (uc *implUseCase) LoadEdit(ctx context.Context, id int64) (penjualan.LoadEditOutput, error) {
	out := penjualan.LoadEditOutput{Draft: penjualan.NewDraft()}

	var order model.Penjualan
	var g errgroup.Group
	g.Go(func() error {
		p, err := uc.repo.GetPenjualan(ctx, id)
		if err != nil {
			return mapLoadError(err)
		}
		order = p
		return nil
	})
	g.Go(func() error {
		items, err := uc.fetchPelanggans(ctx)
		out.Options.Pelanggans = items
		return err
	})
	g.Go(func() error {
		items, err := uc.fetchBarangs(ctx)
		out.Options.Barangs = items
		return err
	})
	if err := g.Wait(); err != nil {
		uc.l.Errorf(ctx, "penjualan/usecase.LoadEdit: %v", err)
		return out, err
	}

	out.Draft = penjualan.DraftFromPenjualan(order)
	return out, nil
}

func (uc *implUseCase) fetchPelanggans(ctx context.Context) ([]model.Pelanggan, error) {
	out, err := uc.pelangganUC.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", penjualan.ErrOptionsFailed, err)
	}
	return out.Items, nil
}

func (uc *implUseCase) fetchBarangs(ctx context.Context) ([]model.Barang, error) {
	out, err := uc.barangUC.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", penjualan.ErrOptionsFailed, err)
	}
	return out.Items, nil
}
