package repository

import (
	"context"

	"backoffice-dashboard/internal/model"
)

// Repository is the data access interface for customers.
type Repository interface {
	ListPelanggans(ctx context.Context) ([]model.Pelanggan, error)
	GetPelanggan(ctx context.Context, id int64) (model.Pelanggan, error)
	CreatePelanggan(ctx context.Context, opt SavePelangganOptions) (model.Pelanggan, error)
	UpdatePelanggan(ctx context.Context, id int64, opt SavePelangganOptions) (model.Pelanggan, error)
	DeletePelanggan(ctx context.Context, id int64) error
}
