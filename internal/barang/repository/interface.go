package repository

import (
	"context"

	"backoffice-dashboard/internal/model"
)

// Repository is the data access interface for items.
type Repository interface {
	ListBarangs(ctx context.Context) ([]model.Barang, error)
	GetBarang(ctx context.Context, id int64) (model.Barang, error)
	CreateBarang(ctx context.Context, opt SaveBarangOptions) (model.Barang, error)
	UpdateBarang(ctx context.Context, id int64, opt SaveBarangOptions) (model.Barang, error)
	DeleteBarang(ctx context.Context, id int64) error
}
