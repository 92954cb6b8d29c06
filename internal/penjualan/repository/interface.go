package repository

import (
	"context"

	"backoffice-dashboard/internal/model"
)

// Repository is the data access interface for sales orders.
type Repository interface {
	ListPenjualans(ctx context.Context) ([]model.Penjualan, error)
	GetPenjualan(ctx context.Context, id int64) (model.Penjualan, error)
	CreatePenjualan(ctx context.Context, opt SavePenjualanOptions) (model.Penjualan, error)
	UpdatePenjualan(ctx context.Context, id int64, opt SavePenjualanOptions) (model.Penjualan, error)
	DeletePenjualan(ctx context.Context, id int64) error
}
