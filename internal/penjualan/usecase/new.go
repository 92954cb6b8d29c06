package usecase

import (
	"backoffice-dashboard/internal/barang"
	"backoffice-dashboard/internal/listview"
	"backoffice-dashboard/internal/model"
	"backoffice-dashboard/internal/pelanggan"
	"backoffice-dashboard/internal/penjualan"
	"backoffice-dashboard/internal/penjualan/repository"
	"backoffice-dashboard/pkg/log"
)

const cacheKey = "penjualans"

type implUseCase struct {
	repo        repository.Repository
	barangUC    barang.UseCase
	pelangganUC pelanggan.UseCase
	cache       *listview.Cache[model.Penjualan]
	l           log.Logger
}

// New creates the sales order UseCase. The item and customer use cases feed the form dropdowns.
func New(
	repo repository.Repository,
	barangUC barang.UseCase,
	pelangganUC pelanggan.UseCase,
	cache *listview.Cache[model.Penjualan],
	l log.Logger,
) penjualan.UseCase {
	return &implUseCase{
		repo:        repo,
		barangUC:    barangUC,
		pelangganUC: pelangganUC,
		cache:       cache,
		l:           l,
	}
}
