package usecase

import (
	"backoffice-dashboard/internal/barang"
	"backoffice-dashboard/internal/barang/repository"
	"backoffice-dashboard/internal/listview"
	"backoffice-dashboard/internal/model"
	"backoffice-dashboard/pkg/log"
)

const cacheKey = "barangs"

// implUseCase is the private implementation of barang.UseCase.
type implUseCase struct {
	repo  repository.Repository
	cache *listview.Cache[model.Barang]
	l     log.Logger
}

// New creates a new barang UseCase implementation. cache may be nil.
func New(repo repository.Repository, cache *listview.Cache[model.Barang], l log.Logger) barang.UseCase {
	return &implUseCase{
		repo:  repo,
		cache: cache,
		l:     l,
	}
}
