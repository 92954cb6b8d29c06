package usecase

import (
	"backoffice-dashboard/internal/listview"
	"backoffice-dashboard/internal/model"
	"backoffice-dashboard/internal/pelanggan"
	"backoffice-dashboard/internal/pelanggan/repository"
	"backoffice-dashboard/pkg/log"
)

const cacheKey = "pelanggans"

type implUseCase struct {
	repo  repository.Repository
	cache *listview.Cache[model.Pelanggan]
	l     log.Logger
}

// New creates a new pelanggan UseCase implementation. cache may be nil.
func New(repo repository.Repository, cache *listview.Cache[model.Pelanggan], l log.Logger) pelanggan.UseCase {
	return &implUseCase{
		repo:  repo,
		cache: cache,
		l:     l,
	}
}
