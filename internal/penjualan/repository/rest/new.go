package rest

import (
	"errors"
	"fmt"
	"net/http"

	"backoffice-dashboard/internal/penjualan/repository"
	"backoffice-dashboard/pkg/log"
	"backoffice-dashboard/pkg/restapi"
)

const basePath = "/penjualans"

type implRepository struct {
	client *restapi.Client
	l      log.Logger
}

// New creates a backoffice API backed Repository for sales orders.
func New(client *restapi.Client, l log.Logger) repository.Repository {
	if client == nil {
		panic("penjualan/repository/rest: client is required")
	}
	return &implRepository{client: client, l: l}
}

func wrap(layerErr, err error) error {
	var apiErr *restapi.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %w", repository.ErrNotFound, err)
	}
	return fmt.Errorf("%w: %w", layerErr, err)
}

func orderPath(id int64) string {
	return fmt.Sprintf("%s/%d", basePath, id)
}
