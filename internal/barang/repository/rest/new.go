package rest

import (
	"errors"
	"fmt"
	"net/http"

	"backoffice-dashboard/internal/barang/repository"
	"backoffice-dashboard/pkg/log"
	"backoffice-dashboard/pkg/restapi"
)

const basePath = "/barangs"

type implRepository struct {
	client *restapi.Client
	l      log.Logger
}

// New creates a backoffice API backed Repository for items.
func New(client *restapi.Client, l log.Logger) repository.Repository {
	if client == nil {
		panic("barang/repository/rest: client is required")
	}
	return &implRepository{client: client, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("barang/repository/rest.%s", method)
}

// wrap attaches the layer error while keeping the API error reachable for errors.As.
func wrap(layerErr, err error) error {
	var apiErr *restapi.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %w", repository.ErrNotFound, err)
	}
	return fmt.Errorf("%w: %w", layerErr, err)
}

func itemPath(id int64) string {
	return fmt.Sprintf("%s/%d", basePath, id)
}
