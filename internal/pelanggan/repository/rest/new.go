package rest

import (
	"errors"
	"fmt"
	"net/http"

	"backoffice-dashboard/internal/pelanggan/repository"
	"backoffice-dashboard/pkg/log"
	"backoffice-dashboard/pkg/restapi"
)

const basePath = "/pelanggans"

type implRepository struct {
	client *restapi.Client
	l      log.Logger
}

// New creates a backoffice API backed Repository for customers.
func New(client *restapi.Client, l log.Logger) repository.Repository {
	if client == nil {
		panic("pelanggan/repository/rest: client is required")
	}
	return &implRepository{client: client, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("pelanggan/repository/rest.%s", method)
}

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
