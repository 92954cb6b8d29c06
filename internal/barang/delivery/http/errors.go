package http

import (
	"errors"
	"net/http"

	"backoffice-dashboard/internal/barang"
	"backoffice-dashboard/internal/form"
)

const (
	alertCreateFailed = "Gagal menambahkan barang"
	alertUpdateFailed = "Gagal mengubah barang"
	alertLoadFailed   = "Gagal mengambil data barang"
)

// mapFormError splits a use case error into field errors, a blocking alert and the response status.
func (h *handler) mapFormError(err error, alert string) (form.Errors, string, int) {
	var vErr *form.ValidationError
	switch {
	case errors.As(err, &vErr):
		return vErr.Errors, "", http.StatusUnprocessableEntity
	case errors.Is(err, barang.ErrBarangNotFound):
		return form.Errors{}, alert, http.StatusNotFound
	default:
		return form.Errors{}, alert, http.StatusBadGateway
	}
}
