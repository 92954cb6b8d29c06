package http

import (
	"errors"
	"net/http"

	"backoffice-dashboard/internal/form"
	"backoffice-dashboard/internal/penjualan"
)

const (
	alertCreateFailed = "Gagal menambahkan penjualan"
	alertUpdateFailed = "Gagal mengubah penjualan"
	alertLoadFailed   = "Gagal mengambil data penjualan"
)

// mapFormError splits a use case error into field errors, a blocking alert and the response status.
func (h *handler) mapFormError(err error, alert string) (form.Errors, string, int) {
	var vErr *form.ValidationError
	switch {
	case errors.As(err, &vErr):
		return vErr.Errors, "", http.StatusUnprocessableEntity
	case errors.Is(err, penjualan.ErrPenjualanNotFound):
		return form.Errors{}, alert, http.StatusNotFound
	default:
		return form.Errors{}, alert, http.StatusBadGateway
	}
}
