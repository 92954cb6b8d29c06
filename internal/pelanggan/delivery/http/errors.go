package http

import (
	"errors"
	"net/http"

	"backoffice-dashboard/internal/form"
	"backoffice-dashboard/internal/pelanggan"
)

const (
	alertCreateFailed = "Gagal menambahkan pelanggan"
	alertUpdateFailed = "Gagal mengubah pelanggan"
	alertLoadFailed   = "Gagal mengambil data pelanggan"
)

func (h *handler) mapFormError(err error, alert string) (form.Errors, string, int) {
	var vErr *form.ValidationError
	if errors.As(err, &vErr) {
		return vErr.Errors, "", http.StatusUnprocessableEntity
	}
	if errors.Is(err, pelanggan.ErrPelangganNotFound) {
		return form.Errors{}, alert, http.StatusNotFound
	}
	return form.Errors{}, alert, http.StatusBadGateway
}
