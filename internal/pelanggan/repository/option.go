package repository

import "backoffice-dashboard/internal/model"

// SavePelangganOptions is the body of POST /pelanggans and PUT /pelanggans/{id}.
type SavePelangganOptions struct {
	Nama         string
	Domisili     model.Domisili
	JenisKelamin model.JenisKelamin
}
