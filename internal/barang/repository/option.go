package repository

import "backoffice-dashboard/internal/model"

// SaveBarangOptions is the body of POST /barangs and PUT /barangs/{id}.
// Harga is sent as null when the price input is blank.
type SaveBarangOptions struct {
	Nama     string
	Kategori model.Kategori
	Harga    *int64
}
