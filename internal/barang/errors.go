package barang

import "errors"

var (
	ErrBarangNotFound = errors.New("barang not found")
	ErrListFailed     = errors.New("failed to list barang")
	ErrLoadFailed     = errors.New("failed to load barang")
	ErrCreateFailed   = errors.New("failed to create barang")
	ErrUpdateFailed   = errors.New("failed to update barang")
	ErrDeleteFailed   = errors.New("failed to delete barang")
)
