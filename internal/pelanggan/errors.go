package pelanggan

import "errors"

var (
	ErrPelangganNotFound = errors.New("pelanggan not found")
	ErrListFailed        = errors.New("failed to list pelanggan")
	ErrLoadFailed        = errors.New("failed to load pelanggan")
	ErrCreateFailed      = errors.New("failed to create pelanggan")
	ErrUpdateFailed      = errors.New("failed to update pelanggan")
	ErrDeleteFailed      = errors.New("failed to delete pelanggan")
)
