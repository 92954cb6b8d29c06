package penjualan

import "errors"

var (
	ErrPenjualanNotFound = errors.New("penjualan not found")
	ErrListFailed        = errors.New("failed to list penjualan")
	ErrLoadFailed        = errors.New("failed to load penjualan")
	ErrOptionsFailed     = errors.New("failed to load form options")
	ErrCreateFailed      = errors.New("failed to create penjualan")
	ErrUpdateFailed      = errors.New("failed to update penjualan")
	ErrDeleteFailed      = errors.New("failed to delete penjualan")
)
