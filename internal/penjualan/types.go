package penjualan

import "backoffice-dashboard/internal/model"

// FormOptions are the dropdown choices of the order form.
type FormOptions struct {
	Pelanggans []model.Pelanggan
	Barangs    []model.Barang
}

// --- UseCase Inputs ---

type CreateInput struct {
	Draft Draft
}

type UpdateInput struct {
	ID    int64
	Draft Draft
}

// --- UseCase Outputs ---

type ListOutput struct {
	Items []model.Penjualan
}

type DetailOutput struct {
	Penjualan model.Penjualan
}

// LoadEditOutput seeds the edit form. On error it still carries whatever loaded.
type LoadEditOutput struct {
	Draft   Draft
	Options FormOptions
}

type CreateOutput struct {
	Penjualan model.Penjualan
}

type UpdateOutput struct {
	Penjualan model.Penjualan
}
