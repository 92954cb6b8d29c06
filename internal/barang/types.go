package barang

import (
	"strconv"
	"strings"

	"backoffice-dashboard/internal/form"
	"backoffice-dashboard/internal/model"
	"backoffice-dashboard/pkg/currency"
)

// --- Draft ---

// Draft is the unsaved state of the item form. HargaDigits is the pure numeric
// price; the formatted string is only ever derived from it.
type Draft struct {
	Nama        string
	Kategori    model.Kategori
	HargaDigits string
}

// DraftFromBarang pre-populates the edit form.
func DraftFromBarang(b model.Barang) Draft {
	return Draft{Nama: b.Nama, Kategori: b.Kategori, HargaDigits: strconv.FormatInt(b.Harga, 10)}
}

// SetHargaInput reads the price input, dropping every non-digit character.
func (d *Draft) SetHargaInput(raw string) {
	d.HargaDigits = currency.Digits(raw)
}

// HargaDisplay is the value shown in the price input, e.g. "Rp 5.000".
func (d Draft) HargaDisplay() string {
	return currency.FormatInput(d.HargaDigits)
}

// Harga returns the price as a number, or nil when the input is blank or does not fit an int64.
func (d Draft) Harga() *int64 {
	if d.HargaDigits == "" {
		return nil
	}
	n, err := strconv.ParseInt(d.HargaDigits, 10, 64)
	if err != nil {
		return nil
	}
	return &n
}

// Validate checks every required field.
func (d Draft) Validate() form.Errors {
	var errs form.Errors
	if strings.TrimSpace(d.Nama) == "" {
		errs.Add(form.Header(form.FieldNama), "Nama barang wajib diisi")
	}
	switch {
	case d.Kategori == "":
		errs.Add(form.Header(form.FieldKategori), "Kategori wajib dipilih")
	case !d.Kategori.IsValid():
		errs.Add(form.Header(form.FieldKategori), "Kategori tidak dikenal")
	}
	switch {
	case d.HargaDigits == "":
		errs.Add(form.Header(form.FieldHarga), "Harga wajib diisi")
	case d.Harga() == nil:
		errs.Add(form.Header(form.FieldHarga), "Harga terlalu besar")
	}
	return errs
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
	Items []model.Barang
}

type DetailOutput struct {
	Barang model.Barang
}

type CreateOutput struct {
	Barang model.Barang
}

type UpdateOutput struct {
	Barang model.Barang
}
