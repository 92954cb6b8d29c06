package pelanggan

import (
	"strings"

	"backoffice-dashboard/internal/form"
	"backoffice-dashboard/internal/model"
)

// --- Draft ---

// Draft is the unsaved state of the customer form.
type Draft struct {
	Nama         string
	Domisili     model.Domisili
	JenisKelamin model.JenisKelamin
}

// NewDraft returns a blank form with the default gender preselected.
func NewDraft() Draft {
	return Draft{JenisKelamin: model.DefaultJenisKelamin}
}

// DraftFromPelanggan pre-populates the edit form. A record without gender falls back to the default.
func DraftFromPelanggan(p model.Pelanggan) Draft {
	d := Draft{Nama: p.Nama, Domisili: p.Domisili, JenisKelamin: p.JenisKelamin}
	if d.JenisKelamin == "" {
		d.JenisKelamin = model.DefaultJenisKelamin
	}
	return d
}

// Validate checks every required field.
func (d Draft) Validate() form.Errors {
	var errs form.Errors
	if strings.TrimSpace(d.Nama) == "" {
		errs.Add(form.Header(form.FieldNama), "Nama wajib diisi")
	}
	switch {
	case d.Domisili == "":
		errs.Add(form.Header(form.FieldDomisili), "Domisili wajib dipilih")
	case !d.Domisili.IsValid():
		errs.Add(form.Header(form.FieldDomisili), "Domisili tidak dikenal")
	}
	switch {
	case d.JenisKelamin == "":
		errs.Add(form.Header(form.FieldJenisKelamin), "Jenis kelamin wajib dipilih")
	case !d.JenisKelamin.IsValid():
		errs.Add(form.Header(form.FieldJenisKelamin), "Jenis kelamin tidak dikenal")
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
	Items []model.Pelanggan
}

type DetailOutput struct {
	Pelanggan model.Pelanggan
}

type CreateOutput struct {
	Pelanggan model.Pelanggan
}

type UpdateOutput struct {
	Pelanggan model.Pelanggan
}
