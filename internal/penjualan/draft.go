package penjualan

import (
	"strings"
	"time"

	"backoffice-dashboard/internal/form"
	"backoffice-dashboard/internal/model"
	"backoffice-dashboard/internal/penjualan/repository"
)

// Line is one line item of the order form. BarangID 0 means nothing selected.
type Line struct {
	BarangID int64
	Qty      form.Quantity
}

func newLine() Line {
	return Line{Qty: form.NewQuantity(1)}
}

// Draft is the unsaved state of the sales order form. It always holds at least one line.
type Draft struct {
	Tgl         string
	PelangganID int64
	Items       []Line
}

// NewDraft returns a blank order with one blank line of quantity 1.
func NewDraft() Draft {
	return Draft{Items: []Line{newLine()}}
}

// DraftFromPenjualan seeds the edit form. An order without lines gets one blank line.
func DraftFromPenjualan(p model.Penjualan) Draft {
	d := Draft{Tgl: p.Tgl, PelangganID: p.CustomerID()}
	for _, item := range p.Items {
		d.Items = append(d.Items, Line{BarangID: item.ItemID(), Qty: form.NewQuantity(item.Qty)})
	}
	if len(d.Items) == 0 {
		d.Items = []Line{newLine()}
	}
	return d
}

// Clone returns a copy whose lines can be changed independently.
func (d Draft) Clone() Draft {
	d.Items = append([]Line(nil), d.Items...)
	return d
}

// AddItem appends a blank line with quantity 1.
func (d *Draft) AddItem() {
	d.Items = append(d.Items, newLine())
}

// RemoveItem drops line i. It refuses to remove the last remaining line or an index out of range.
func (d *Draft) RemoveItem(i int) bool {
	if len(d.Items) <= 1 || !d.has(i) {
		return false
	}
	d.Items = append(d.Items[:i], d.Items[i+1:]...)
	return true
}

func (d *Draft) SetBarang(i int, barangID int64) bool {
	if !d.has(i) {
		return false
	}
	d.Items[i].BarangID = barangID
	return true
}

// TypeQty replaces the raw quantity buffer of line i without committing it.
func (d *Draft) TypeQty(i int, raw string) bool {
	if !d.has(i) {
		return false
	}
	d.Items[i].Qty.Type(raw)
	return true
}

// BlurQty commits the quantity buffer of line i.
func (d *Draft) BlurQty(i int) bool {
	if !d.has(i) {
		return false
	}
	d.Items[i].Qty.Blur()
	return true
}

// BlurAll commits every quantity buffer, as happens when focus leaves the form.
func (d *Draft) BlurAll() {
	for i := range d.Items {
		d.Items[i].Qty.Blur()
	}
}

func (d *Draft) has(i int) bool {
	return i >= 0 && i < len(d.Items)
}

// Validate reports one message per offending header field and line field.
func (d Draft) Validate() form.Errors {
	var errs form.Errors
	switch tgl := strings.TrimSpace(d.Tgl); {
	case tgl == "":
		errs.Add(form.Header(form.FieldTgl), "Tanggal wajib diisi")
	default:
		if _, err := time.Parse(model.DateLayout, tgl); err != nil {
			errs.Add(form.Header(form.FieldTgl), "Format tanggal harus YYYY-MM-DD")
		}
	}
	if d.PelangganID <= 0 {
		errs.Add(form.Header(form.FieldPelanggan), "Pelanggan wajib dipilih")
	}
	for i, line := range d.Items {
		if line.BarangID <= 0 {
			errs.Add(form.Line(i, form.LineBarang), "Barang wajib dipilih")
		}
		if !line.Qty.Positive() {
			errs.Add(form.Line(i, form.LineQty), "Qty wajib lebih dari 0")
		}
	}
	return errs
}

// Payload is the request body for create and update. Only valid drafts should be sent.
func (d Draft) Payload() repository.SavePenjualanOptions {
	opt := repository.SavePenjualanOptions{
		Tgl:         strings.TrimSpace(d.Tgl),
		PelangganID: d.PelangganID,
		Items:       make([]repository.SaveItemOptions, 0, len(d.Items)),
	}
	for _, line := range d.Items {
		qty, _ := line.Qty.Value()
		opt.Items = append(opt.Items, repository.SaveItemOptions{BarangID: line.BarangID, Qty: qty})
	}
	return opt
}
