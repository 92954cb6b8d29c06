package http

import (
	"fmt"
	"net/url"
	"strconv"

	"backoffice-dashboard/internal/form"
	"backoffice-dashboard/internal/listview"
	"backoffice-dashboard/internal/model"
	"backoffice-dashboard/internal/notice"
	"backoffice-dashboard/internal/penjualan"
	"backoffice-dashboard/pkg/currency"
	"backoffice-dashboard/web"
)

const (
	tmplList = "penjualan_list.html"
	tmplForm = "penjualan_form.html"

	titleList   = "Kelola Penjualan"
	titleCreate = "Tambah Penjualan"
	titleEdit   = "Ubah Penjualan"
)

var (
	columns  = []string{"No", "ID Nota", "Tanggal", "Pelanggan", "Subtotal", "Items", "Aksi"}
	messages = notice.MessagesFor("Penjualan")
)

// --- List page ---

type row struct {
	No        int
	NoNota    string
	Tgl       string
	Pelanggan string
	Subtotal  string
	Items     []string
	EditURL   string
	DeleteURL string
	NotaURL   string
}

type listView struct {
	Table     listview.Table[row]
	Dialog    web.Dialog
	CreateURL string
}

func newListView(orders []model.Penjualan, dialog listview.ConfirmDialog) listView {
	rows := make([]row, len(orders))
	for i, p := range orders {
		items := make([]string, 0, len(p.Items))
		for _, item := range p.Items {
			items = append(items, fmt.Sprintf("%s x %d", item.ItemName(), item.Qty))
		}
		rows[i] = row{
			No:        i + 1,
			NoNota:    p.NoNota(),
			Tgl:       p.Tgl,
			Pelanggan: p.CustomerName(),
			Subtotal:  currency.FormatDecimal(p.Subtotal),
			Items:     items,
			EditURL:   fmt.Sprintf("%s/%d", editPath, p.ID),
			DeleteURL: listPath + "?" + url.Values{"hapus": {strconv.FormatInt(p.ID, 10)}}.Encode(),
			NotaURL:   fmt.Sprintf("%s/%d", notaPath, p.ID),
		}
	}
	return listView{
		Table:     listview.NewTable(columns, rows, "Tidak ada data penjualan."),
		Dialog:    newDialog(dialog),
		CreateURL: createPath,
	}
}

func newDialog(d listview.ConfirmDialog) web.Dialog {
	if !d.IsOpen() {
		return web.Dialog{}
	}
	return web.Dialog{
		Open:      true,
		Question:  "Apakah kamu yakin ingin menghapus penjualan ini?",
		Action:    fmt.Sprintf("%s/%d", deletePath, d.SelectedID()),
		CancelURL: listPath,
	}
}

// --- Form page ---

type lineView struct {
	Index        int
	Barangs      []web.Option
	Qty          string
	Committed    int
	BarangError  string
	QtyError     string
	RemoveAction string
	CanRemove    bool
}

type formView struct {
	Heading    string
	Action     string
	BackURL    string
	Tgl        string
	Pelanggans []web.Option
	Lines      []lineView
	LineCount  int
	Errors     map[string]string
}

func newFormView(heading, action string, d penjualan.Draft, opts penjualan.FormOptions, errs form.Errors) formView {
	pelanggans := make([]web.Option, 0, len(opts.Pelanggans))
	for _, p := range opts.Pelanggans {
		pelanggans = append(pelanggans, web.Option{
			Value:    strconv.FormatInt(p.ID, 10),
			Label:    p.Nama,
			Selected: p.ID == d.PelangganID,
		})
	}

	lines := make([]lineView, len(d.Items))
	for i, line := range d.Items {
		barangs := make([]web.Option, 0, len(opts.Barangs))
		for _, b := range opts.Barangs {
			barangs = append(barangs, web.Option{
				Value:    strconv.FormatInt(b.ID, 10),
				Label:    b.Nama,
				Selected: b.ID == line.BarangID,
			})
		}
		lines[i] = lineView{
			Index:        i,
			Barangs:      barangs,
			Qty:          line.Qty.Raw(),
			Committed:    line.Qty.Committed(),
			BarangError:  errs.Line(i, form.LineBarang),
			QtyError:     errs.Line(i, form.LineQty),
			RemoveAction: actionRemoveItem + strconv.Itoa(i),
			CanRemove:    len(d.Items) > 1,
		}
	}

	return formView{
		Heading:    heading,
		Action:     action,
		BackURL:    listPath,
		Tgl:        d.Tgl,
		Pelanggans: pelanggans,
		Lines:      lines,
		LineCount:  len(lines),
		Errors:     errs.ByName(),
	}
}

func newCreateFormView(d penjualan.Draft, opts penjualan.FormOptions, errs form.Errors) formView {
	return newFormView("Form Tambah Penjualan", createPath, d, opts, errs)
}

func newEditFormView(id int64, d penjualan.Draft, opts penjualan.FormOptions, errs form.Errors) formView {
	return newFormView("Form Ubah Penjualan", fmt.Sprintf("%s/%d", editPath, id), d, opts, errs)
}
