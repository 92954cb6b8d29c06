package http

import (
	"fmt"
	"net/url"
	"strconv"

	"backoffice-dashboard/internal/barang"
	"backoffice-dashboard/internal/form"
	"backoffice-dashboard/internal/listview"
	"backoffice-dashboard/internal/model"
	"backoffice-dashboard/internal/notice"
	"backoffice-dashboard/pkg/currency"
	"backoffice-dashboard/web"
)

const (
	tmplList = "barang_list.html"
	tmplForm = "barang_form.html"

	titleList   = "Kelola Barang"
	titleCreate = "Tambah Barang"
	titleEdit   = "Ubah Barang"
)

var (
	columns  = []string{"No", "Kode", "Nama", "Kategori", "Harga", "Aksi"}
	messages = notice.MessagesFor("Barang")
)

// --- List page ---

type row struct {
	No        int
	Kode      string
	Nama      string
	Kategori  model.Kategori
	Harga     string
	EditURL   string
	DeleteURL string
}

type listView struct {
	Table     listview.Table[row]
	Dialog    web.Dialog
	CreateURL string
}

func newListView(items []model.Barang, dialog listview.ConfirmDialog) listView {
	rows := make([]row, len(items))
	for i, b := range items {
		rows[i] = row{
			No:        i + 1,
			Kode:      b.Kode(),
			Nama:      b.Nama,
			Kategori:  b.Kategori,
			Harga:     currency.Format(b.Harga),
			EditURL:   fmt.Sprintf("%s/%d", editPath, b.ID),
			DeleteURL: listPath + "?" + url.Values{"hapus": {strconv.FormatInt(b.ID, 10)}}.Encode(),
		}
	}
	return listView{
		Table:     listview.NewTable(columns, rows, "Tidak ada data barang."),
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
		Question:  "Apakah kamu yakin ingin menghapus barang ini?",
		Action:    fmt.Sprintf("%s/%d", deletePath, d.SelectedID()),
		CancelURL: listPath,
	}
}

// --- Form page ---

type formView struct {
	Heading     string
	Action      string
	BackURL     string
	SubmitLabel string
	Nama        string
	Harga       string
	Kategoris   []web.Option
	Errors      map[string]string
}

func newFormView(heading, action string, d barang.Draft, errs form.Errors) formView {
	opts := make([]web.Option, 0, len(model.Kategoris()))
	for _, k := range model.Kategoris() {
		opts = append(opts, web.Option{Value: string(k), Label: k.Label(), Selected: k == d.Kategori})
	}
	return formView{
		Heading:     heading,
		Action:      action,
		BackURL:     listPath,
		SubmitLabel: "Simpan",
		Nama:        d.Nama,
		Harga:       d.HargaDisplay(),
		Kategoris:   opts,
		Errors:      errs.ByName(),
	}
}

func newCreateFormView(d barang.Draft, errs form.Errors) formView {
	return newFormView("Form Tambah Barang", createPath, d, errs)
}

func newEditFormView(id int64, d barang.Draft, errs form.Errors) formView {
	return newFormView("Form Ubah Barang", fmt.Sprintf("%s/%d", editPath, id), d, errs)
}
