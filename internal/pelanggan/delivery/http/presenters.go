package http

import (
	"fmt"

	"backoffice-dashboard/internal/form"
	"backoffice-dashboard/internal/listview"
	"backoffice-dashboard/internal/model"
	"backoffice-dashboard/internal/notice"
	"backoffice-dashboard/internal/pelanggan"
	"backoffice-dashboard/web"
)

const (
	tmplList = "pelanggan_list.html"
	tmplForm = "pelanggan_form.html"

	titleList   = "Kelola Pelanggan"
	titleCreate = "Tambah Pelanggan"
	titleEdit   = "Ubah Pelanggan"
)

var (
	columns  = []string{"ID Pelanggan", "Nama", "Domisili", "Jenis Kelamin", "Aksi"}
	messages = notice.MessagesFor("Pelanggan")
)

type row struct {
	No           int
	Nama         string
	Domisili     model.Domisili
	JenisKelamin model.JenisKelamin
	Pria         bool
	EditURL      string
	DeleteURL    string
}

type listView struct {
	Table     listview.Table[row]
	Dialog    web.Dialog
	CreateURL string
}

// The ID Pelanggan column shows the row number, not the record id.
func newListView(items []model.Pelanggan, dialog listview.ConfirmDialog) listView {
	rows := make([]row, len(items))
	for i, p := range items {
		rows[i] = row{
			No:           i + 1,
			Nama:         p.Nama,
			Domisili:     p.Domisili,
			JenisKelamin: p.JenisKelamin,
			Pria:         p.JenisKelamin == model.JenisKelaminPria,
			EditURL:      fmt.Sprintf("%s/%d", editPath, p.ID),
			DeleteURL:    fmt.Sprintf("%s?hapus=%d", listPath, p.ID),
		}
	}

	v := listView{
		Table:     listview.NewTable(columns, rows, "Tidak ada data pelanggan."),
		CreateURL: createPath,
	}
	if dialog.IsOpen() {
		v.Dialog = web.Dialog{
			Open:      true,
			Question:  "Apakah kamu yakin ingin menghapus pelanggan ini?",
			Action:    fmt.Sprintf("%s/%d", deletePath, dialog.SelectedID()),
			CancelURL: listPath,
		}
	}
	return v
}

type formView struct {
	Heading       string
	Action        string
	BackURL       string
	Nama          string
	Domisilis     []web.Option
	JenisKelamins []web.Option
	Errors        map[string]string
}

func newFormView(heading, action string, d pelanggan.Draft, errs form.Errors) formView {
	v := formView{
		Heading: heading,
		Action:  action,
		BackURL: listPath,
		Nama:    d.Nama,
		Errors:  errs.ByName(),
	}
	for _, dom := range model.Domisilis() {
		v.Domisilis = append(v.Domisilis, web.Option{Value: string(dom), Label: string(dom), Selected: dom == d.Domisili})
	}
	for _, jk := range model.JenisKelamins() {
		v.JenisKelamins = append(v.JenisKelamins, web.Option{Value: string(jk), Label: jk.Label(), Selected: jk == d.JenisKelamin})
	}
	return v
}
