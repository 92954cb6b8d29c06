// Package web holds the embedded page templates and the layout view model.
package web

import (
	"embed"
	"html/template"

	"backoffice-dashboard/internal/notice"
)

//go:embed templates/*.html
var templateFS embed.FS

// Crumb is one breadcrumb entry. The last crumb has no URL.
type Crumb struct {
	Label string
	URL   string
}

type MenuItem struct {
	Label  string
	URL    string
	Active bool
}

// Menu sections.
const (
	SectionBarang    = "/kelola-barang"
	SectionPelanggan = "/kelola-pelanggan"
	SectionPenjualan = "/kelola-penjualan"
)

// Page is the data passed to every page template. Content is the page specific view model.
type Page struct {
	Title      string
	Breadcrumb []Crumb
	Menu       []MenuItem
	Banner     notice.Banner
	Alert      string
	// ReplaceURL, when set, replaces the address bar as soon as the page loads.
	// Pages rendered as the answer to a POST set it so a reload does not resubmit.
	ReplaceURL string
	Content    any
}

// NewPage builds the layout for section with a breadcrumb ending in title.
func NewPage(section, title string, content any) Page {
	p := Page{Title: title, Content: content}
	for _, m := range menu() {
		m.Active = m.URL == section
		p.Menu = append(p.Menu, m)
		if m.Active && m.Label != title {
			p.Breadcrumb = append(p.Breadcrumb, Crumb{Label: m.Label, URL: m.URL})
		}
	}
	p.Breadcrumb = append(p.Breadcrumb, Crumb{Label: title})
	return p
}

func menu() []MenuItem {
	return []MenuItem{
		{Label: "Kelola Barang", URL: SectionBarang},
		{Label: "Kelola Pelanggan", URL: SectionPelanggan},
		{Label: "Kelola Penjualan", URL: SectionPenjualan},
	}
}

var funcs = template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}

// Templates parses every embedded page template. Template names are file names, e.g. "barang_list.html".
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html"))
}

// Dialog is the delete confirmation of a list page.
type Dialog struct {
	Open      bool
	Question  string
	Action    string
	CancelURL string
}

// Option is one entry of a select or radio group.
type Option struct {
	Value    string
	Label    string
	Selected bool
}
