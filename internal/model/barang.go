package model

import "fmt"

// Kategori is the fixed set of item categories known to the backoffice API.
type Kategori string

const (
	KategoriATK        Kategori = "ATK"
	KategoriRT         Kategori = "RT"
	KategoriMasak      Kategori = "MASAK"
	KategoriElektronik Kategori = "ELEKTRONIK"
)

// Kategoris lists every category in display order.
func Kategoris() []Kategori {
	return []Kategori{KategoriATK, KategoriRT, KategoriMasak, KategoriElektronik}
}

// Label returns the Indonesian display label.
func (k Kategori) Label() string {
	switch k {
	case KategoriATK:
		return "Alat Tulis Kantor"
	case KategoriRT:
		return "Rumah Tangga"
	case KategoriMasak:
		return "Masak"
	case KategoriElektronik:
		return "Elektronik"
	default:
		return string(k)
	}
}

func (k Kategori) IsValid() bool {
	switch k {
	case KategoriATK, KategoriRT, KategoriMasak, KategoriElektronik:
		return true
	}
	return false
}

// Barang is a sellable item. Harga is a whole rupiah amount.
type Barang struct {
	ID        int64    `json:"id"`
	Nama      string   `json:"nama"`
	Kategori  Kategori `json:"kategori"`
	Harga     int64    `json:"harga"`
	CreatedAt string   `json:"created_at,omitempty"`
}

// Kode is the code shown in the item table.
func (b Barang) Kode() string {
	return fmt.Sprintf("BRG_%d", b.ID)
}
