package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DateLayout is the wire format of Penjualan.Tgl.
const DateLayout = "2006-01-02"

// Penjualan is a sales order. Subtotal is computed by the server and never sent back.
type Penjualan struct {
	ID          int64           `json:"id"`
	Tgl         string          `json:"tgl"`
	PelangganID int64           `json:"pelanggan_id"`
	Pelanggan   *Pelanggan      `json:"pelanggan,omitempty"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Items       []ItemPenjualan `json:"item_penjualans"`
}

// ItemPenjualan is one line of a sales order.
type ItemPenjualan struct {
	ID       int64   `json:"id"`
	BarangID int64   `json:"barang_id"`
	Barang   *Barang `json:"barang,omitempty"`
	Qty      int     `json:"qty"`
}

// NoNota is the receipt number shown in the sales table.
func (p Penjualan) NoNota() string {
	return fmt.Sprintf("NOTA_%d", p.ID)
}

// CustomerID resolves the customer reference from either pelanggan_id or the nested pelanggan.
func (p Penjualan) CustomerID() int64 {
	if p.PelangganID != 0 {
		return p.PelangganID
	}
	if p.Pelanggan != nil {
		return p.Pelanggan.ID
	}
	return 0
}

// CustomerName returns the nested customer name, empty when the API did not embed it.
func (p Penjualan) CustomerName() string {
	if p.Pelanggan == nil {
		return ""
	}
	return p.Pelanggan.Nama
}

// ItemID resolves the item reference from either barang_id or the nested barang.
func (i ItemPenjualan) ItemID() int64 {
	if i.BarangID != 0 {
		return i.BarangID
	}
	if i.Barang != nil {
		return i.Barang.ID
	}
	return 0
}

func (i ItemPenjualan) ItemName() string {
	if i.Barang == nil {
		return fmt.Sprintf("BRG_%d", i.ItemID())
	}
	return i.Barang.Nama
}
