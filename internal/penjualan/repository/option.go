package repository

// SavePenjualanOptions is the body of POST /penjualans and PUT /penjualans/{id}.
// The subtotal is computed by the server and never sent.
type SavePenjualanOptions struct {
	Tgl         string
	PelangganID int64
	Items       []SaveItemOptions
}

type SaveItemOptions struct {
	BarangID int64
	Qty      int
}
