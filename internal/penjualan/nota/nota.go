// Package nota renders the printable receipt of a sales order.
package nota

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"backoffice-dashboard/internal/model"
	"backoffice-dashboard/pkg/currency"
)

// Render writes the receipt of p as an A4 PDF.
func Render(w io.Writer, p model.Penjualan) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(p.NoNota(), true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, "Nota Penjualan "+p.NoNota(), "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 7, "Tanggal: "+p.Tgl, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, tr("Pelanggan: "+customer(p)), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	widths := []float64{12, 98, 20, 60}
	pdf.SetFont("Arial", "B", 11)
	for i, h := range []string{"No", "Barang", "Qty", "Harga"} {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 11)
	for i, item := range p.Items {
		pdf.CellFormat(widths[0], 8, fmt.Sprint(i+1), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[1], 8, tr(item.ItemName()), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 8, fmt.Sprint(item.Qty), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 8, unitPrice(item), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(widths[0]+widths[1]+widths[2], 8, "Subtotal", "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[3], 8, currency.FormatDecimal(p.Subtotal), "1", 1, "R", false, 0, "")

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("nota.Render %s: %w", p.NoNota(), err)
	}
	return nil
}

func customer(p model.Penjualan) string {
	if name := p.CustomerName(); name != "" {
		return name
	}
	return fmt.Sprintf("#%d", p.CustomerID())
}

func unitPrice(item model.ItemPenjualan) string {
	if item.Barang == nil {
		return "-"
	}
	return currency.Format(item.Barang.Harga)
}
