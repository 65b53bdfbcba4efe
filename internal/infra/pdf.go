package infra

// pdf.go: printable price list for the shop counter and wholesale
// enquiries. A4 portrait:
//   - brand header and generation date
//   - one block per product: name, category, then one row per price slab

import (
	"fmt"
	"io"
	"time"

	"github.com/abdullah9786/nawab-products/internal/model"
	"github.com/abdullah9786/nawab-products/internal/pricing"

	"github.com/go-pdf/fpdf"
)

// PriceListInput carries everything rendered into the price list.
type PriceListInput struct {
	Brand       string
	GeneratedAt time.Time
	Products    []model.Product
	// Formatter renders slab prices. Core PDF fonts are cp1252, so the
	// symbol should avoid characters outside it (e.g. "Rs. " instead of ₹).
	Formatter *pricing.Formatter
}

// WritePriceList renders the price list PDF to w.
func WritePriceList(w io.Writer, in PriceListInput) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 15)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 5, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(contentW, 10, tr(in.Brand), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, "Price List", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 5, "Generated "+in.GeneratedAt.Format("02 Jan 2006 15:04"), "", 1, "C", false, 0, "")
	pdf.Ln(4)
	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(4)

	if len(in.Products) == 0 {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.CellFormat(contentW, 8, "No active products.", "", 1, "C", false, 0, "")
		return pdf.Output(w)
	}

	sizeW := contentW * 0.6
	priceW := contentW * 0.4

	for _, p := range in.Products {
		// keep a product block on one page
		if _, pageH := pdf.GetPageSize(); pdf.GetY()+float64(12+5*len(p.Prices)) > pageH-20 {
			pdf.AddPage()
		}

		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(contentW*0.7, 6, tr(p.Name), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 8)
		pdf.CellFormat(contentW*0.3, 6, tr(p.Category), "", 1, "R", false, 0, "")

		pdf.SetFont("Helvetica", "", 9)
		for _, s := range p.Prices {
			pdf.CellFormat(sizeW, 5, tr(pricing.UnitLabel(s.Unit, s.Quantity)), "", 0, "L", false, 0, "")
			pdf.CellFormat(priceW, 5, tr(in.Formatter.Format(s.Price)), "", 1, "R", false, 0, "")
		}
		pdf.Ln(2)
		pdf.SetDrawColor(200, 200, 200)
		pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
		pdf.SetDrawColor(0, 0, 0)
		pdf.Ln(3)
	}

	return pdf.Output(w)
}
