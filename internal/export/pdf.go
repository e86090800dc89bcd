package export

import (
	_ "embed"
	"io"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

const (
	pdfFont      = "DejaVuSansCondensed"
	pdfTitleSize = 16
	pdfBodySize  = 9
	pdfRowHeight = 7
)

var (
	//go:embed fonts/DejaVuSansCondensed.ttf
	fontRegular []byte
	//go:embed fonts/DejaVuSansCondensed-Bold.ttf
	fontBold []byte
)

// PDF writes doc as a landscape A4 table with a repeated header row.
func PDF(w io.Writer, doc Document) error {
	if err := newPDF(doc).Output(w); err != nil {
		return errors.Wrap(err, "render pdf")
	}
	return nil
}

// newPDF lays out doc with an embedded UTF-8 font so names outside Latin-1
// render as written.
func newPDF(doc Document) *fpdf.Fpdf {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.AddUTF8FontFromBytes(pdfFont, "", fontRegular)
	pdf.AddUTF8FontFromBytes(pdfFont, "B", fontBold)

	colWidth := 0.0
	if len(doc.Columns) > 0 {
		pageWidth, _ := pdf.GetPageSize()
		left, _, right, _ := pdf.GetMargins()
		colWidth = (pageWidth - left - right) / float64(len(doc.Columns))
	}

	header := func() {
		pdf.SetFont(pdfFont, "B", pdfBodySize)
		pdf.SetFillColor(230, 230, 230)
		for _, col := range doc.Columns {
			pdf.CellFormat(colWidth, pdfRowHeight, col, "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont(pdfFont, "", pdfBodySize)
	}
	pdf.SetHeaderFunc(func() {
		if pdf.PageNo() > 1 {
			header()
		}
	})

	pdf.AddPage()
	pdf.SetFont(pdfFont, "B", pdfTitleSize)
	pdf.CellFormat(0, 12, doc.Title, "", 1, "L", false, 0, "")
	pdf.Ln(2)
	header()

	for _, row := range doc.Rows {
		for i := range doc.Columns {
			pdf.CellFormat(colWidth, pdfRowHeight, doc.cell(row, i), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
	return pdf
}
