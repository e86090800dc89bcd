// Package export renders tabular documents as PDF or XLSX.
package export

const (
	PDFContentType  = "application/pdf; charset=utf-8"
	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	// Creator is written into the workbook properties.
	Creator = "Fleet Manager App"
)

// Document is a titled table. Every row should have one cell per column;
// short rows are padded with empty cells.
type Document struct {
	Title   string
	Sheet   string
	Columns []string
	Rows    [][]string
}

func (d Document) cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
