package export

import (
	"io"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

const defaultSheet = "Sheet1"

// XLSX writes doc as a single-sheet workbook with a bold header row.
func XLSX(w io.Writer, doc Document) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := doc.Sheet
	if sheet == "" {
		sheet = defaultSheet
	}
	if err := f.SetSheetName(defaultSheet, sheet); err != nil {
		return errors.Wrap(err, "rename sheet")
	}
	if err := f.SetDocProps(&excelize.DocProperties{
		Creator: Creator,
		Title:   doc.Title,
	}); err != nil {
		return errors.Wrap(err, "set workbook properties")
	}

	header := make([]interface{}, len(doc.Columns))
	for i, col := range doc.Columns {
		header[i] = col
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return errors.Wrap(err, "write header")
	}

	for r, row := range doc.Rows {
		values := make([]interface{}, len(doc.Columns))
		for i := range doc.Columns {
			values[i] = doc.cell(row, i)
		}
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return errors.Wrap(err, "cell name")
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return errors.Wrapf(err, "write row %d", r+1)
		}
	}

	if len(doc.Columns) > 0 {
		if err := styleHeader(f, sheet, len(doc.Columns)); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return errors.Wrap(err, "write workbook")
	}
	return nil
}

func styleHeader(f *excelize.File, sheet string, columns int) error {
	lastCol, err := excelize.ColumnNumberToName(columns)
	if err != nil {
		return errors.Wrap(err, "column name")
	}
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return errors.Wrap(err, "header style")
	}
	if err := f.SetCellStyle(sheet, "A1", lastCol+"1", style); err != nil {
		return errors.Wrap(err, "apply header style")
	}
	if err := f.SetColWidth(sheet, "A", lastCol, 22); err != nil {
		return errors.Wrap(err, "column width")
	}
	return nil
}
