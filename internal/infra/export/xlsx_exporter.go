// Package export renders business search results into spreadsheets.
package export

import (
	"bytes"

	"leadgrid/internal/domain/entity"
	"leadgrid/internal/domain/service"
	"leadgrid/internal/errors"

	"github.com/xuri/excelize/v2"
)

const (
	sheetName       = "Businesses"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// BusinessExportHeader is the header row of the export sheet.
//
//nolint:gochecknoglobals
var BusinessExportHeader = []string{
	"ID",
	"External ID",
	"Name",
	"Category",
	"Address",
	"Phone",
	"Email",
	"Website",
	"Website Status",
	"Rating",
	"Reviews",
	"Score",
	"Qualified",
	"Zone ID",
}

//nolint:gochecknoglobals
var columnWidths = []float64{38, 20, 32, 18, 40, 16, 28, 36, 14, 8, 8, 8, 10, 38}

// xlsxExporter implements service.BusinessExporter with excelize.
type xlsxExporter struct{}

// NewXLSXExporter creates the spreadsheet exporter.
func NewXLSXExporter() service.BusinessExporter {
	return xlsxExporter{}
}

func (xlsxExporter) ContentType() string {
	return xlsxContentType
}

func (xlsxExporter) FileExtension() string {
	return ".xlsx"
}

// Export writes one row per business below a styled header row.
func (xlsxExporter) Export(businesses []*entity.Business) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create sheet")
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, errors.Wrap(err, "failed to delete default sheet")
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create header style")
	}

	header := make([]any, len(BusinessExportHeader))
	for i, h := range BusinessExportHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, errors.Wrap(err, "failed to write header")
	}

	lastCol, err := excelize.ColumnNumberToName(len(BusinessExportHeader))
	if err != nil {
		return nil, errors.Wrap(err, "failed to convert column number")
	}
	if err := f.SetCellStyle(sheetName, "A1", lastCol+"1", headerStyle); err != nil {
		return nil, errors.Wrap(err, "failed to set header style")
	}

	for i, width := range columnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, errors.Wrap(err, "failed to convert column number")
		}
		if err := f.SetColWidth(sheetName, col, col, width); err != nil {
			return nil, errors.Wrap(err, "failed to set column width")
		}
	}

	for i, b := range businesses {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, errors.Wrap(err, "failed to convert coordinates")
		}

		zoneID := ""
		if b.ZoneID != nil {
			zoneID = b.ZoneID.String()
		}

		row := []any{
			b.ID.String(),
			b.ExternalID,
			b.Name,
			b.Category,
			b.Address,
			b.Phone,
			b.Email,
			b.Website,
			string(b.WebsiteStatus),
			b.Rating,
			b.ReviewCount,
			b.QualificationScore,
			b.Qualified,
			zoneID,
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, errors.Wrapf(err, "failed to write row %d", i+2)
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, errors.Wrap(err, "failed to write workbook")
	}

	return buf.Bytes(), nil
}
