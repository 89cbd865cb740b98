package export

import (
	"bytes"
	"testing"

	"leadgrid/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestXLSXExporter_Export(t *testing.T) {
	zoneID := uuid.New()
	businesses := []*entity.Business{
		{
			ID:                 uuid.New(),
			ZoneID:             &zoneID,
			ExternalID:         "p1",
			Name:               "Pipe Pros",
			Category:           "plumbing",
			Website:            "",
			WebsiteStatus:      entity.WebsiteStatusInvalid,
			Rating:             4.5,
			ReviewCount:        12,
			QualificationScore: 80,
			Qualified:          true,
		},
		{
			ID:            uuid.New(),
			ExternalID:    "p2",
			Name:          "Drain Co",
			Category:      "plumbing",
			WebsiteStatus: entity.WebsiteStatusValid,
		},
	}

	exporter := NewXLSXExporter()
	data, err := exporter.Export(businesses)
	require.NoError(t, err)
	assert.Equal(t, ".xlsx", exporter.FileExtension())
	assert.Contains(t, exporter.ContentType(), "spreadsheetml")

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{sheetName}, f.GetSheetList())

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, BusinessExportHeader, rows[0])
	assert.Equal(t, "Pipe Pros", rows[1][2])
	assert.Equal(t, "invalid", rows[1][8])
	assert.Equal(t, zoneID.String(), rows[1][13])
	assert.Equal(t, "p2", rows[2][1])
}

func TestXLSXExporter_EmptyResult(t *testing.T) {
	data, err := NewXLSXExporter().Export(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
