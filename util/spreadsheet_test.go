package util

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	ed_errors "github.com/dev-mohitbeniwal/eventdesk/errors"
)

func workbook(t *testing.T, rows ...[]interface{}) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		r := row
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &r))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestSpreadsheet_ReadSheet(t *testing.T) {
	data := workbook(t,
		[]interface{}{" Email ", "Phone", "Age"},
		[]interface{}{"a@b.com", "+1 555-1212", 31},
		[]interface{}{"c@d.com"},
	)

	header, rows, err := NewSpreadsheet().ReadSheet(data)
	require.NoError(t, err)
	assert.Equal(t, []string{"Email", "Phone", "Age"}, header)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"a@b.com", "+1 555-1212", "31"}, rows[0])
	assert.Equal(t, []string{"c@d.com"}, rows[1])
}

func TestSpreadsheet_EmptySheet(t *testing.T) {
	_, _, err := NewSpreadsheet().ReadSheet(workbook(t))
	assert.ErrorIs(t, err, ed_errors.ErrEmptySheet)
}

func TestSpreadsheet_NotAWorkbook(t *testing.T) {
	_, _, err := NewSpreadsheet().ReadSheet([]byte("Email,Phone\n"))
	assert.ErrorIs(t, err, ed_errors.ErrInvalidInput)
}

func TestSpreadsheet_FormTemplate(t *testing.T) {
	s := NewSpreadsheet()
	data, err := s.FormTemplate([]string{"Email", "Name", "Phone"})
	require.NoError(t, err)

	header, rows, err := s.ReadSheet(data)
	require.NoError(t, err)
	assert.Equal(t, []string{"Email", "Name", "Phone"}, header)
	assert.Empty(t, rows)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{templateSheet}, f.GetSheetList())
}
