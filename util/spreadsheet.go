// util/spreadsheet.go

package util

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	ed_errors "github.com/dev-mohitbeniwal/eventdesk/errors"
	logger "github.com/dev-mohitbeniwal/eventdesk/logging"
)

const templateSheet = "Participants"

// Spreadsheet reads participant imports from, and writes form templates to,
// xlsx workbooks. Only the first worksheet is considered.
type Spreadsheet struct{}

func NewSpreadsheet() *Spreadsheet {
	return &Spreadsheet{}
}

// ReadSheet returns the trimmed header row and the remaining rows as
// displayed cell text. Rows may be shorter than the header.
func (s *Spreadsheet) ReadSheet(data []byte) ([]string, [][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: unreadable workbook: %v", ed_errors.ErrInvalidInput, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			logger.Warn("Failed to close workbook", zap.Error(err))
		}
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, ed_errors.ErrEmptySheet
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ed_errors.ErrInvalidInput, err)
	}
	if len(rows) == 0 {
		return nil, nil, ed_errors.ErrEmptySheet
	}

	header := make([]string, len(rows[0]))
	empty := true
	for i, cell := range rows[0] {
		header[i] = strings.TrimSpace(cell)
		if header[i] != "" {
			empty = false
		}
	}
	if empty {
		return nil, nil, ed_errors.ErrEmptySheet
	}

	logger.Debug("Workbook read",
		zap.String("sheet", sheets[0]),
		zap.Int("columns", len(header)),
		zap.Int("rows", len(rows)-1))
	return header, rows[1:], nil
}

// FormTemplate builds a workbook whose first row holds the given field names.
func (s *Spreadsheet) FormTemplate(fieldNames []string) ([]byte, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			logger.Warn("Failed to close workbook", zap.Error(err))
		}
	}()

	if err := f.SetSheetName(f.GetSheetName(0), templateSheet); err != nil {
		return nil, fmt.Errorf("failed to name template sheet: %w", err)
	}

	header := make([]interface{}, len(fieldNames))
	for i, name := range fieldNames {
		header[i] = name
	}
	if err := f.SetSheetRow(templateSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write template header: %w", err)
	}

	if len(fieldNames) > 0 {
		last, err := excelize.ColumnNumberToName(len(fieldNames))
		if err != nil {
			return nil, fmt.Errorf("failed to size template columns: %w", err)
		}
		if err := f.SetColWidth(templateSheet, "A", last, 24); err != nil {
			return nil, fmt.Errorf("failed to size template columns: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write template: %w", err)
	}
	return buf.Bytes(), nil
}
