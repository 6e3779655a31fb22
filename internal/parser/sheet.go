package parser

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Bounds occupied cell range of a sheet (1-indexed, inclusive)
type Bounds struct {
	LastRow    int    `json:"lastRow"`
	LastColumn string `json:"lastColumn"`
}

// Cell typed view over one worksheet cell
type Cell struct {
	Empty    bool
	IsNumber bool    // stored value is numeric
	Number   float64 // valid when IsNumber
	Text     string  // formatted display text
	Raw      string  // stored value as written in the sheet
}

// Sheet first worksheet of an uploaded workbook
type Sheet struct {
	file   *excelize.File
	name   string
	bounds Bounds
}

// OpenSheet reads a workbook from r and selects its first sheet.
func OpenSheet(r io.Reader) (*Sheet, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableFile, err)
	}
	if len(data) == 0 {
		return nil, ErrUnreadableFile
	}

	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableFile, err)
	}
	return FromWorkbook(file)
}

// FromWorkbook wraps an already opened workbook. The sheet takes ownership of file.
func FromWorkbook(file *excelize.File) (*Sheet, error) {
	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		_ = file.Close()
		return nil, ErrNoSheet
	}

	s := &Sheet{file: file, name: sheets[0]}
	if err := s.scanBounds(); err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("%w: %v", ErrUnreadableFile, err)
	}
	return s, nil
}

func (s *Sheet) scanBounds() error {
	rows, err := s.file.GetRows(s.name, excelize.Options{RawCellValue: true})
	if err != nil {
		return err
	}

	lastRow, lastCol := 0, 0
	for i, row := range rows {
		width := 0
		for j, v := range row {
			if v != "" {
				width = j + 1
			}
		}
		if width > 0 {
			lastRow = i + 1
		}
		if width > lastCol {
			lastCol = width
		}
	}
	if lastCol == 0 {
		lastCol = 1
	}

	colName, err := excelize.ColumnNumberToName(lastCol)
	if err != nil {
		return err
	}
	s.bounds = Bounds{LastRow: lastRow, LastColumn: colName}
	return nil
}

// Name sheet name
func (s *Sheet) Name() string {
	return s.name
}

// Bounds occupied range
func (s *Sheet) Bounds() Bounds {
	return s.bounds
}

// Cell looks up a cell by column letter and 1-indexed row.
// Lookup failures degrade to an empty cell.
func (s *Sheet) Cell(col string, row int) Cell {
	axis := strings.ToUpper(col) + strconv.Itoa(row)

	text, err := s.file.GetCellValue(s.name, axis)
	if err != nil {
		return Cell{Empty: true}
	}
	raw, err := s.file.GetCellValue(s.name, axis, excelize.Options{RawCellValue: true})
	if err != nil {
		return Cell{Empty: true}
	}
	typ, err := s.file.GetCellType(s.name, axis)
	if err != nil {
		return Cell{Empty: true}
	}

	cell := Cell{Text: strings.TrimSpace(text)}

	switch typ {
	case excelize.CellTypeUnset, excelize.CellTypeNumber:
		// numbers are usually written without a type attribute
		cell.Raw = raw
		if v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil {
			cell.IsNumber = true
			cell.Number = v
		}
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula:
		// raw of a shared string is its table index, the display text is the value
		cell.Raw = text
	default:
		cell.Raw = raw
	}

	cell.Empty = cell.Raw == "" && cell.Text == "" && !cell.IsNumber
	return cell
}

// Close releases the underlying workbook.
func (s *Sheet) Close() error {
	if s.file == nil {
		return nil
	}
	return s.file.Close()
}
