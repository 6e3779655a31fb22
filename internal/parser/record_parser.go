package parser

import (
	"math"
	"time"

	"salesboard/internal/model"
)

// Fixed layout of the daily activity sheet.
const (
	DataStartRow = 6

	ColDayLabel = "C"
	ColDay      = "E"
	ColNewLeads = "G"
	ColSQL      = "I"
	ColPaid5d   = "AE"
	ColPaid     = "AG"
)

// Tier one contract price point and the columns holding its counts
type Tier struct {
	Price        float64
	ClosedColumn string
	SignedColumn string
}

// Tiers the three contract price points, in column order
var Tiers = [3]Tier{
	{Price: 1299, ClosedColumn: "K", SignedColumn: "M"},
	{Price: 997, ClosedColumn: "S", SignedColumn: "U"},
	{Price: 847, ClosedColumn: "AA", SignedColumn: "AC"},
}

// Result parsed records plus the diagnostics of one sheet scan
type Result struct {
	Records     []model.DailyRecord `json:"records"`
	DaysInMonth int                 `json:"daysInMonth"`
	ScannedRows int                 `json:"scannedRows"`
	SkippedRows int                 `json:"skippedRows"` // rows whose day cell failed the gate
}

// RecordParser turns the daily activity sheet into DailyRecords.
// The sheet is assumed to describe the month of now(), so the day gate is
// bounded by that month's length and never by anything read from the file.
type RecordParser struct {
	now func() time.Time
}

// NewRecordParser uses the wall clock.
func NewRecordParser() *RecordParser {
	return &RecordParser{now: time.Now}
}

// NewRecordParserWithClock fixes the reference date, mostly for tests.
func NewRecordParserWithClock(now func() time.Time) *RecordParser {
	if now == nil {
		now = time.Now
	}
	return &RecordParser{now: now}
}

// DaysInMonth number of days in t's month
func DaysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}

// Parse scans rows DataStartRow..last occupied row in ascending order.
// Invalid rows are skipped; only an empty result is an error.
func (p *RecordParser) Parse(sheet *Sheet) (*Result, error) {
	daysInMonth := DaysInMonth(p.now())
	result := &Result{
		Records:     []model.DailyRecord{},
		DaysInMonth: daysInMonth,
	}

	lastRow := sheet.Bounds().LastRow
	for row := DataStartRow; row <= lastRow; row++ {
		result.ScannedRows++

		day, ok := dayNumber(sheet.Cell(ColDay, row), daysInMonth)
		if !ok {
			result.SkippedRows++
			continue
		}
		result.Records = append(result.Records, parseRow(sheet, row, day))
	}

	if len(result.Records) == 0 {
		return result, &NoValidRowsError{DaysInMonth: daysInMonth}
	}
	return result, nil
}

// dayNumber gates numeric cells on the stored value before truncating,
// so 30.5 is outside a 30-day month rather than day 30.
func dayNumber(c Cell, daysInMonth int) (int, bool) {
	if !c.Empty && c.IsNumber {
		if math.IsNaN(c.Number) || c.Number < 1 || c.Number > float64(daysInMonth) {
			return 0, false
		}
		return truncInt(c.Number), true
	}
	day := CellInt(c)
	return day, day >= 1 && day <= daysInMonth
}

func parseRow(sheet *Sheet, row, day int) model.DailyRecord {
	record := model.DailyRecord{
		Day:             day,
		DayLabel:        CellString(sheet.Cell(ColDayLabel, row)),
		NewLeads:        CellInt(sheet.Cell(ColNewLeads, row)),
		QualifiedLeads:  CellInt(sheet.Cell(ColSQL, row)),
		PaidWithin5Days: CellCurrency(sheet.Cell(ColPaid5d, row)),
		Paid:            CellCurrency(sheet.Cell(ColPaid, row)),
	}

	for _, tier := range Tiers {
		closed := CellInt(sheet.Cell(tier.ClosedColumn, row))
		signed := CellInt(sheet.Cell(tier.SignedColumn, row))
		record.ContractsClosed += closed
		record.ContractsValue += float64(closed) * tier.Price
		record.ContractsSigned += signed
	}
	return record
}
