package importer

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"

	"salesboard/internal/model"
	"salesboard/internal/parser"
	"salesboard/internal/store"
)

// Outcome labels reported to the observer
const (
	OutcomeImported = "imported"
	OutcomeError    = "error"
)

// Roster is the part of the salesperson service an import needs.
type Roster interface {
	Get(id string) (model.Salesperson, error)
	ReplaceRecords(id string, records []model.DailyRecord) (model.Salesperson, error)
}

// Recorder persists an audit row per attempt. *store.Store satisfies it.
type Recorder interface {
	InsertImportLog(l *store.ImportLog) (int64, error)
}

// Observer receives counts per attempt. *metrics.Registry satisfies it.
type Observer interface {
	ObserveImport(outcome string, imported, skipped int)
}

// ProgressEvent one step of an import
type ProgressEvent struct {
	Type      string    `json:"type"` // start/parsed/done/error
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// ImportOptions one upload aimed at one salesperson
type ImportOptions struct {
	SalespersonID string
	Filename      string
	Reader        io.Reader
	Progress      func(ProgressEvent)
}

// Report result of a successful import
type Report struct {
	SalespersonID string            `json:"salespersonId"`
	Filename      string            `json:"filename"`
	ImportedRows  int               `json:"importedRows"`
	ScannedRows   int               `json:"scannedRows"`
	SkippedRows   int               `json:"skippedRows"`
	DaysInMonth   int               `json:"daysInMonth"`
	Duration      time.Duration     `json:"duration"`
	Salesperson   model.Salesperson `json:"salesperson"`
}

// Coordinator runs imports all-or-nothing: records are only replaced, and
// persisted, when the whole sheet parsed into at least one valid row.
type Coordinator struct {
	roster   Roster
	parser   *parser.RecordParser
	recorder Recorder
	observer Observer
}

// NewCoordinator recorder and observer may be nil.
func NewCoordinator(roster Roster, p *parser.RecordParser, recorder Recorder, observer Observer) *Coordinator {
	if p == nil {
		p = parser.NewRecordParser()
	}
	return &Coordinator{
		roster:   roster,
		parser:   p,
		recorder: recorder,
		observer: observer,
	}
}

// Import reads the workbook, parses it and replaces the salesperson's records.
func (c *Coordinator) Import(opts ImportOptions) (*Report, error) {
	startTime := time.Now()
	send := func(typ, msg string) {
		if opts.Progress != nil {
			opts.Progress(ProgressEvent{Type: typ, Message: msg, Timestamp: time.Now()})
		}
	}

	send("start", fmt.Sprintf("Importando %s", opts.Filename))

	report, err := c.doImport(opts, send)
	if err != nil {
		send("error", err.Error())
		c.finish(opts, nil, err)
		log.Warn().Err(err).Str("salesperson", opts.SalespersonID).Str("file", opts.Filename).Msg("import failed")
		return nil, err
	}

	report.Duration = time.Since(startTime)
	send("done", fmt.Sprintf("%d registros importados", report.ImportedRows))
	c.finish(opts, report, nil)
	log.Info().
		Str("salesperson", opts.SalespersonID).
		Str("file", opts.Filename).
		Int("imported", report.ImportedRows).
		Int("skipped", report.SkippedRows).
		Dur("duration", report.Duration).
		Msg("import done")
	return report, nil
}

func (c *Coordinator) doImport(opts ImportOptions, send func(typ, msg string)) (*Report, error) {
	if _, err := c.roster.Get(opts.SalespersonID); err != nil {
		return nil, err
	}

	sheet, err := parser.OpenSheet(opts.Reader)
	if err != nil {
		return nil, err
	}
	defer sheet.Close()

	result, err := c.parser.Parse(sheet)
	if err != nil {
		return nil, err
	}
	send("parsed", fmt.Sprintf("Planilha %q: %d linhas válidas, %d ignoradas", sheet.Name(), len(result.Records), result.SkippedRows))

	updated, err := c.roster.ReplaceRecords(opts.SalespersonID, result.Records)
	if err != nil {
		return nil, err
	}

	return &Report{
		SalespersonID: opts.SalespersonID,
		Filename:      opts.Filename,
		ImportedRows:  len(result.Records),
		ScannedRows:   result.ScannedRows,
		SkippedRows:   result.SkippedRows,
		DaysInMonth:   result.DaysInMonth,
		Salesperson:   updated,
	}, nil
}

// finish records the attempt. Failures here never fail the import itself.
func (c *Coordinator) finish(opts ImportOptions, report *Report, importErr error) {
	entry := &store.ImportLog{
		SalespersonID: opts.SalespersonID,
		Filename:      opts.Filename,
		Status:        OutcomeImported,
	}
	if importErr != nil {
		entry.Status = OutcomeError
		entry.Message = importErr.Error()
	} else {
		entry.ImportedRows = report.ImportedRows
		entry.SkippedRows = report.SkippedRows
	}

	if c.observer != nil {
		c.observer.ObserveImport(entry.Status, entry.ImportedRows, entry.SkippedRows)
	}
	if c.recorder != nil {
		if _, err := c.recorder.InsertImportLog(entry); err != nil {
			log.Error().Err(err).Msg("failed to record import log")
		}
	}
}
