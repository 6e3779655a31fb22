package exporter

import (
	"fmt"
	"math"

	"github.com/xuri/excelize/v2"

	"salesboard/internal/calculator"
	"salesboard/internal/model"
)

// RankingSheet first sheet of every export
const RankingSheet = "Ranking"

var rankingHeaders = []string{
	"Posição", "Vendedora", "Novos Leads", "SQL", "Contratos Fechados", "Valor Contratos",
	"Contratos Assinados", "Pago", "Pago em 5 dias", "Taxa de Conversão", "CPA",
}

var dailyHeaders = []string{
	"Dia", "Dia da Semana", "Novos Leads", "SQL", "Contratos Fechados", "Contratos Assinados",
	"Valor Contratos", "Pago em 5 dias", "Pago",
}

// ExportOptions export selection
type ExportOptions struct {
	Window model.TimeWindow
}

// Exporter writes the windowed ranking plus each salesperson's daily records to a workbook.
type Exporter struct{}

func NewExporter() *Exporter {
	return &Exporter{}
}

// Export builds the workbook; the caller owns and must close it.
func (e *Exporter) Export(people []model.Salesperson, opts ExportOptions) (*excelize.File, error) {
	f := excelize.NewFile()

	ranked := calculator.Rank(calculator.WindowAll(people, opts.Window))
	if err := f.SetSheetName(f.GetSheetName(0), RankingSheet); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err := fillRankingSheet(f, ranked); err != nil {
		_ = f.Close()
		return nil, err
	}

	used := map[string]bool{RankingSheet: true}
	for _, r := range ranked {
		sheet := sheetName(r.Name, used)
		if _, err := f.NewSheet(sheet); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("failed to create sheet for %s: %w", r.Name, err)
		}
		if err := fillDailySheet(f, sheet, r.Records); err != nil {
			_ = f.Close()
			return nil, err
		}
	}

	f.SetActiveSheet(0)
	return f, nil
}

func fillRankingSheet(f *excelize.File, ranked []calculator.Ranked) error {
	if err := writeRow(f, RankingSheet, 1, toAny(rankingHeaders)); err != nil {
		return err
	}
	for i, r := range ranked {
		m := r.Metrics
		row := []any{
			r.Rank, r.Name, m.TotalLeads, m.TotalQualified, m.TotalClosed, roundHalfUp(m.TotalContractsValue, 2),
			m.TotalSigned, roundHalfUp(m.TotalPaid, 2), roundHalfUp(m.TotalPaid5d, 2),
			roundHalfUp(m.ConversionRate, 4), roundHalfUp(m.CostPerAcquisition, 2),
		}
		if err := writeRow(f, RankingSheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func fillDailySheet(f *excelize.File, sheet string, records []model.DailyRecord) error {
	if err := writeRow(f, sheet, 1, toAny(dailyHeaders)); err != nil {
		return err
	}
	for i, r := range records {
		row := []any{
			r.Day, r.DayLabel, r.NewLeads, r.QualifiedLeads, r.ContractsClosed, r.ContractsSigned,
			roundHalfUp(r.ContractsValue, 2), roundHalfUp(r.PaidWithin5Days, 2), roundHalfUp(r.Paid, 2),
		}
		if err := writeRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write %s row %d: %w", sheet, row, err)
	}
	return nil
}

// sheetName excel limits names to 31 chars and forbids : \ / ? * [ ]
func sheetName(name string, used map[string]bool) string {
	clean := []rune{}
	for _, r := range name {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			continue
		}
		clean = append(clean, r)
	}
	if len(clean) == 0 {
		clean = []rune("Vendedora")
	}
	if len(clean) > 28 {
		clean = clean[:28]
	}

	base := string(clean)
	candidate := base
	for n := 2; used[candidate]; n++ {
		candidate = fmt.Sprintf("%s %d", base, n)
	}
	used[candidate] = true
	return candidate
}

func toAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

func roundHalfUp(v float64, digits int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	scale := math.Pow10(digits)
	x := v * scale
	if x >= 0 {
		return math.Floor(x+0.5) / scale
	}
	return -math.Floor(-x+0.5) / scale
}
