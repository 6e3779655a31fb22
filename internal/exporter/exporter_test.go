package exporter

import (
	"testing"

	"salesboard/internal/model"
)

func TestExport_RankingAndDailySheets(t *testing.T) {
	people := []model.Salesperson{
		{ID: "a", Name: "Ana", Records: []model.DailyRecord{{Day: 1, DayLabel: "Segunda-Feira", Paid: 100}, {Day: 2, Paid: 50.25}}},
		{ID: "b", Name: "Bia/Souza", Records: []model.DailyRecord{{Day: 2, Paid: 900}}},
		{ID: "c", Name: "Ana", Records: nil},
	}

	f, err := NewExporter().Export(people, ExportOptions{Window: model.WindowMonth})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	want := []string{RankingSheet, "BiaSouza", "Ana", "Ana 2"}
	if len(sheets) != len(want) {
		t.Fatalf("sheets=%v, want %v", sheets, want)
	}
	for i := range want {
		if sheets[i] != want[i] {
			t.Fatalf("sheets=%v, want %v", sheets, want)
		}
	}

	first, _ := f.GetCellValue(RankingSheet, "B2")
	if first != "Bia/Souza" {
		t.Fatalf("top ranked=%q", first)
	}
	paid, _ := f.GetCellValue(RankingSheet, "H3")
	if paid != "150.25" {
		t.Fatalf("rounded paid=%q, want 150.25", paid)
	}

	label, _ := f.GetCellValue("Ana", "B2")
	if label != "Segunda-Feira" {
		t.Fatalf("day label=%q", label)
	}
}

func TestSheetName(t *testing.T) {
	used := map[string]bool{}
	long := "Maria Aparecida dos Santos Oliveira"
	if got := sheetName(long, used); len([]rune(got)) > 31 {
		t.Fatalf("sheet name too long: %q", got)
	}
	if got := sheetName("[]", used); got != "Vendedora" {
		t.Fatalf("got %q, want Vendedora", got)
	}
}
