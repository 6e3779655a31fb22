package parser

import "testing"

func TestCellInt_Policy(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		cell Cell
		want int
	}{
		{"empty", Cell{Empty: true}, 0},
		{"numeric wins over text", Cell{IsNumber: true, Number: 12, Text: "99"}, 12},
		{"numeric truncates", Cell{IsNumber: true, Number: 3.9}, 3},
		{"display text", Cell{Text: "17", Raw: "17"}, 17},
		{"display text prefix", Cell{Text: "8 leads"}, 8},
		{"display text garbage", Cell{Text: "n/a", Raw: "5"}, 0},
		{"raw when no text", Cell{Raw: "21"}, 21},
		{"nothing parseable", Cell{Raw: "x"}, 0},
	}
	for _, tc := range cases {
		if got := CellInt(tc.cell); got != tc.want {
			t.Fatalf("%s: CellInt=%d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestParseCurrency(t *testing.T) {
	t.Parallel()

	cases := map[string]float64{
		"R$ 1.234,56":   1234.56,
		"R$1.000.000,5": 1000000.5,
		"  997 ":        997,
		"R$ 0,99":       0.99,
		"":              0,
		"abc":           0,
		"R$ -":          0,
	}
	for in, want := range cases {
		if got := ParseCurrency(in); got != want {
			t.Fatalf("ParseCurrency(%q)=%v, want %v", in, got, want)
		}
	}
}

func TestCellCurrency_PrefersNumber(t *testing.T) {
	t.Parallel()

	if got := CellCurrency(Cell{IsNumber: true, Number: 150.25, Text: "R$ 999,00"}); got != 150.25 {
		t.Fatalf("CellCurrency=%v, want 150.25", got)
	}
	if got := CellCurrency(Cell{Raw: "12"}); got != 0 {
		t.Fatalf("CellCurrency without text=%v, want 0", got)
	}
}
