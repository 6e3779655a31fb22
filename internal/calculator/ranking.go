package calculator

import (
	"sort"

	"salesboard/internal/model"
)

// PodiumSize number of ranked salespeople shown on the podium
const PodiumSize = 3

// Ranked salesperson with its windowed records and metrics
type Ranked struct {
	model.Salesperson
	Rank    int                  `json:"rank"`
	Metrics model.MetricsSummary `json:"metrics"`
}

// Rank computes metrics for each (already windowed) salesperson and orders them by
// total paid, descending. Equal totals keep their input order.
func Rank(people []model.Salesperson) []Ranked {
	ranked := make([]Ranked, 0, len(people))
	for _, sp := range people {
		ranked = append(ranked, Ranked{
			Salesperson: sp,
			Metrics:     ComputeMetrics(sp.Records),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Metrics.TotalPaid > ranked[j].Metrics.TotalPaid
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}

// Podium first PodiumSize entries of a ranking
func Podium(ranked []Ranked) []Ranked {
	if len(ranked) <= PodiumSize {
		return ranked
	}
	return ranked[:PodiumSize]
}

// WindowAll applies the same window to every salesperson's records.
func WindowAll(people []model.Salesperson, window model.TimeWindow) []model.Salesperson {
	out := make([]model.Salesperson, len(people))
	for i, sp := range people {
		sp.Records = FilterByWindow(sp.Records, window)
		out[i] = sp
	}
	return out
}
