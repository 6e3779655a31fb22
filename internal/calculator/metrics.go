package calculator

import "salesboard/internal/model"

// ComputeMetrics folds records into totals and the two derived ratios.
// Empty input yields the zero summary.
func ComputeMetrics(records []model.DailyRecord) model.MetricsSummary {
	var m model.MetricsSummary
	for _, r := range records {
		m.TotalLeads += r.NewLeads
		m.TotalQualified += r.QualifiedLeads
		m.TotalClosed += r.ContractsClosed
		m.TotalContractsValue += r.ContractsValue
		m.TotalSigned += r.ContractsSigned
		m.TotalPaid += r.Paid
		m.TotalPaid5d += r.PaidWithin5Days
	}

	if m.TotalQualified > 0 {
		m.ConversionRate = float64(m.TotalClosed) / float64(m.TotalQualified)
	}
	if m.TotalSigned > 0 {
		m.CostPerAcquisition = m.TotalPaid / float64(m.TotalSigned)
	}
	return m
}

// LastDay highest day present, 0 when empty
func LastDay(records []model.DailyRecord) int {
	last := 0
	for _, r := range records {
		if r.Day > last {
			last = r.Day
		}
	}
	return last
}

// FilterByWindow keeps the records inside the window ending at the latest day with data.
// Day: only that day. Week: the trailing seven days clamped to day 1. Month: everything.
// Input order is preserved.
func FilterByWindow(records []model.DailyRecord, window model.TimeWindow) []model.DailyRecord {
	if len(records) == 0 {
		return []model.DailyRecord{}
	}

	lastDay := LastDay(records)
	var from int
	switch window {
	case model.WindowDay:
		from = lastDay
	case model.WindowWeek:
		from = max(1, lastDay-6)
	default:
		out := make([]model.DailyRecord, len(records))
		copy(out, records)
		return out
	}

	out := make([]model.DailyRecord, 0, len(records))
	for _, r := range records {
		if r.Day >= from && r.Day <= lastDay {
			out = append(out, r)
		}
	}
	return out
}
