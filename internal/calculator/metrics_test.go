package calculator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salesboard/internal/model"
)

func rec(day int, leads, sql, closed, signed int, paid, paid5d, value float64) model.DailyRecord {
	return model.DailyRecord{
		Day:             day,
		NewLeads:        leads,
		QualifiedLeads:  sql,
		ContractsClosed: closed,
		ContractsSigned: signed,
		Paid:            paid,
		PaidWithin5Days: paid5d,
		ContractsValue:  value,
	}
}

func sampleMonth() []model.DailyRecord {
	var out []model.DailyRecord
	for d := 1; d <= 20; d++ {
		out = append(out, rec(d, 10, 4, 1, 1, 997, 300, 997))
	}
	return out
}

func TestComputeMetrics_Empty(t *testing.T) {
	m := ComputeMetrics(nil)
	assert.Equal(t, model.MetricsSummary{}, m)
	assert.False(t, math.IsNaN(m.ConversionRate))
	assert.False(t, math.IsNaN(m.CostPerAcquisition))
}

func TestComputeMetrics_Ratios(t *testing.T) {
	records := []model.DailyRecord{
		rec(1, 10, 8, 2, 1, 1000, 400, 2598),
		rec(2, 5, 2, 1, 1, 500, 100, 997),
	}
	m := ComputeMetrics(records)

	assert.Equal(t, 15, m.TotalLeads)
	assert.Equal(t, 10, m.TotalQualified)
	assert.Equal(t, 3, m.TotalClosed)
	assert.Equal(t, 2, m.TotalSigned)
	assert.Equal(t, 1500.0, m.TotalPaid)
	assert.Equal(t, 500.0, m.TotalPaid5d)
	assert.Equal(t, 3595.0, m.TotalContractsValue)
	assert.InDelta(t, 0.3, m.ConversionRate, 1e-9)
	assert.InDelta(t, 750.0, m.CostPerAcquisition, 1e-9)
}

func TestComputeMetrics_ZeroDenominators(t *testing.T) {
	m := ComputeMetrics([]model.DailyRecord{rec(1, 3, 0, 2, 0, 100, 0, 0)})
	assert.Zero(t, m.ConversionRate)
	assert.Zero(t, m.CostPerAcquisition)
}

func TestComputeMetrics_Idempotent(t *testing.T) {
	records := sampleMonth()
	assert.Equal(t, ComputeMetrics(records), ComputeMetrics(records))
}

func TestFilterByWindow(t *testing.T) {
	records := sampleMonth()

	day := FilterByWindow(records, model.WindowDay)
	require.Len(t, day, 1)
	assert.Equal(t, 20, day[0].Day)

	week := FilterByWindow(records, model.WindowWeek)
	require.Len(t, week, 7)
	assert.Equal(t, 14, week[0].Day)
	assert.Equal(t, 20, week[6].Day)

	month := FilterByWindow(records, model.WindowMonth)
	assert.Len(t, month, 20)
}

func TestFilterByWindow_WeekClampsToDayOne(t *testing.T) {
	records := []model.DailyRecord{rec(3, 1, 0, 0, 0, 0, 0, 0), rec(1, 1, 0, 0, 0, 0, 0, 0), rec(2, 1, 0, 0, 0, 0, 0, 0)}

	week := FilterByWindow(records, model.WindowWeek)
	require.Len(t, week, 3)
	// input order, not day order
	assert.Equal(t, []int{3, 1, 2}, []int{week[0].Day, week[1].Day, week[2].Day})
}

func TestFilterByWindow_LatestDayWithData(t *testing.T) {
	// partial import: data stops at day 9, window still ends there
	records := []model.DailyRecord{rec(1, 1, 0, 0, 0, 0, 0, 0), rec(9, 2, 0, 0, 0, 0, 0, 0), rec(9, 3, 0, 0, 0, 0, 0, 0)}

	day := FilterByWindow(records, model.WindowDay)
	require.Len(t, day, 2)
	assert.Equal(t, 5, ComputeMetrics(day).TotalLeads)

	assert.Empty(t, FilterByWindow(nil, model.WindowWeek))
}

func TestFilterByWindow_Monotonic(t *testing.T) {
	records := append(sampleMonth(), rec(27, 40, 10, 3, 2, 5000, 1000, 3000), rec(25, 1, 1, 0, 0, 10, 0, 0))

	d := FilterByWindow(records, model.WindowDay)
	w := FilterByWindow(records, model.WindowWeek)
	m := FilterByWindow(records, model.WindowMonth)

	assert.LessOrEqual(t, len(d), len(w))
	assert.LessOrEqual(t, len(w), len(m))

	md, mw, mm := ComputeMetrics(d), ComputeMetrics(w), ComputeMetrics(m)
	assert.LessOrEqual(t, md.TotalLeads, mw.TotalLeads)
	assert.LessOrEqual(t, mw.TotalLeads, mm.TotalLeads)
	assert.LessOrEqual(t, md.TotalQualified, mw.TotalQualified)
	assert.LessOrEqual(t, mw.TotalQualified, mm.TotalQualified)
	assert.LessOrEqual(t, md.TotalClosed, mw.TotalClosed)
	assert.LessOrEqual(t, mw.TotalClosed, mm.TotalClosed)
	assert.LessOrEqual(t, md.TotalSigned, mw.TotalSigned)
	assert.LessOrEqual(t, mw.TotalSigned, mm.TotalSigned)
	assert.LessOrEqual(t, md.TotalPaid, mw.TotalPaid)
	assert.LessOrEqual(t, mw.TotalPaid, mm.TotalPaid)
	assert.LessOrEqual(t, md.TotalPaid5d, mw.TotalPaid5d)
	assert.LessOrEqual(t, mw.TotalPaid5d, mm.TotalPaid5d)
	assert.LessOrEqual(t, md.TotalContractsValue, mw.TotalContractsValue)
	assert.LessOrEqual(t, mw.TotalContractsValue, mm.TotalContractsValue)
}
