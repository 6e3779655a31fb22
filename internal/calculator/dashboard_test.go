package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salesboard/internal/model"
)

func dashboardPeople() []model.Salesperson {
	return []model.Salesperson{
		{ID: "andresa", Name: "Andresa", Records: []model.DailyRecord{
			{Day: 1, NewLeads: 10, QualifiedLeads: 5, ContractsClosed: 2, Paid: 1000},
			{Day: 2, NewLeads: 12, QualifiedLeads: 6, ContractsClosed: 1, Paid: 500},
		}},
		{ID: "jennifer", Name: "Jennifer", Records: []model.DailyRecord{
			{Day: 2, NewLeads: 8, QualifiedLeads: 4, ContractsClosed: 3, Paid: 9000},
		}},
	}
}

func TestBuildDashboard_All(t *testing.T) {
	d := BuildDashboard(dashboardPeople(), DashboardQuery{Window: model.WindowMonth})

	assert.Equal(t, AllSalespeople, d.Selected)
	assert.Equal(t, "Todas as Vendedoras", d.SelectedName)
	assert.Nil(t, d.Person)
	require.Len(t, d.Ranking, 2)
	assert.Equal(t, "jennifer", d.Ranking[0].ID)

	require.Len(t, d.Trend, 2)
	assert.Equal(t, "Dia 1", d.Trend[0].Label)
	assert.Equal(t, 9500.0, d.Trend[1].Paid)
	assert.Equal(t, 10500.0, d.Metrics.TotalPaid)
	assert.Equal(t, 30, d.Metrics.TotalLeads)
}

func TestBuildDashboard_SinglePersonDayWindow(t *testing.T) {
	d := BuildDashboard(dashboardPeople(), DashboardQuery{Window: model.WindowDay, Salesperson: "andresa"})

	require.NotNil(t, d.Person)
	assert.Equal(t, "Andresa", d.SelectedName)
	assert.Equal(t, 500.0, d.Metrics.TotalPaid)
	assert.Equal(t, d.Person.Metrics, d.Metrics)
	assert.Equal(t, "Dia", d.WindowLabel)
}

func TestBuildDashboard_UnknownPerson(t *testing.T) {
	d := BuildDashboard(dashboardPeople(), DashboardQuery{Window: model.WindowWeek, Salesperson: "ghost"})

	assert.Nil(t, d.Person)
	assert.Equal(t, model.MetricsSummary{}, d.Metrics)
	assert.Empty(t, d.Trend)
}

func TestTicker(t *testing.T) {
	msgs := Ticker(dashboardPeople())
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0], "Jennifer")
	assert.Contains(t, msgs[0], "R$ 9.000")

	assert.Equal(t, []string{tickerWelcome}, Ticker(nil))
}

func TestFormatBRL(t *testing.T) {
	cases := map[float64]string{
		0:          "0",
		997:        "997",
		8500:       "8.500",
		1234567.5:  "1.234.567,5",
		1234.56:    "1.234,56",
		-1500.25:   "-1.500,25",
		-0.001:     "0",
		1000000:    "1.000.000",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatBRL(in), "FormatBRL(%v)", in)
	}
}
