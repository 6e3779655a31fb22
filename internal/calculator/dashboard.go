package calculator

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"salesboard/internal/model"
)

// AllSalespeople selector value for the merged view
const AllSalespeople = "all"

// Ticker thresholds over the full (unwindowed) dataset
const (
	tickerPaidThreshold   = 8000
	tickerClosedThreshold = 40
	tickerWelcome         = "Bem-vindo ao painel de performance. Acompanhe os resultados em tempo real."
)

// TrendPoint one point of the daily evolution chart
type TrendPoint struct {
	Label          string  `json:"label"`
	NewLeads       int     `json:"newLeads"`
	QualifiedLeads int     `json:"qualifiedLeads"`
	Paid           float64 `json:"paid"`
}

// DashboardQuery view selection
type DashboardQuery struct {
	Window      model.TimeWindow
	Salesperson string // AllSalespeople or an id
	Merge       MergePolicy
}

// Dashboard everything the main view renders for one selection
type Dashboard struct {
	Window       model.TimeWindow     `json:"window"`
	WindowLabel  string               `json:"windowLabel"`
	Selected     string               `json:"selected"`
	SelectedName string               `json:"selectedName"`
	Podium       []Ranked             `json:"podium"`
	Ranking      []Ranked             `json:"ranking"`
	Metrics      model.MetricsSummary `json:"metrics"`
	Trend        []TrendPoint         `json:"trend"`
	Person       *Ranked              `json:"person,omitempty"` // set when a single salesperson is selected
	Ticker       []string             `json:"ticker"`
}

// BuildDashboard windows every salesperson, ranks them and projects the selected view.
// An unknown salesperson id yields empty metrics, as an empty selection would.
func BuildDashboard(people []model.Salesperson, q DashboardQuery) *Dashboard {
	if q.Salesperson == "" {
		q.Salesperson = AllSalespeople
	}

	windowed := WindowAll(people, q.Window)
	ranked := Rank(windowed)

	d := &Dashboard{
		Window:      q.Window,
		WindowLabel: q.Window.Label(),
		Selected:    q.Salesperson,
		Podium:      Podium(ranked),
		Ranking:     ranked,
		Ticker:      Ticker(people),
	}

	var records []model.DailyRecord
	if q.Salesperson == AllSalespeople {
		d.SelectedName = "Todas as Vendedoras"
		records = MergePeople(windowed, q.Merge)
	} else {
		for i := range ranked {
			if ranked[i].ID == q.Salesperson {
				person := ranked[i]
				d.Person = &person
				d.SelectedName = person.Name
				records = person.Records
				break
			}
		}
	}

	d.Metrics = ComputeMetrics(records)
	d.Trend = Trend(records)
	return d
}

// Trend chart points in record order
func Trend(records []model.DailyRecord) []TrendPoint {
	points := make([]TrendPoint, 0, len(records))
	for _, r := range records {
		points = append(points, TrendPoint{
			Label:          fmt.Sprintf("Dia %d", r.Day),
			NewLeads:       r.NewLeads,
			QualifiedLeads: r.QualifiedLeads,
			Paid:           r.Paid,
		})
	}
	return points
}

// Ticker congratulation messages for the announcement banner.
func Ticker(people []model.Salesperson) []string {
	var messages []string
	for _, sp := range people {
		total := ComputeMetrics(sp.Records)
		if total.TotalPaid > tickerPaidThreshold {
			messages = append(messages, fmt.Sprintf("🎉 Parabéns, %s, por alcançar R$ %s em pagamentos!", sp.Name, FormatBRL(total.TotalPaid)))
		}
		if total.TotalClosed > tickerClosedThreshold {
			messages = append(messages, fmt.Sprintf("🚀 Incrível! %s já fechou %d contratos!", sp.Name, total.TotalClosed))
		}
	}
	if len(messages) == 0 {
		messages = append(messages, tickerWelcome)
	}
	return messages
}

// FormatBRL pt-BR number formatting: dot thousands, comma decimals, at most two decimals.
func FormatBRL(v float64) string {
	v = math.Round(v*100) / 100
	neg := v < 0
	v = math.Abs(v)

	intPart := int64(v)
	frac := int64(math.Round((v - float64(intPart)) * 100))

	digits := strconv.FormatInt(intPart, 10)
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, c := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(c)
	}
	if frac > 0 {
		s := fmt.Sprintf("%02d", frac)
		s = strings.TrimRight(s, "0")
		b.WriteByte(',')
		b.WriteString(s)
	}
	return b.String()
}
