package model

// TimeWindow aggregation window applied before metrics
type TimeWindow string

const (
	WindowDay   TimeWindow = "day"
	WindowWeek  TimeWindow = "week"
	WindowMonth TimeWindow = "month"
)

// ParseTimeWindow maps a query value to a window; anything unknown is Month.
func ParseTimeWindow(s string) TimeWindow {
	switch TimeWindow(s) {
	case WindowDay:
		return WindowDay
	case WindowWeek:
		return WindowWeek
	default:
		return WindowMonth
	}
}

// Label Portuguese label shown in the period filter
func (w TimeWindow) Label() string {
	switch w {
	case WindowDay:
		return "Dia"
	case WindowWeek:
		return "Semana"
	default:
		return "Mês"
	}
}

// MetricsSummary derived totals over a record subset, never persisted
type MetricsSummary struct {
	TotalLeads          int     `json:"totalLeads"`
	TotalQualified      int     `json:"totalQualified"`
	TotalClosed         int     `json:"totalClosed"`
	TotalContractsValue float64 `json:"totalContractsValue"`
	TotalSigned         int     `json:"totalSigned"`
	TotalPaid           float64 `json:"totalPaid"`
	TotalPaid5d         float64 `json:"totalPaid5d"`
	ConversionRate      float64 `json:"conversionRate"`     // closed / qualified
	CostPerAcquisition  float64 `json:"costPerAcquisition"` // paid / signed
}
