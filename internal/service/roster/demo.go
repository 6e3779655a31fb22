package roster

import (
	"math"
	"math/rand/v2"

	"salesboard/internal/model"
)

var weekdayLabels = [7]string{"Domingo", "Segunda-Feira", "Terça-Feira", "Quarta-Feira", "Quinta-Feira", "Sexta-Feira", "Sábado"}

// demoProfile shape of one synthetic salesperson
type demoProfile struct {
	id             string
	name           string
	baseLeads      float64
	sqlRate        float64
	conversionRate float64
}

var demoProfiles = []demoProfile{
	{id: "andresa", name: "Andresa", baseLeads: 30, sqlRate: 0.4, conversionRate: 0.25},
	{id: "jennifer", name: "Jennifer", baseLeads: 25, sqlRate: 0.5, conversionRate: 0.35},
	{id: "lohaynni", name: "Lohaynni", baseLeads: 35, sqlRate: 0.3, conversionRate: 0.18},
}

// DemoSalespeople three sellers with 30 synthetic days each, seeded on first load.
func DemoSalespeople(rng *rand.Rand) []model.Salesperson {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	out := make([]model.Salesperson, 0, len(demoProfiles))
	for _, p := range demoProfiles {
		out = append(out, model.Salesperson{
			ID:       p.id,
			Name:     p.name,
			Initial:  model.InitialOf(p.name),
			PhotoURL: model.DefaultPhotoURL(p.id),
			Records:  demoRecords(rng, p),
		})
	}
	return out
}

func demoRecords(rng *rand.Rand, p demoProfile) []model.DailyRecord {
	jitter := func(scale float64) float64 { return (rng.Float64() - 0.5) * scale }

	records := make([]model.DailyRecord, 0, 30)
	for day := 1; day <= 30; day++ {
		leads := int(math.Floor(p.baseLeads + jitter(10)))
		qualified := int(math.Floor(float64(leads) * (p.sqlRate + jitter(0.1))))
		closed := max(0, int(math.Floor(float64(qualified)*(p.conversionRate+jitter(0.1)))))

		paid := float64(closed) * 997 * (0.8 + rng.Float64()*0.2)
		paid5d := paid * (0.3 + rng.Float64()*0.2)

		records = append(records, model.DailyRecord{
			Day:             day,
			DayLabel:        weekdayLabels[day%7],
			NewLeads:        max(0, leads),
			QualifiedLeads:  max(0, qualified),
			ContractsClosed: closed,
			ContractsSigned: closed,
			PaidWithin5Days: math.Round(paid5d),
			Paid:            math.Round(paid),
			ContractsValue:  float64(closed/2)*1299 + float64((closed+1)/2)*997,
		})
	}
	return records
}
