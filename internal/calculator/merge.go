package calculator

import (
	"sort"

	"salesboard/internal/model"
)

// MergePolicy which fields the "all salespeople" series re-aggregates
type MergePolicy int

const (
	// MergePartial sums leads, SQL, paid and closed contracts only. Contract value,
	// signed contracts and paid-within-5-days keep the value the day bucket was
	// created with (zero); the day label comes from the first record seen.
	MergePartial MergePolicy = iota
	// MergeFull also sums contract value, signed contracts and paid-within-5-days.
	MergeFull
)

// MergeByDay collapses several record sequences into one record per distinct day,
// sorted by day ascending.
func MergeByDay(sequences [][]model.DailyRecord, policy MergePolicy) []model.DailyRecord {
	buckets := make(map[int]*model.DailyRecord)
	for _, seq := range sequences {
		for _, rec := range seq {
			b, ok := buckets[rec.Day]
			if !ok {
				b = &model.DailyRecord{Day: rec.Day, DayLabel: rec.DayLabel}
				buckets[rec.Day] = b
			}
			b.NewLeads += rec.NewLeads
			b.QualifiedLeads += rec.QualifiedLeads
			b.Paid += rec.Paid
			b.ContractsClosed += rec.ContractsClosed
			if policy == MergeFull {
				b.ContractsValue += rec.ContractsValue
				b.ContractsSigned += rec.ContractsSigned
				b.PaidWithin5Days += rec.PaidWithin5Days
			}
		}
	}

	out := make([]model.DailyRecord, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day < out[j].Day })
	return out
}

// MergePeople convenience over MergeByDay for salespeople
func MergePeople(people []model.Salesperson, policy MergePolicy) []model.DailyRecord {
	seqs := make([][]model.DailyRecord, 0, len(people))
	for _, sp := range people {
		seqs = append(seqs, sp.Records)
	}
	return MergeByDay(seqs, policy)
}
