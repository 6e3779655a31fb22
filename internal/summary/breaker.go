package summary

import (
	"context"
	"time"

	cb "github.com/sony/gobreaker"

	"salesboard/internal/model"
)

// BreakerSummarizer stops calling the upstream after repeated failures.
type BreakerSummarizer struct {
	next Summarizer
	cb   *cb.CircuitBreaker
}

var _ Summarizer = (*BreakerSummarizer)(nil)

// NewBreakerSummarizer trips after three consecutive failures and probes again after cooldown.
func NewBreakerSummarizer(next Summarizer, cooldown time.Duration) *BreakerSummarizer {
	st := cb.Settings{Name: "summary"}
	st.Interval = 60 * time.Second
	st.Timeout = cooldown
	st.ReadyToTrip = func(counts cb.Counts) bool {
		return counts.ConsecutiveFailures >= 3
	}
	return &BreakerSummarizer{next: next, cb: cb.NewCircuitBreaker(st)}
}

func (b *BreakerSummarizer) Summarize(ctx context.Context, person model.Salesperson, m model.MetricsSummary) (string, error) {
	out, err := b.cb.Execute(func() (interface{}, error) {
		return b.next.Summarize(ctx, person, m)
	})
	if err != nil {
		return "", err
	}
	return out.(string), nil
}

// State current breaker state, for status reporting
func (b *BreakerSummarizer) State() string {
	return b.cb.State().String()
}
