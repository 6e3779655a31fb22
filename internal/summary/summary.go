package summary

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"salesboard/internal/model"
)

// Fallback text shown whenever generation fails
const Fallback = "Ocorreu um erro ao gerar o resumo de IA. Tente novamente mais tarde."

// Summarizer turns a salesperson's metrics into free-form prose.
type Summarizer interface {
	Summarize(ctx context.Context, person model.Salesperson, m model.MetricsSummary) (string, error)
}

// Observer receives the outcome of each request ("ok" or "error").
type Observer func(outcome string)

// Service wraps a Summarizer so callers never see an error.
type Service struct {
	summarizer Summarizer
	observe    Observer
}

func NewService(s Summarizer, observe Observer) *Service {
	if observe == nil {
		observe = func(string) {}
	}
	return &Service{summarizer: s, observe: observe}
}

// Summary returns the generated text, or Fallback when no summarizer is configured,
// it fails or it returns nothing.
func (s *Service) Summary(ctx context.Context, person model.Salesperson, m model.MetricsSummary) string {
	if s.summarizer == nil {
		s.observe("error")
		log.Warn().Str("salesperson", person.ID).Msg("summary requested with no summarizer configured")
		return Fallback
	}

	text, err := s.summarizer.Summarize(ctx, person, m)
	if err != nil {
		s.observe("error")
		log.Error().Err(err).Str("salesperson", person.ID).Msg("summary generation failed")
		return Fallback
	}
	text = CleanMarkdown(text)
	if text == "" {
		s.observe("error")
		log.Warn().Str("salesperson", person.ID).Msg("summary generation returned empty text")
		return Fallback
	}

	s.observe("ok")
	return text
}

// BuildPrompt name plus the seven metric values the model is asked to assess
func BuildPrompt(name string, m model.MetricsSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Analyze the following sales data for a salesperson named %s and provide a concise performance summary in Portuguese.\n", name)
	b.WriteString("The summary should be easy to read, using markdown for formatting (bolding, lists).\n")
	b.WriteString("Highlight their strengths, potential weaknesses, and suggest one key area for improvement.\n\n")
	b.WriteString("Key Metrics:\n")
	fmt.Fprintf(&b, "- Total New Leads: %d\n", m.TotalLeads)
	fmt.Fprintf(&b, "- Sales Qualified Leads (SQL): %d\n", m.TotalQualified)
	fmt.Fprintf(&b, "- Total Contracts Closed: %d\n", m.TotalClosed)
	fmt.Fprintf(&b, "- Total Contract Value: R$ %.2f\n", m.TotalContractsValue)
	fmt.Fprintf(&b, "- Total Paid Value: R$ %.2f\n", m.TotalPaid)
	fmt.Fprintf(&b, "- Conversion Rate (SQL to Closed): %.2f%%\n", m.ConversionRate*100)
	fmt.Fprintf(&b, "- CPA (Cost per Acquisition - Leads / Signed Contracts): R$ %.2f\n\n", m.CostPerAcquisition)
	b.WriteString("Daily data is available but focus on the overall summary. Be encouraging but direct.\n")
	return b.String()
}
