package api

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"salesboard/internal/calculator"
	"salesboard/internal/model"
	"salesboard/internal/summary"
)

// GetDashboard GET /api/dashboard?window=day|week|month&salesperson=all|<id>
func (h *Handler) GetDashboard(c *gin.Context) {
	people, err := h.roster.List()
	if err != nil {
		errorResponse(c, CodeStorage, err.Error())
		return
	}

	d := calculator.BuildDashboard(people, calculator.DashboardQuery{
		Window:      model.ParseTimeWindow(c.Query("window")),
		Salesperson: c.DefaultQuery("salesperson", calculator.AllSalespeople),
		Merge:       h.merge,
	})
	success(c, d)
}

// Summary POST /api/salespeople/:id/summary?window=
// Always succeeds with text; generation failures come back as the fallback.
func (h *Handler) Summary(c *gin.Context) {
	sp, err := h.roster.Get(c.Param("id"))
	if err != nil {
		h.writeRosterError(c, err)
		return
	}

	window := model.ParseTimeWindow(c.Query("window"))
	metrics := calculator.ComputeMetrics(calculator.FilterByWindow(sp.Records, window))
	text := h.summaries.Summary(c.Request.Context(), sp, metrics)
	html, err := summary.RenderHTML(text)
	if err != nil {
		log.Warn().Err(err).Msg("failed to render summary markdown")
		html = ""
	}

	success(c, gin.H{
		"salespersonId": sp.ID,
		"window":        window,
		"metrics":       metrics,
		"summary":       text,
		"summaryHtml":   html,
	})
}
