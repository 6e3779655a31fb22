package api

import (
	"time"

	"github.com/gin-gonic/gin"
)

// StatusResponse system status
type StatusResponse struct {
	Initialized      bool      `json:"initialized"`      // at least one salesperson has records
	TotalSalespeople int       `json:"totalSalespeople"`
	WithData         int       `json:"withData"`
	StartedAt        time.Time `json:"startedAt"`
}

// GetStatus GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	resp := StatusResponse{StartedAt: h.startedAt}

	people, err := h.roster.List()
	if err != nil {
		success(c, resp)
		return
	}

	resp.TotalSalespeople = len(people)
	for _, sp := range people {
		if sp.HasRecords() {
			resp.WithData++
		}
	}
	resp.Initialized = resp.WithData > 0
	success(c, resp)
}
