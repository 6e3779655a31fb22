package api

import (
	"errors"

	"github.com/gin-gonic/gin"

	"salesboard/internal/service/roster"
)

// ListSalespeople GET /api/salespeople
func (h *Handler) ListSalespeople(c *gin.Context) {
	people, err := h.roster.List()
	if err != nil {
		errorResponse(c, CodeStorage, err.Error())
		return
	}
	success(c, people)
}

// Refresh POST /api/refresh
func (h *Handler) Refresh(c *gin.Context) {
	people, err := h.roster.Refresh()
	if err != nil {
		errorResponse(c, CodeStorage, err.Error())
		return
	}
	h.observe(len(people))
	success(c, people)
}

// CreateSalesperson POST /api/salespeople
func (h *Handler) CreateSalesperson(c *gin.Context) {
	var req roster.Profile
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, CodeBadRequest, "parâmetros inválidos")
		return
	}

	sp, err := h.roster.Add(req)
	if err != nil {
		h.writeRosterError(c, err)
		return
	}
	h.observeRoster()
	success(c, sp)
}

// UpdateSalesperson PATCH /api/salespeople/:id
func (h *Handler) UpdateSalesperson(c *gin.Context) {
	var req roster.Profile
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, CodeBadRequest, "parâmetros inválidos")
		return
	}

	sp, err := h.roster.Update(c.Param("id"), req)
	if err != nil {
		h.writeRosterError(c, err)
		return
	}
	success(c, sp)
}

// DeleteSalesperson DELETE /api/salespeople/:id
func (h *Handler) DeleteSalesperson(c *gin.Context) {
	id := c.Param("id")
	if err := h.roster.Delete(id); err != nil {
		h.writeRosterError(c, err)
		return
	}
	h.observeRoster()
	success(c, gin.H{"deleted": id})
}

// ClearData POST /api/data/clear {"confirm": true}
func (h *Handler) ClearData(c *gin.Context) {
	var req struct {
		Confirm bool `json:"confirm"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, CodeBadRequest, "parâmetros inválidos")
		return
	}

	if err := h.roster.ClearAllRecords(req.Confirm); err != nil {
		h.writeRosterError(c, err)
		return
	}
	success(c, gin.H{"cleared": true})
}

func (h *Handler) observeRoster() {
	if people, err := h.roster.List(); err == nil {
		h.observe(len(people))
	}
}

func (h *Handler) writeRosterError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, roster.ErrNameRequired):
		errorResponse(c, CodeNameRequired, err.Error())
	case errors.Is(err, roster.ErrSalespersonNotFound):
		errorResponse(c, CodeNotFound, err.Error())
	case errors.Is(err, roster.ErrNothingToClear):
		errorResponse(c, CodeNothingToClear, err.Error())
	case errors.Is(err, roster.ErrConfirmationRequired):
		errorResponse(c, CodeConfirmationRequired, err.Error())
	default:
		errorResponse(c, CodeStorage, err.Error())
	}
}
