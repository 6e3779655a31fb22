package api

import (
	"github.com/gin-gonic/gin"
)

// Login POST /api/login
func (h *Handler) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, CodeBadRequest, "parâmetros inválidos")
		return
	}

	s, err := h.gate.Login(req.Username, req.Password)
	if err != nil {
		errorResponse(c, CodeUnauthorized, err.Error())
		return
	}
	success(c, s)
}

// Logout POST /api/logout
func (h *Handler) Logout(c *gin.Context) {
	h.gate.Logout(sessionToken(c))
	success(c, gin.H{"loggedOut": true})
}

// UnlockSettings POST /api/settings/unlock
func (h *Handler) UnlockSettings(c *gin.Context) {
	var req struct {
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, CodeBadRequest, "parâmetros inválidos")
		return
	}

	s, err := h.gate.UnlockSettings(sessionToken(c), req.Password)
	if err != nil {
		errorResponse(c, CodeSettingsLocked, err.Error())
		return
	}
	success(c, s)
}
