package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"salesboard/internal/auth"
	"salesboard/internal/calculator"
	"salesboard/internal/exporter"
	"salesboard/internal/importer"
	"salesboard/internal/service/roster"
	"salesboard/internal/store"
	"salesboard/internal/summary"
)

// ImportLogLister lists recent import attempts. *store.Store satisfies it.
type ImportLogLister interface {
	ListImportLogs(limit int) ([]*store.ImportLog, error)
}

// RosterObserver is told the roster size after every change.
type RosterObserver func(count int)

// Handler API handlers
type Handler struct {
	roster    *roster.Service
	importer  *importer.Coordinator
	exporter  *exporter.Exporter
	gate      *auth.Gate
	summaries *summary.Service
	logs      ImportLogLister
	merge     calculator.MergePolicy
	observe   RosterObserver
	startedAt time.Time
}

// Deps collaborators of the handler; Logs and Observe may be nil.
type Deps struct {
	Roster    *roster.Service
	Importer  *importer.Coordinator
	Gate      *auth.Gate
	Summaries *summary.Service
	Logs      ImportLogLister
	Merge     calculator.MergePolicy
	Observe   RosterObserver
}

func NewHandler(d Deps) *Handler {
	observe := d.Observe
	if observe == nil {
		observe = func(int) {}
	}
	return &Handler{
		roster:    d.Roster,
		importer:  d.Importer,
		exporter:  exporter.NewExporter(),
		gate:      d.Gate,
		summaries: d.Summaries,
		logs:      d.Logs,
		merge:     d.Merge,
		observe:   observe,
		startedAt: time.Now(),
	}
}

// RegisterRoutes registers the API under router
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/status", h.GetStatus)
	router.POST("/login", h.Login)

	session := router.Group("", h.RequireSession)
	{
		session.POST("/logout", h.Logout)
		session.POST("/settings/unlock", h.UnlockSettings)

		session.GET("/dashboard", h.GetDashboard)
		session.GET("/salespeople", h.ListSalespeople)
		session.POST("/refresh", h.Refresh)
		session.POST("/salespeople/:id/summary", h.Summary)
		session.GET("/export", h.Export)
	}

	settings := router.Group("", h.RequireSession, h.RequireSettings)
	{
		settings.POST("/salespeople", h.CreateSalesperson)
		settings.PATCH("/salespeople/:id", h.UpdateSalesperson)
		settings.DELETE("/salespeople/:id", h.DeleteSalesperson)
		settings.POST("/salespeople/:id/import", h.Import)
		settings.POST("/data/clear", h.ClearData)
		settings.GET("/imports", h.ListImports)
	}
}

// Response common envelope
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Response codes
const (
	CodeOK                   = 0
	CodeBadRequest           = 1001
	CodeNameRequired         = 1002
	CodeImportFailed         = 2001
	CodeNothingToClear       = 2002
	CodeConfirmationRequired = 2003
	CodeUnauthorized         = 4001
	CodeSettingsLocked       = 4003
	CodeNotFound             = 4004
	CodeStorage              = 5001
)

func success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    CodeOK,
		Message: "success",
		Data:    data,
	})
}

func errorResponse(c *gin.Context, code int, message string) {
	c.JSON(http.StatusOK, Response{
		Code:    code,
		Message: message,
	})
}

func abortResponse(c *gin.Context, status, code int, message string) {
	c.AbortWithStatusJSON(status, Response{
		Code:    code,
		Message: message,
	})
}

const sessionKey = "session"

// sessionToken reads "Authorization: Bearer <token>" or X-Session-Token
func sessionToken(c *gin.Context) string {
	if v := c.GetHeader("Authorization"); strings.HasPrefix(v, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(v, "Bearer "))
	}
	return c.GetHeader("X-Session-Token")
}

// RequireSession rejects requests without a live login session.
func (h *Handler) RequireSession(c *gin.Context) {
	s, ok := h.gate.Session(sessionToken(c))
	if !ok {
		abortResponse(c, http.StatusUnauthorized, CodeUnauthorized, "faça login para continuar")
		return
	}
	c.Set(sessionKey, s)
	c.Next()
}

// RequireSettings rejects sessions that have not unlocked the settings area.
func (h *Handler) RequireSettings(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok || !s.SettingsUnlocked {
		abortResponse(c, http.StatusForbidden, CodeSettingsLocked, "insira a senha para acessar as configurações")
		return
	}
	c.Next()
}

func currentSession(c *gin.Context) (auth.Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return auth.Session{}, false
	}
	s, ok := v.(auth.Session)
	return s, ok
}
