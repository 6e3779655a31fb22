package api

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"salesboard/internal/exporter"
	"salesboard/internal/model"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Export GET /api/export?window= downloads the ranking and daily records as xlsx
func (h *Handler) Export(c *gin.Context) {
	people, err := h.roster.List()
	if err != nil {
		errorResponse(c, CodeStorage, err.Error())
		return
	}

	window := model.ParseTimeWindow(c.Query("window"))
	f, err := h.exporter.Export(people, exporter.ExportOptions{Window: window})
	if err != nil {
		errorResponse(c, CodeStorage, err.Error())
		return
	}
	defer f.Close()

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		errorResponse(c, CodeStorage, err.Error())
		return
	}

	filename := fmt.Sprintf("desempenho-%s-%s.xlsx", window, time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
