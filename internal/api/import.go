package api

import (
	"errors"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"salesboard/internal/importer"
	"salesboard/internal/service/roster"
)

// Import POST /api/salespeople/:id/import, multipart field "file"
func (h *Handler) Import(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		errorResponse(c, CodeBadRequest, "nenhum arquivo enviado")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		errorResponse(c, CodeImportFailed, "não foi possível abrir o arquivo enviado")
		return
	}
	defer f.Close()

	report, err := h.importer.Import(importer.ImportOptions{
		SalespersonID: c.Param("id"),
		Filename:      filepath.Base(fileHeader.Filename),
		Reader:        f,
	})
	if err != nil {
		if errors.Is(err, roster.ErrSalespersonNotFound) {
			errorResponse(c, CodeNotFound, err.Error())
			return
		}
		errorResponse(c, CodeImportFailed, err.Error())
		return
	}
	success(c, report)
}

// ListImports GET /api/imports?limit=
func (h *Handler) ListImports(c *gin.Context) {
	if h.logs == nil {
		success(c, []any{})
		return
	}

	var q struct {
		Limit int `form:"limit"`
	}
	if err := c.ShouldBindQuery(&q); err != nil {
		errorResponse(c, CodeBadRequest, "parâmetros inválidos")
		return
	}

	logs, err := h.logs.ListImportLogs(q.Limit)
	if err != nil {
		errorResponse(c, CodeStorage, err.Error())
		return
	}
	success(c, logs)
}
