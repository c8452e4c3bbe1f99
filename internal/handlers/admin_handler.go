package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rishi-1234-cpu/ExamPortalApi/internal/services"
	"github.com/rishi-1234-cpu/ExamPortalApi/internal/utils"
)

type AdminHandler struct {
	BaseHandler
	resultService services.ResultService
	exportService services.ExportService
}

func NewAdminHandler(
	resultService services.ResultService,
	exportService services.ExportService,
	logger utils.Logger,
) *AdminHandler {
	return &AdminHandler{
		BaseHandler:   NewBaseHandler(logger),
		resultService: resultService,
		exportService: exportService,
	}
}

// ListAttempts returns all recorded attempts for an exam, newest first
// @Summary List exam attempts
// @Description Lists all recorded results for an exam code, ordered by submission time descending
// @Tags admin
// @Produce json
// @Param code path string true "Exam code"
// @Param key query string true "Operator key"
// @Success 200 {array} models.Result
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/admin/exams/{code}/attempts [get]
func (h *AdminHandler) ListAttempts(c *gin.Context) {
	code := h.parseCodeParam(c)
	if code == "" {
		return
	}

	results, err := h.resultService.ListByExamCode(c.Request.Context(), code, c.Query("key"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, results)
}

// ExportAttempts downloads all recorded attempts for an exam as a spreadsheet
// @Summary Export exam attempts
// @Description Renders all recorded results for an exam code as an XLSX workbook
// @Tags admin
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param code path string true "Exam code"
// @Param key query string true "Operator key"
// @Success 200 {file} binary
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/admin/exams/{code}/attempts/export [get]
func (h *AdminHandler) ExportAttempts(c *gin.Context) {
	code := h.parseCodeParam(c)
	if code == "" {
		return
	}

	workbook, err := h.exportService.ExportAttempts(c.Request.Context(), code, c.Query("key"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("attempts-%s.xlsx", code)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", workbook)
}
