package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rishi-1234-cpu/ExamPortalApi/internal/models"
	"github.com/rishi-1234-cpu/ExamPortalApi/internal/services"
	"github.com/rishi-1234-cpu/ExamPortalApi/internal/utils"
)

type ExamHandler struct {
	BaseHandler
	examService   services.ExamService
	evaluation    services.EvaluationService
	resultService services.ResultService
	validator     *utils.Validator
}

func NewExamHandler(
	examService services.ExamService,
	evaluation services.EvaluationService,
	resultService services.ResultService,
	validator *utils.Validator,
	logger utils.Logger,
) *ExamHandler {
	return &ExamHandler{
		BaseHandler:   NewBaseHandler(logger),
		examService:   examService,
		evaluation:    evaluation,
		resultService: resultService,
		validator:     validator,
	}
}

// GetExam serves an exam's full content by code
// @Summary Get exam
// @Description Retrieves an exam by its code (case-insensitive) with the full question set
// @Tags exams
// @Produce json
// @Param code path string true "Exam code"
// @Success 200 {object} models.Exam
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/exams/{code} [get]
func (h *ExamHandler) GetExam(c *gin.Context) {
	code := h.parseCodeParam(c)
	if code == "" {
		return
	}

	exam, err := h.examService.GetByCode(c.Request.Context(), code)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, exam)
}

// SubmitExam scores a submission and records the result
// @Summary Submit exam answers
// @Description Scores the submitted answers against the exam's answer key and stores the result
// @Tags exams
// @Accept json
// @Produce json
// @Param code path string true "Exam code"
// @Param submission body models.Submission true "Submission data"
// @Success 200 {object} models.Result
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/exams/{code}/submit [post]
func (h *ExamHandler) SubmitExam(c *gin.Context) {
	code := h.parseCodeParam(c)
	if code == "" {
		return
	}

	var submission models.Submission
	if err := c.ShouldBindJSON(&submission); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	if err := h.validator.Validate(&submission); err != nil {
		h.handleServiceError(c, err)
		return
	}

	exam, err := h.examService.GetByCode(c.Request.Context(), code)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	result := h.evaluation.Evaluate(exam, &submission)

	if err := h.resultService.Record(c.Request.Context(), result); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
