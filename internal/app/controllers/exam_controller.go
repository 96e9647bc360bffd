package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/campushub/internal/app/models/dto"
	"github.com/campushub/campushub/internal/app/repositories"
	"github.com/campushub/campushub/internal/app/services"
	"github.com/campushub/campushub/internal/middleware"
)

// ExamController handles exam operations
type ExamController struct {
	examService services.ExamService
}

// NewExamController creates a new ExamController
func NewExamController(examService services.ExamService) *ExamController {
	return &ExamController{examService: examService}
}

// ListExams retrieves a page of exams
// @Summary List exams
// @Description Retrieves a paginated list of exams, searchable by exam type and filterable by course
// @Tags exams
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Param search query string false "Search term"
// @Param sort query string false "Sort field"
// @Param order query string false "Sort order (asc|desc)"
// @Param courseId query string false "Filter by course" Format(uuid)
// @Success 200 {object} dto.APIResponse{data=dto.ListResponse} "Exams retrieved"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Router /exams [get]
func (c *ExamController) ListExams(ctx *gin.Context) {
	base, ok := bindListQuery(ctx)
	if !ok {
		return
	}
	courseID, ok := parseUUIDQuery(ctx, "courseId")
	if !ok {
		return
	}

	params := repositories.ExamListParams{ListParams: base, CourseID: courseID}

	exams, total, err := c.examService.List(ctx, params)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(listEnvelope(exams, total, base.Page, base.Limit)))
}

// GetExam retrieves an exam by id
// @Summary Get exam details
// @Tags exams
// @Produce json
// @Security BearerAuth
// @Param id path string true "Exam ID" Format(uuid)
// @Success 200 {object} dto.APIResponse{data=models.Exam} "Exam retrieved"
// @Failure 400 {object} dto.APIResponse "Invalid id"
// @Failure 404 {object} dto.APIResponse "Exam not found"
// @Router /exams/{id} [get]
func (c *ExamController) GetExam(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	exam, err := c.examService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(exam))
}

// CreateExam adds an exam
// @Summary Create exam
// @Tags exams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateExamRequest true "Exam information"
// @Success 201 {object} dto.APIResponse{data=models.Exam} "Exam created"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 404 {object} dto.APIResponse "Course not found"
// @Router /exams [post]
func (c *ExamController) CreateExam(ctx *gin.Context) {
	var req dto.CreateExamRequest
	if !bindJSON(ctx, &req) {
		return
	}

	exam, err := c.examService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(exam))
}

// UpdateExam patches an exam
// @Summary Update exam
// @Tags exams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Exam ID" Format(uuid)
// @Param request body dto.UpdateExamRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Exam} "Exam updated"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 404 {object} dto.APIResponse "Exam not found"
// @Router /exams/{id} [put]
func (c *ExamController) UpdateExam(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateExamRequest
	if !bindJSON(ctx, &req) {
		return
	}

	exam, err := c.examService.Update(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(exam))
}

// DeleteExam removes an exam
// @Summary Delete exam
// @Description Deletes an exam and returns the deleted row; fails while grades reference it
// @Tags exams
// @Produce json
// @Security BearerAuth
// @Param id path string true "Exam ID" Format(uuid)
// @Success 200 {object} dto.APIResponse{data=models.Exam} "Exam deleted"
// @Failure 400 {object} dto.APIResponse "Invalid id"
// @Failure 404 {object} dto.APIResponse "Exam not found"
// @Failure 412 {object} dto.APIResponse "Exam still referenced by grades"
// @Router /exams/{id} [delete]
func (c *ExamController) DeleteExam(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	exam, err := c.examService.Delete(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(exam))
}
