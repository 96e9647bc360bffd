package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/campushub/internal/app/models/dto"
	"github.com/campushub/campushub/internal/app/repositories"
	"github.com/campushub/campushub/internal/app/services"
	"github.com/campushub/campushub/internal/middleware"
)

// GradeController handles grade operations
type GradeController struct {
	gradeService services.GradeService
}

// NewGradeController creates a new GradeController
func NewGradeController(gradeService services.GradeService) *GradeController {
	return &GradeController{gradeService: gradeService}
}

// ListGrades retrieves a page of grades
// @Summary List grades
// @Description Retrieves a paginated list of grades with resolved student and course names, searchable by letter grade and filterable by course or student
// @Tags grades
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Param search query string false "Search term"
// @Param sort query string false "Sort field"
// @Param order query string false "Sort order (asc|desc)"
// @Param courseId query string false "Filter by course" Format(uuid)
// @Param studentId query string false "Filter by student" Format(uuid)
// @Success 200 {object} dto.APIResponse{data=dto.ListResponse} "Grades retrieved"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Router /grades [get]
func (c *GradeController) ListGrades(ctx *gin.Context) {
	base, ok := bindListQuery(ctx)
	if !ok {
		return
	}
	courseID, ok := parseUUIDQuery(ctx, "courseId")
	if !ok {
		return
	}
	studentID, ok := parseUUIDQuery(ctx, "studentId")
	if !ok {
		return
	}

	params := repositories.GradeListParams{
		ListParams: base,
		CourseID:   courseID,
		StudentID:  studentID,
	}

	grades, total, err := c.gradeService.List(ctx, params)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(listEnvelope(grades, total, base.Page, base.Limit)))
}

// GetGrade retrieves a grade by id
// @Summary Get grade details
// @Tags grades
// @Produce json
// @Security BearerAuth
// @Param id path string true "Grade ID" Format(uuid)
// @Success 200 {object} dto.APIResponse{data=models.Grade} "Grade retrieved"
// @Failure 400 {object} dto.APIResponse "Invalid id"
// @Failure 404 {object} dto.APIResponse "Grade not found"
// @Router /grades/{id} [get]
func (c *GradeController) GetGrade(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	grade, err := c.gradeService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(grade))
}

// CreateGrade records a grade
// @Summary Create grade
// @Description Records a grade for a student in a course; the letter grade is derived from the marks
// @Tags grades
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateGradeRequest true "Grade information"
// @Success 201 {object} dto.APIResponse{data=models.Grade} "Grade created"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 404 {object} dto.APIResponse "Course, student, assignment or exam not found"
// @Router /grades [post]
func (c *GradeController) CreateGrade(ctx *gin.Context) {
	var req dto.CreateGradeRequest
	if !bindJSON(ctx, &req) {
		return
	}

	grade, err := c.gradeService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(grade))
}

// UpdateGrade patches a grade
// @Summary Update grade
// @Description Applies a partial patch; new marks re-derive the letter grade
// @Tags grades
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Grade ID" Format(uuid)
// @Param request body dto.UpdateGradeRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Grade} "Grade updated"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 404 {object} dto.APIResponse "Grade not found"
// @Router /grades/{id} [put]
func (c *GradeController) UpdateGrade(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateGradeRequest
	if !bindJSON(ctx, &req) {
		return
	}

	grade, err := c.gradeService.Update(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(grade))
}

// DeleteGrade removes a grade
// @Summary Delete grade
// @Tags grades
// @Produce json
// @Security BearerAuth
// @Param id path string true "Grade ID" Format(uuid)
// @Success 200 {object} dto.APIResponse{data=models.Grade} "Grade deleted"
// @Failure 400 {object} dto.APIResponse "Invalid id"
// @Failure 404 {object} dto.APIResponse "Grade not found"
// @Router /grades/{id} [delete]
func (c *GradeController) DeleteGrade(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	grade, err := c.gradeService.Delete(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(grade))
}
