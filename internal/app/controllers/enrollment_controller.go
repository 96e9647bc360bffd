package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/campushub/internal/app/models/dto"
	"github.com/campushub/campushub/internal/app/repositories"
	"github.com/campushub/campushub/internal/app/services"
	"github.com/campushub/campushub/internal/middleware"
)

// EnrollmentController handles enrollment operations
type EnrollmentController struct {
	enrollmentService services.EnrollmentService
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(enrollmentService services.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{enrollmentService: enrollmentService}
}

// ListEnrollments retrieves a page of enrollments
// @Summary List enrollments
// @Description Retrieves a paginated list of enrollments with resolved student and course names, searchable by semester and filterable by student or course
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Param search query string false "Search term"
// @Param sort query string false "Sort field"
// @Param order query string false "Sort order (asc|desc)"
// @Param studentId query string false "Filter by student" Format(uuid)
// @Param courseId query string false "Filter by course" Format(uuid)
// @Success 200 {object} dto.APIResponse{data=dto.ListResponse} "Enrollments retrieved"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Router /enrollments [get]
func (c *EnrollmentController) ListEnrollments(ctx *gin.Context) {
	base, ok := bindListQuery(ctx)
	if !ok {
		return
	}
	studentID, ok := parseUUIDQuery(ctx, "studentId")
	if !ok {
		return
	}
	courseID, ok := parseUUIDQuery(ctx, "courseId")
	if !ok {
		return
	}

	params := repositories.EnrollmentListParams{
		ListParams: base,
		StudentID:  studentID,
		CourseID:   courseID,
	}

	enrollments, total, err := c.enrollmentService.List(ctx, params)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(listEnvelope(enrollments, total, base.Page, base.Limit)))
}

// GetEnrollment retrieves an enrollment by id
// @Summary Get enrollment details
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Enrollment ID" Format(uuid)
// @Success 200 {object} dto.APIResponse{data=models.Enrollment} "Enrollment retrieved"
// @Failure 400 {object} dto.APIResponse "Invalid id"
// @Failure 404 {object} dto.APIResponse "Enrollment not found"
// @Router /enrollments/{id} [get]
func (c *EnrollmentController) GetEnrollment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	enrollment, err := c.enrollmentService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(enrollment))
}

// CreateEnrollment enrolls a student in a course
// @Summary Create enrollment
// @Description Enrolls a student in a course for a semester; a student may hold only one enrollment per course and semester
// @Tags enrollments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateEnrollmentRequest true "Enrollment information"
// @Success 201 {object} dto.APIResponse{data=models.Enrollment} "Enrollment created"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 404 {object} dto.APIResponse "Student or course not found"
// @Failure 409 {object} dto.APIResponse "Student already enrolled"
// @Router /enrollments [post]
func (c *EnrollmentController) CreateEnrollment(ctx *gin.Context) {
	var req dto.CreateEnrollmentRequest
	if !bindJSON(ctx, &req) {
		return
	}

	enrollment, err := c.enrollmentService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(enrollment))
}

// UpdateEnrollment patches an enrollment
// @Summary Update enrollment
// @Tags enrollments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Enrollment ID" Format(uuid)
// @Param request body dto.UpdateEnrollmentRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Enrollment} "Enrollment updated"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 404 {object} dto.APIResponse "Enrollment not found"
// @Failure 409 {object} dto.APIResponse "Student already enrolled"
// @Router /enrollments/{id} [put]
func (c *EnrollmentController) UpdateEnrollment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateEnrollmentRequest
	if !bindJSON(ctx, &req) {
		return
	}

	enrollment, err := c.enrollmentService.Update(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(enrollment))
}

// DeleteEnrollment removes an enrollment
// @Summary Delete enrollment
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Enrollment ID" Format(uuid)
// @Success 200 {object} dto.APIResponse{data=models.Enrollment} "Enrollment deleted"
// @Failure 400 {object} dto.APIResponse "Invalid id"
// @Failure 404 {object} dto.APIResponse "Enrollment not found"
// @Router /enrollments/{id} [delete]
func (c *EnrollmentController) DeleteEnrollment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	enrollment, err := c.enrollmentService.Delete(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(enrollment))
}
