package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/campushub/internal/app/models/dto"
	"github.com/campushub/campushub/internal/app/repositories"
	"github.com/campushub/campushub/internal/app/services"
	"github.com/campushub/campushub/internal/middleware"
)

// SubmissionController handles submission operations
type SubmissionController struct {
	submissionService services.SubmissionService
}

// NewSubmissionController creates a new SubmissionController
func NewSubmissionController(submissionService services.SubmissionService) *SubmissionController {
	return &SubmissionController{submissionService: submissionService}
}

// ListSubmissions retrieves a page of submissions
// @Summary List submissions
// @Description Retrieves a paginated list of submissions, searchable by status and filterable by assignment or student
// @Tags submissions
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Param search query string false "Search term"
// @Param sort query string false "Sort field"
// @Param order query string false "Sort order (asc|desc)"
// @Param assignmentId query string false "Filter by assignment" Format(uuid)
// @Param studentId query string false "Filter by student" Format(uuid)
// @Success 200 {object} dto.APIResponse{data=dto.ListResponse} "Submissions retrieved"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Router /submissions [get]
func (c *SubmissionController) ListSubmissions(ctx *gin.Context) {
	base, ok := bindListQuery(ctx)
	if !ok {
		return
	}
	assignmentID, ok := parseUUIDQuery(ctx, "assignmentId")
	if !ok {
		return
	}
	studentID, ok := parseUUIDQuery(ctx, "studentId")
	if !ok {
		return
	}

	params := repositories.SubmissionListParams{
		ListParams:   base,
		AssignmentID: assignmentID,
		StudentID:    studentID,
	}

	submissions, total, err := c.submissionService.List(ctx, params)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(listEnvelope(submissions, total, base.Page, base.Limit)))
}

// GetSubmission retrieves a submission by id
// @Summary Get submission details
// @Tags submissions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Submission ID" Format(uuid)
// @Success 200 {object} dto.APIResponse{data=models.Submission} "Submission retrieved"
// @Failure 400 {object} dto.APIResponse "Invalid id"
// @Failure 404 {object} dto.APIResponse "Submission not found"
// @Router /submissions/{id} [get]
func (c *SubmissionController) GetSubmission(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	submission, err := c.submissionService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(submission))
}

// CreateSubmission records a submission
// @Summary Create submission
// @Tags submissions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateSubmissionRequest true "Submission information"
// @Success 201 {object} dto.APIResponse{data=models.Submission} "Submission created"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 404 {object} dto.APIResponse "Assignment or student not found"
// @Router /submissions [post]
func (c *SubmissionController) CreateSubmission(ctx *gin.Context) {
	var req dto.CreateSubmissionRequest
	if !bindJSON(ctx, &req) {
		return
	}

	submission, err := c.submissionService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(submission))
}

// UpdateSubmission patches a submission
// @Summary Update submission
// @Tags submissions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Submission ID" Format(uuid)
// @Param request body dto.UpdateSubmissionRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Submission} "Submission updated"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 404 {object} dto.APIResponse "Submission not found"
// @Router /submissions/{id} [put]
func (c *SubmissionController) UpdateSubmission(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateSubmissionRequest
	if !bindJSON(ctx, &req) {
		return
	}

	submission, err := c.submissionService.Update(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(submission))
}

// DeleteSubmission removes a submission
// @Summary Delete submission
// @Tags submissions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Submission ID" Format(uuid)
// @Success 200 {object} dto.APIResponse{data=models.Submission} "Submission deleted"
// @Failure 400 {object} dto.APIResponse "Invalid id"
// @Failure 404 {object} dto.APIResponse "Submission not found"
// @Router /submissions/{id} [delete]
func (c *SubmissionController) DeleteSubmission(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	submission, err := c.submissionService.Delete(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(submission))
}
