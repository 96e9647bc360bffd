package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/campushub/internal/app/models/dto"
	"github.com/campushub/campushub/internal/app/repositories"
	"github.com/campushub/campushub/internal/app/services"
	"github.com/campushub/campushub/internal/middleware"
)

// AssignmentController handles assignment operations
type AssignmentController struct {
	assignmentService services.AssignmentService
}

// NewAssignmentController creates a new AssignmentController
func NewAssignmentController(assignmentService services.AssignmentService) *AssignmentController {
	return &AssignmentController{assignmentService: assignmentService}
}

// ListAssignments retrieves a page of assignments
// @Summary List assignments
// @Description Retrieves a paginated list of assignments, searchable by title and description and filterable by course
// @Tags assignments
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Param search query string false "Search term"
// @Param sort query string false "Sort field"
// @Param order query string false "Sort order (asc|desc)"
// @Param courseId query string false "Filter by course" Format(uuid)
// @Success 200 {object} dto.APIResponse{data=dto.ListResponse} "Assignments retrieved"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Router /assignments [get]
func (c *AssignmentController) ListAssignments(ctx *gin.Context) {
	base, ok := bindListQuery(ctx)
	if !ok {
		return
	}
	courseID, ok := parseUUIDQuery(ctx, "courseId")
	if !ok {
		return
	}

	params := repositories.AssignmentListParams{ListParams: base, CourseID: courseID}

	assignments, total, err := c.assignmentService.List(ctx, params)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(listEnvelope(assignments, total, base.Page, base.Limit)))
}

// GetAssignment retrieves an assignment by id
// @Summary Get assignment details
// @Tags assignments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Assignment ID" Format(uuid)
// @Success 200 {object} dto.APIResponse{data=models.Assignment} "Assignment retrieved"
// @Failure 400 {object} dto.APIResponse "Invalid id"
// @Failure 404 {object} dto.APIResponse "Assignment not found"
// @Router /assignments/{id} [get]
func (c *AssignmentController) GetAssignment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	assignment, err := c.assignmentService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(assignment))
}

// CreateAssignment adds an assignment
// @Summary Create assignment
// @Tags assignments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAssignmentRequest true "Assignment information"
// @Success 201 {object} dto.APIResponse{data=models.Assignment} "Assignment created"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 404 {object} dto.APIResponse "Course not found"
// @Router /assignments [post]
func (c *AssignmentController) CreateAssignment(ctx *gin.Context) {
	var req dto.CreateAssignmentRequest
	if !bindJSON(ctx, &req) {
		return
	}

	assignment, err := c.assignmentService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(assignment))
}

// UpdateAssignment patches an assignment
// @Summary Update assignment
// @Tags assignments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Assignment ID" Format(uuid)
// @Param request body dto.UpdateAssignmentRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Assignment} "Assignment updated"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 404 {object} dto.APIResponse "Assignment not found"
// @Router /assignments/{id} [put]
func (c *AssignmentController) UpdateAssignment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateAssignmentRequest
	if !bindJSON(ctx, &req) {
		return
	}

	assignment, err := c.assignmentService.Update(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(assignment))
}

// DeleteAssignment removes an assignment
// @Summary Delete assignment
// @Description Deletes an assignment and returns the deleted row; fails while submissions or grades reference it
// @Tags assignments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Assignment ID" Format(uuid)
// @Success 200 {object} dto.APIResponse{data=models.Assignment} "Assignment deleted"
// @Failure 400 {object} dto.APIResponse "Invalid id"
// @Failure 404 {object} dto.APIResponse "Assignment not found"
// @Failure 412 {object} dto.APIResponse "Assignment still referenced by related records"
// @Router /assignments/{id} [delete]
func (c *AssignmentController) DeleteAssignment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	assignment, err := c.assignmentService.Delete(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(assignment))
}
