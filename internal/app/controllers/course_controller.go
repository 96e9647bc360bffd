package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/campushub/internal/app/models/dto"
	"github.com/campushub/campushub/internal/app/services"
	"github.com/campushub/campushub/internal/middleware"
)

// CourseController handles course catalog operations
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{courseService: courseService}
}

// ListCourses retrieves a page of courses
// @Summary List courses
// @Description Retrieves a paginated list of courses with resolved teacher names, searchable by name, code and description
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Param search query string false "Search term"
// @Param sort query string false "Sort field (name|code|credits|createdAt)"
// @Param order query string false "Sort order (asc|desc)"
// @Success 200 {object} dto.APIResponse{data=dto.ListResponse} "Courses retrieved"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Router /courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	params, ok := bindListQuery(ctx)
	if !ok {
		return
	}

	courses, total, err := c.courseService.List(ctx, params)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(listEnvelope(courses, total, params.Page, params.Limit)))
}

// GetCourse retrieves a course by id
// @Summary Get course details
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID" Format(uuid)
// @Success 200 {object} dto.APIResponse{data=models.Course} "Course retrieved"
// @Failure 400 {object} dto.APIResponse "Invalid id"
// @Failure 404 {object} dto.APIResponse "Course not found"
// @Router /courses/{id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	course, err := c.courseService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(course))
}

// CreateCourse adds a course
// @Summary Create course
// @Description Creates a course with a globally unique uppercase code
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCourseRequest true "Course information"
// @Success 201 {object} dto.APIResponse{data=models.Course} "Course created"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 404 {object} dto.APIResponse "Teacher not found"
// @Failure 409 {object} dto.APIResponse "Course code already in use"
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if !bindJSON(ctx, &req) {
		return
	}

	course, err := c.courseService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(course))
}

// UpdateCourse patches a course
// @Summary Update course
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID" Format(uuid)
// @Param request body dto.UpdateCourseRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Course} "Course updated"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 404 {object} dto.APIResponse "Course not found"
// @Failure 409 {object} dto.APIResponse "Course code already in use"
// @Router /courses/{id} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateCourseRequest
	if !bindJSON(ctx, &req) {
		return
	}

	course, err := c.courseService.Update(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(course))
}

// DeleteCourse removes a course
// @Summary Delete course
// @Description Deletes a course and returns the deleted row; fails while enrollments, assignments, exams, grades or attendance records exist
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID" Format(uuid)
// @Success 200 {object} dto.APIResponse{data=models.Course} "Course deleted"
// @Failure 400 {object} dto.APIResponse "Invalid id"
// @Failure 404 {object} dto.APIResponse "Course not found"
// @Failure 412 {object} dto.APIResponse "Course still referenced by related records"
// @Router /courses/{id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	course, err := c.courseService.Delete(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(course))
}
