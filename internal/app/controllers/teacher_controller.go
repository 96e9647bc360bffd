package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/campushub/internal/app/models/dto"
	"github.com/campushub/campushub/internal/app/services"
	"github.com/campushub/campushub/internal/middleware"
)

// TeacherController handles teacher profile operations
type TeacherController struct {
	teacherService services.TeacherService
}

// NewTeacherController creates a new TeacherController
func NewTeacherController(teacherService services.TeacherService) *TeacherController {
	return &TeacherController{teacherService: teacherService}
}

// ListTeachers retrieves a page of teachers
// @Summary List teachers
// @Description Retrieves a paginated list of teachers, searchable by name, email, department and designation
// @Tags teachers
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Param search query string false "Search term"
// @Param sort query string false "Sort field"
// @Param order query string false "Sort order (asc|desc)"
// @Success 200 {object} dto.APIResponse{data=dto.ListResponse} "Teachers retrieved"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Router /teachers [get]
func (c *TeacherController) ListTeachers(ctx *gin.Context) {
	params, ok := bindListQuery(ctx)
	if !ok {
		return
	}

	teachers, total, err := c.teacherService.List(ctx, params)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(listEnvelope(teachers, total, params.Page, params.Limit)))
}

// GetTeacher retrieves a teacher by id
// @Summary Get teacher details
// @Tags teachers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Teacher ID" Format(uuid)
// @Success 200 {object} dto.APIResponse{data=models.Teacher} "Teacher retrieved"
// @Failure 400 {object} dto.APIResponse "Invalid id"
// @Failure 404 {object} dto.APIResponse "Teacher not found"
// @Router /teachers/{id} [get]
func (c *TeacherController) GetTeacher(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	teacher, err := c.teacherService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(teacher))
}

// CreateTeacher adds a teacher profile
// @Summary Create teacher
// @Tags teachers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateTeacherRequest true "Teacher information"
// @Success 201 {object} dto.APIResponse{data=models.Teacher} "Teacher created"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 404 {object} dto.APIResponse "Linked account not found"
// @Failure 409 {object} dto.APIResponse "Email already in use"
// @Router /teachers [post]
func (c *TeacherController) CreateTeacher(ctx *gin.Context) {
	var req dto.CreateTeacherRequest
	if !bindJSON(ctx, &req) {
		return
	}

	teacher, err := c.teacherService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(teacher))
}

// UpdateTeacher patches a teacher profile
// @Summary Update teacher
// @Tags teachers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Teacher ID" Format(uuid)
// @Param request body dto.UpdateTeacherRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Teacher} "Teacher updated"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 404 {object} dto.APIResponse "Teacher not found"
// @Failure 409 {object} dto.APIResponse "Email already in use"
// @Router /teachers/{id} [put]
func (c *TeacherController) UpdateTeacher(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateTeacherRequest
	if !bindJSON(ctx, &req) {
		return
	}

	teacher, err := c.teacherService.Update(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(teacher))
}

// DeleteTeacher removes a teacher profile
// @Summary Delete teacher
// @Description Deletes a teacher and returns the deleted row; fails while courses are still assigned
// @Tags teachers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Teacher ID" Format(uuid)
// @Success 200 {object} dto.APIResponse{data=models.Teacher} "Teacher deleted"
// @Failure 400 {object} dto.APIResponse "Invalid id"
// @Failure 404 {object} dto.APIResponse "Teacher not found"
// @Failure 412 {object} dto.APIResponse "Teacher still referenced by courses"
// @Router /teachers/{id} [delete]
func (c *TeacherController) DeleteTeacher(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	teacher, err := c.teacherService.Delete(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(teacher))
}
