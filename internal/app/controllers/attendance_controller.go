package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campushub/campushub/internal/app/models/dto"
	"github.com/campushub/campushub/internal/app/repositories"
	"github.com/campushub/campushub/internal/app/services"
	"github.com/campushub/campushub/internal/middleware"
)

// AttendanceController handles attendance operations
type AttendanceController struct {
	attendanceService services.AttendanceService
}

// NewAttendanceController creates a new AttendanceController
func NewAttendanceController(attendanceService services.AttendanceService) *AttendanceController {
	return &AttendanceController{attendanceService: attendanceService}
}

// ListAttendances retrieves a page of attendance records
// @Summary List attendance records
// @Description Retrieves a paginated list of attendance records, searchable by status and filterable by course, student and date
// @Tags attendances
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Param search query string false "Search term"
// @Param sort query string false "Sort field"
// @Param order query string false "Sort order (asc|desc)"
// @Param courseId query string false "Filter by course" Format(uuid)
// @Param studentId query string false "Filter by student" Format(uuid)
// @Param date query string false "Filter by date (YYYY-MM-DD)"
// @Success 200 {object} dto.APIResponse{data=dto.ListResponse} "Attendance records retrieved"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Router /attendances [get]
func (c *AttendanceController) ListAttendances(ctx *gin.Context) {
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

	var date *time.Time
	if raw := ctx.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid date")
			errorDetail = errorDetail.WithField("date").WithDetails("The date filter must be YYYY-MM-DD")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		date = &parsed
	}

	params := repositories.AttendanceListParams{
		ListParams: base,
		CourseID:   courseID,
		StudentID:  studentID,
		Date:       date,
	}

	attendances, total, err := c.attendanceService.List(ctx, params)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(listEnvelope(attendances, total, base.Page, base.Limit)))
}

// GetAttendance retrieves an attendance record by id
// @Summary Get attendance details
// @Tags attendances
// @Produce json
// @Security BearerAuth
// @Param id path string true "Attendance ID" Format(uuid)
// @Success 200 {object} dto.APIResponse{data=models.Attendance} "Attendance retrieved"
// @Failure 400 {object} dto.APIResponse "Invalid id"
// @Failure 404 {object} dto.APIResponse "Attendance not found"
// @Router /attendances/{id} [get]
func (c *AttendanceController) GetAttendance(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	attendance, err := c.attendanceService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(attendance))
}

// CreateAttendance records attendance
// @Summary Create attendance record
// @Tags attendances
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAttendanceRequest true "Attendance information"
// @Success 201 {object} dto.APIResponse{data=models.Attendance} "Attendance created"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 404 {object} dto.APIResponse "Course or student not found"
// @Router /attendances [post]
func (c *AttendanceController) CreateAttendance(ctx *gin.Context) {
	var req dto.CreateAttendanceRequest
	if !bindJSON(ctx, &req) {
		return
	}

	attendance, err := c.attendanceService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(attendance))
}

// UpdateAttendance patches an attendance record
// @Summary Update attendance record
// @Tags attendances
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Attendance ID" Format(uuid)
// @Param request body dto.UpdateAttendanceRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Attendance} "Attendance updated"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 404 {object} dto.APIResponse "Attendance not found"
// @Router /attendances/{id} [put]
func (c *AttendanceController) UpdateAttendance(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateAttendanceRequest
	if !bindJSON(ctx, &req) {
		return
	}

	attendance, err := c.attendanceService.Update(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(attendance))
}

// DeleteAttendance removes an attendance record
// @Summary Delete attendance record
// @Tags attendances
// @Produce json
// @Security BearerAuth
// @Param id path string true "Attendance ID" Format(uuid)
// @Success 200 {object} dto.APIResponse{data=models.Attendance} "Attendance deleted"
// @Failure 400 {object} dto.APIResponse "Invalid id"
// @Failure 404 {object} dto.APIResponse "Attendance not found"
// @Router /attendances/{id} [delete]
func (c *AttendanceController) DeleteAttendance(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	attendance, err := c.attendanceService.Delete(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(attendance))
}
