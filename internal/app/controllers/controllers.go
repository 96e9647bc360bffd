package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/campushub/campushub/internal/app/models/dto"
	"github.com/campushub/campushub/internal/app/repositories"
	"github.com/campushub/campushub/internal/app/services"
	"github.com/campushub/campushub/internal/pkg/helpers"
)

// Controllers bundles every controller for route wiring.
type Controllers struct {
	AuthController       *AuthController
	UserController       *UserController
	StudentController    *StudentController
	TeacherController    *TeacherController
	AdminController      *AdminController
	CourseController     *CourseController
	EnrollmentController *EnrollmentController
	AssignmentController *AssignmentController
	ExamController       *ExamController
	SubmissionController *SubmissionController
	GradeController      *GradeController
	AttendanceController *AttendanceController
}

// NewControllers creates all controllers on top of the service
// container.
func NewControllers(svcs *services.Services) *Controllers {
	return &Controllers{
		AuthController:       NewAuthController(svcs.AuthService),
		UserController:       NewUserController(svcs.UserService),
		StudentController:    NewStudentController(svcs.StudentService),
		TeacherController:    NewTeacherController(svcs.TeacherService),
		AdminController:      NewAdminController(svcs.AdminService),
		CourseController:     NewCourseController(svcs.CourseService),
		EnrollmentController: NewEnrollmentController(svcs.EnrollmentService),
		AssignmentController: NewAssignmentController(svcs.AssignmentService),
		ExamController:       NewExamController(svcs.ExamService),
		SubmissionController: NewSubmissionController(svcs.SubmissionService),
		GradeController:      NewGradeController(svcs.GradeService),
		AttendanceController: NewAttendanceController(svcs.AttendanceService),
	}
}

// parseIDParam extracts and validates the :id path parameter. On
// failure it writes the 400 envelope and reports false.
func parseIDParam(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid id")
		errorDetail = errorDetail.WithField("id").WithDetails("The id must be a valid UUID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return uuid.Nil, false
	}
	return id, true
}

// bindListQuery binds the common list query parameters. On failure it
// writes the 400 envelope and reports false.
func bindListQuery(ctx *gin.Context) (repositories.ListParams, bool) {
	var q dto.ListQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid list parameters")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return repositories.ListParams{}, false
	}
	return repositories.ListParams{
		Page:   q.Page,
		Limit:  q.Limit,
		Search: q.Search,
		Sort:   q.Sort,
		Order:  q.Order,
	}, true
}

// parseUUIDQuery extracts an optional UUID query parameter. On failure
// it writes the 400 envelope and reports false.
func parseUUIDQuery(ctx *gin.Context, name string) (*uuid.UUID, bool) {
	raw := ctx.Query(name)
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name)
		errorDetail = errorDetail.WithField(name).WithDetails("The " + name + " filter must be a valid UUID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return nil, false
	}
	return &id, true
}

// bindJSON binds and validates a JSON request body. On failure it
// writes the 400 envelope, with per-field messages when the binding
// failed validation, and reports false.
func bindJSON(ctx *gin.Context, target interface{}) bool {
	err := ctx.ShouldBindJSON(target)
	if err == nil {
		return true
	}

	errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request data")

	var fieldErrs validator.ValidationErrors
	if details := fieldErrorDetails(err, &fieldErrs); details.HasErrors() {
		errorDetail = errorDetail.WithDetails(details)
	} else {
		errorDetail = errorDetail.WithDetails(err.Error())
	}

	ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
	return false
}

// fieldErrorDetails converts binding validation failures into the
// field-level error list of the 400 envelope. The list is empty when
// the error is not a validation failure, e.g. malformed JSON.
func fieldErrorDetails(err error, fieldErrs *validator.ValidationErrors) *dto.ValidationErrors {
	details := dto.NewValidationErrors()
	if errors.As(err, fieldErrs) {
		for _, fe := range *fieldErrs {
			details.AddError(fe.Field(), validationMessage(fe))
		}
	}
	return details
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Must be a valid email address"
	case "min":
		return fmt.Sprintf("Must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s characters", fe.Param())
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", fe.Param())
	case "uuid":
		return "Must be a valid UUID"
	default:
		return fmt.Sprintf("Failed validation rule %q", fe.Tag())
	}
}

// listEnvelope builds the list payload with its meta block. Page and
// limit are re-clamped so the meta block reflects what was executed.
func listEnvelope(data interface{}, total int64, page, limit int) dto.ListResponse {
	normPage, normLimit, _ := helpers.ClampPagination(page, limit)
	return dto.ListResponse{
		Data: data,
		Meta: dto.ListMeta{
			Total:      total,
			TotalPages: helpers.TotalPages(total, normLimit),
			Page:       normPage,
			Limit:      normLimit,
		},
	}
}
