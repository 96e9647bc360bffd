package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/campushub/campushub/internal/app/controllers"
	"github.com/campushub/campushub/internal/app/models"
	"github.com/campushub/campushub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	ctrls *controllers.Controllers,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/signup", ctrls.AuthController.Signup)
		auth.POST("/login", ctrls.AuthController.Login)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/auth/logout", ctrls.AuthController.Logout)
		authenticated.GET("/auth/me", ctrls.AuthController.Me)

		// Account administration is admin-only.
		users := authenticated.Group("/users")
		users.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
		{
			users.GET("", ctrls.UserController.ListUsers)
			users.GET("/:id", ctrls.UserController.GetUser)
			users.PUT("/:id", ctrls.UserController.UpdateUser)
			users.DELETE("/:id", ctrls.UserController.DeleteUser)
		}

		students := authenticated.Group("/students")
		{
			students.GET("", ctrls.StudentController.ListStudents)
			students.GET("/:id", ctrls.StudentController.GetStudent)
			students.POST("", ctrls.StudentController.CreateStudent)
			students.PUT("/:id", ctrls.StudentController.UpdateStudent)
			students.DELETE("/:id", ctrls.StudentController.DeleteStudent)
		}

		teachers := authenticated.Group("/teachers")
		{
			teachers.GET("", ctrls.TeacherController.ListTeachers)
			teachers.GET("/:id", ctrls.TeacherController.GetTeacher)
			teachers.POST("", ctrls.TeacherController.CreateTeacher)
			teachers.PUT("/:id", ctrls.TeacherController.UpdateTeacher)
			teachers.DELETE("/:id", ctrls.TeacherController.DeleteTeacher)
		}

		admins := authenticated.Group("/admins")
		admins.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
		{
			admins.GET("", ctrls.AdminController.ListAdmins)
			admins.GET("/:id", ctrls.AdminController.GetAdmin)
			admins.POST("", ctrls.AdminController.CreateAdmin)
			admins.PUT("/:id", ctrls.AdminController.UpdateAdmin)
			admins.DELETE("/:id", ctrls.AdminController.DeleteAdmin)
		}

		courses := authenticated.Group("/courses")
		{
			courses.GET("", ctrls.CourseController.ListCourses)
			courses.GET("/:id", ctrls.CourseController.GetCourse)
			courses.POST("", ctrls.CourseController.CreateCourse)
			courses.PUT("/:id", ctrls.CourseController.UpdateCourse)
			courses.DELETE("/:id", ctrls.CourseController.DeleteCourse)
		}

		enrollments := authenticated.Group("/enrollments")
		{
			enrollments.GET("", ctrls.EnrollmentController.ListEnrollments)
			enrollments.GET("/:id", ctrls.EnrollmentController.GetEnrollment)
			enrollments.POST("", ctrls.EnrollmentController.CreateEnrollment)
			enrollments.PUT("/:id", ctrls.EnrollmentController.UpdateEnrollment)
			enrollments.DELETE("/:id", ctrls.EnrollmentController.DeleteEnrollment)
		}

		assignments := authenticated.Group("/assignments")
		{
			assignments.GET("", ctrls.AssignmentController.ListAssignments)
			assignments.GET("/:id", ctrls.AssignmentController.GetAssignment)
			assignments.POST("", ctrls.AssignmentController.CreateAssignment)
			assignments.PUT("/:id", ctrls.AssignmentController.UpdateAssignment)
			assignments.DELETE("/:id", ctrls.AssignmentController.DeleteAssignment)
		}

		exams := authenticated.Group("/exams")
		{
			exams.GET("", ctrls.ExamController.ListExams)
			exams.GET("/:id", ctrls.ExamController.GetExam)
			exams.POST("", ctrls.ExamController.CreateExam)
			exams.PUT("/:id", ctrls.ExamController.UpdateExam)
			exams.DELETE("/:id", ctrls.ExamController.DeleteExam)
		}

		submissions := authenticated.Group("/submissions")
		{
			submissions.GET("", ctrls.SubmissionController.ListSubmissions)
			submissions.GET("/:id", ctrls.SubmissionController.GetSubmission)
			submissions.POST("", ctrls.SubmissionController.CreateSubmission)
			submissions.PUT("/:id", ctrls.SubmissionController.UpdateSubmission)
			submissions.DELETE("/:id", ctrls.SubmissionController.DeleteSubmission)
		}

		grades := authenticated.Group("/grades")
		{
			grades.GET("", ctrls.GradeController.ListGrades)
			grades.GET("/:id", ctrls.GradeController.GetGrade)
			grades.POST("", ctrls.GradeController.CreateGrade)
			grades.PUT("/:id", ctrls.GradeController.UpdateGrade)
			grades.DELETE("/:id", ctrls.GradeController.DeleteGrade)
		}

		attendances := authenticated.Group("/attendances")
		{
			attendances.GET("", ctrls.AttendanceController.ListAttendances)
			attendances.GET("/:id", ctrls.AttendanceController.GetAttendance)
			attendances.POST("", ctrls.AttendanceController.CreateAttendance)
			attendances.PUT("/:id", ctrls.AttendanceController.UpdateAttendance)
			attendances.DELETE("/:id", ctrls.AttendanceController.DeleteAttendance)
		}
	}
}
