package models

// Role defines the account role tag carried on a user.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
)

// Valid reports whether the role is one of the known role tags.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleStudent, RoleTeacher:
		return true
	}
	return false
}

// SubmissionStatus defines the lifecycle state of an assignment submission.
type SubmissionStatus string

const (
	SubmissionPending   SubmissionStatus = "pending"
	SubmissionSubmitted SubmissionStatus = "submitted"
	SubmissionGraded    SubmissionStatus = "graded"
)

// Valid reports whether the status is a known submission status.
func (s SubmissionStatus) Valid() bool {
	switch s {
	case SubmissionPending, SubmissionSubmitted, SubmissionGraded:
		return true
	}
	return false
}

// AttendanceStatus defines the per-day attendance state of a student in
// a course.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLate    AttendanceStatus = "late"
	AttendanceExcused AttendanceStatus = "excused"
)

// Valid reports whether the status is a known attendance status.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceLate, AttendanceExcused:
		return true
	}
	return false
}
