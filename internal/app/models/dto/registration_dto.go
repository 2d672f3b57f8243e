package dto

// RegisterCourseRequest asks to register the authenticated student for a course
type RegisterCourseRequest struct {
	CourseID int64 `json:"courseId" binding:"required" example:"3"`
}
