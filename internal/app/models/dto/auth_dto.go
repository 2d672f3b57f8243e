package dto

// RegisterRequest is the signup payload
type RegisterRequest struct {
	StudentID string `json:"studentId" binding:"required" example:"S2025001"`
	Name      string `json:"name" binding:"required" example:"Jane Doe"`
	Email     string `json:"email" binding:"required,email" example:"jane@university.edu"`
	Password  string `json:"password" binding:"required,min=6"`
	Year      int    `json:"year" binding:"required,gte=1,lte=4" example:"2"`
	Major     string `json:"major" binding:"required" example:"Computer Science"`
}

// LoginRequest is the login payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
