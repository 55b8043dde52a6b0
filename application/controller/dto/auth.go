package dto

type LoginDTO struct {
	Email    string `json:"email" validate:"required,email,max=100"`
	Password string `json:"password" validate:"required"`
}

type FaceLoginDTO struct {
	Email string `json:"email" validate:"required,email,max=100"`
	Image string `json:"image" validate:"required"` // base64 encoded photo, with or without a data uri prefix
}
