package dto

type CreateUserDTO struct {
	FirstName  string `json:"firstName" validate:"required,max=100,name_spacial_char"`
	LastName   string `json:"lastName" validate:"required,max=100,name_spacial_char"`
	Email      string `json:"email" validate:"required,email,max=100"`
	Password   string `json:"password" validate:"required,password"`
	DeviceID   string `json:"deviceID" validate:"required,max=50"`
	DeviceName string `json:"deviceName" validate:"required,max=30"`
}
